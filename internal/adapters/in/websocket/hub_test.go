package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func subscribe(t *testing.T, hub *Hub, flowID kernel.UUID) *Client {
	t.Helper()
	client := newClient(hub, nil, flowID, discardLogger())
	require.True(t, hub.Register(t.Context(), client))
	return client
}

func receive(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case payload, ok := <-client.send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	case <-time.After(time.Second):
		require.FailNow(t, "no message received")
		return Message{}
	}
}

func TestHub_PublishNotificationReachesOnlyItsRoom(t *testing.T) {
	// Given
	hub, _ := startHub(t)
	flowID, otherID := kernel.NewUUID(), kernel.NewUUID()
	client := subscribe(t, hub, flowID)
	other := subscribe(t, hub, otherID)

	// When
	hub.PublishNotification(t.Context(), flowID, delivery.MissingInformation())

	// Then
	msg := receive(t, client)
	assert.Equal(t, MessageTypeNotification, msg.Type)
	assert.Equal(t, flowID.String(), msg.FlowID)
	data, ok := msg.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Missing Information", data["title"])
	assert.Equal(t, true, data["destructive"])

	assert.Never(t, func() bool { return len(other.send) > 0 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestHub_PublishSnapshot(t *testing.T) {
	// Given
	hub, _ := startHub(t)
	flowID := kernel.NewUUID()
	client := subscribe(t, hub, flowID)
	snapshot := delivery.Snapshot{FlowID: flowID, State: delivery.InitialState(), Version: 7, UpdatedAt: time.Now()}

	// When
	hub.PublishSnapshot(t.Context(), snapshot)

	// Then
	msg := receive(t, client)
	assert.Equal(t, MessageTypeSnapshot, msg.Type)
	data, ok := msg.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "request", data["step"])
	assert.EqualValues(t, 7, data["version"])
	assert.Equal(t, flowID.String(), data["id"])
}

func TestHub_SendInitialTargetsOneClient(t *testing.T) {
	// Given
	hub, _ := startHub(t)
	flowID := kernel.NewUUID()
	first := subscribe(t, hub, flowID)
	second := subscribe(t, hub, flowID)
	snapshot := delivery.Snapshot{FlowID: flowID, State: delivery.InitialState(), Version: 1}

	// When
	require.NoError(t, hub.sendInitial(t.Context(), second, snapshot))

	// Then
	msg := receive(t, second)
	assert.Equal(t, MessageTypeSnapshot, msg.Type)
	assert.Never(t, func() bool { return len(first.send) > 0 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	// Given
	hub, _ := startHub(t)
	client := subscribe(t, hub, kernel.NewUUID())

	// When
	hub.Unregister(client)
	// A second unregister is ignored.
	hub.Unregister(client)

	// Then
	_, ok := <-client.send
	assert.False(t, ok)
}

func TestHub_DropsSlowClient(t *testing.T) {
	// Given
	hub, _ := startHub(t)
	flowID := kernel.NewUUID()
	client := subscribe(t, hub, flowID)
	witness := subscribe(t, hub, kernel.NewUUID())
	for range sendBuffer {
		hub.PublishNotification(t.Context(), flowID, delivery.AssessmentFailedNotification())
	}

	// When
	hub.PublishNotification(t.Context(), flowID, delivery.AssessmentFailedNotification())
	// The hub handles broadcasts in order, so once the witness has its message
	// the overflowing one was handled too.
	hub.PublishNotification(t.Context(), witness.flowID, delivery.AssessmentFailedNotification())
	receive(t, witness)

	// Then
	n := 0
	for range client.send {
		n++
	}
	assert.Equal(t, sendBuffer, n)
}

func TestHub_StopDisconnectsClients(t *testing.T) {
	// Given
	hub, cancel := startHub(t)
	client := subscribe(t, hub, kernel.NewUUID())

	// When
	cancel()

	// Then
	select {
	case _, ok := <-client.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		require.FailNow(t, "client was not disconnected")
	}
	<-hub.done
	assert.False(t, hub.Register(t.Context(), newClient(hub, nil, kernel.NewUUID(), discardLogger())))
}
