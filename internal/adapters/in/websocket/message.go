// Package websocket streams flow snapshots and notifications to browsers.
// Each flow is a room; a client joins the room of the flow it subscribed to
// and receives every message published for it.
package websocket

import (
	"encoding/json"
	"time"
)

const (
	MessageTypeSnapshot     = "snapshot"
	MessageTypeNotification = "notification"
)

// Message is the frame written to clients. Data holds a servers.Flow for
// snapshots and a servers.Notification for notifications. Snapshots carry a
// version; clients keep the highest one they have seen.
type Message struct {
	Type      string `json:"type"`
	FlowID    string `json:"flowId"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data"`
}

func encode(msgType, flowID string, at time.Time, data any) ([]byte, error) {
	return json.Marshal(Message{
		Type:      msgType,
		FlowID:    flowID,
		Timestamp: at.UnixMilli(),
		Data:      data,
	})
}
