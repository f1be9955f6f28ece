package websocket

import (
	"context"
	"log/slog"
	"time"

	"rushdrop/internal/adapters/in/http/presenter"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
)

const broadcastBuffer = 256

type envelope struct {
	flowID  kernel.UUID
	payload []byte
	// target restricts delivery to one client of the room.
	target *Client
}

// Hub fans published flow messages out to the clients of each flow. Room
// membership is owned by the Run goroutine. Publishing never blocks: when the
// hub falls behind, messages are dropped and logged.
type Hub struct {
	logger *slog.Logger
	clock  func() time.Time

	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	done       chan struct{}

	rooms map[kernel.UUID]map[*Client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With("component", "websocket_hub"),
		clock:      time.Now,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, broadcastBuffer),
		done:       make(chan struct{}),
		rooms:      make(map[kernel.UUID]map[*Client]struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is done, then disconnects
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	h.logger.InfoContext(ctx, "Hub started")

	for {
		select {
		case <-ctx.Done():
			for _, room := range h.rooms {
				for client := range room {
					close(client.send)
				}
			}
			h.rooms = make(map[kernel.UUID]map[*Client]struct{})
			h.logger.InfoContext(context.Background(), "Hub stopped")
			return

		case client := <-h.register:
			room, ok := h.rooms[client.flowID]
			if !ok {
				room = make(map[*Client]struct{})
				h.rooms[client.flowID] = room
			}
			room[client] = struct{}{}
			h.logger.DebugContext(ctx, "client joined", "flowId", client.flowID.String(), "clients", len(room))

		case client := <-h.unregister:
			h.remove(client)

		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

func (h *Hub) deliver(env envelope) {
	for client := range h.rooms[env.flowID] {
		if env.target != nil && env.target != client {
			continue
		}
		select {
		case client.send <- env.payload:
		default:
			h.logger.Warn("dropping slow client", "flowId", env.flowID.String())
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	room, ok := h.rooms[client.flowID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.send)
	if len(room) == 0 {
		delete(h.rooms, client.flowID)
	}
}

// Register adds client to its flow room. It reports false once the hub stopped.
func (h *Hub) Register(ctx context.Context, client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Unregister removes client from its room and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// PublishSnapshot implements ports.FlowPublisher.
func (h *Hub) PublishSnapshot(ctx context.Context, snapshot delivery.Snapshot) {
	payload, err := encode(MessageTypeSnapshot, snapshot.FlowID.String(), h.clock(), presenter.Snapshot(snapshot))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode snapshot", "error", err)
		return
	}
	h.enqueue(ctx, envelope{flowID: snapshot.FlowID, payload: payload})
}

// PublishNotification implements ports.FlowPublisher.
func (h *Hub) PublishNotification(ctx context.Context, flowID kernel.UUID, notification delivery.Notification) {
	payload, err := encode(MessageTypeNotification, flowID.String(), h.clock(), presenter.Notification(notification))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode notification", "error", err)
		return
	}
	h.enqueue(ctx, envelope{flowID: flowID, payload: payload})
}

// sendInitial queues the current snapshot for a freshly registered client.
// Unlike publishing it waits for buffer space.
func (h *Hub) sendInitial(ctx context.Context, client *Client, snapshot delivery.Snapshot) error {
	payload, err := encode(MessageTypeSnapshot, snapshot.FlowID.String(), h.clock(), presenter.Snapshot(snapshot))
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- envelope{flowID: client.flowID, payload: payload, target: client}:
		return nil
	case <-h.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) enqueue(ctx context.Context, env envelope) {
	select {
	case h.broadcast <- env:
	default:
		h.logger.WarnContext(ctx, "broadcast buffer full, message dropped", "flowId", env.flowID.String())
	}
}
