package websocket

import (
	"log/slog"
	"net/http"

	"rushdrop/internal/core/application/usecases/queries"
	"rushdrop/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades subscription requests and attaches the connection to the hub.
type Handler struct {
	hub      *Hub
	flows    queries.FlowReader
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler accepts connections from any origin; the API carries no credentials.
func NewHandler(hub *Hub, flows queries.FlowReader, logger *slog.Logger) *Handler {
	return &Handler{
		hub:   hub,
		flows: flows,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		logger: logger.With("component", "websocket_handler"),
	}
}

// Serve subscribes the connection to flowID. Unknown flows fail before the
// upgrade so the caller can answer with a regular error response. After the
// upgrade the client first receives the current snapshot.
func (h *Handler) Serve(c echo.Context, flowID kernel.UUID) error {
	ctx := c.Request().Context()

	query, err := queries.NewGetFlowQuery(flowID)
	if err != nil {
		return err
	}
	controller, err := h.flows.Get(ctx, query.FlowID())
	if err != nil {
		return err
	}
	if _, err = controller.Snapshot(); err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already answered the request.
		h.logger.WarnContext(ctx, "websocket upgrade failed", "flowId", flowID.String(), "error", err)
		return nil
	}

	client := newClient(h.hub, conn, flowID, h.logger)
	if !h.hub.Register(ctx, client) {
		_ = conn.Close()
		return nil
	}
	go client.writePump()
	go client.readPump()

	snapshot, err := controller.Snapshot()
	if err != nil {
		// Closed between the check and the registration.
		h.hub.Unregister(client)
		return nil
	}
	if err = h.hub.sendInitial(ctx, client, snapshot); err != nil {
		h.logger.WarnContext(ctx, "failed to queue initial snapshot", "flowId", flowID.String(), "error", err)
	}
	h.logger.InfoContext(ctx, "client subscribed", "flowId", flowID.String())
	return nil
}
