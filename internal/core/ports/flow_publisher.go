package ports

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
)

// FlowPublisher pushes flow changes to whoever renders them. Publishing is
// best effort: a slow or absent subscriber never blocks a flow.
type FlowPublisher interface {
	PublishSnapshot(ctx context.Context, snapshot delivery.Snapshot)
	PublishNotification(ctx context.Context, flowID kernel.UUID, notification delivery.Notification)
}
