package commands

import (
	"context"
	"time"
)

// EvictIdleFlowsCommandHandler bounds the memory held by abandoned flows.
type EvictIdleFlowsCommandHandler struct {
	registry FlowRegistry
	clock    func() time.Time
}

func NewEvictIdleFlowsCommandHandler(registry FlowRegistry, clock func() time.Time) EvictIdleFlowsCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return EvictIdleFlowsCommandHandler{
		registry: registry,
		clock:    clock,
	}
}

// Handle closes every evicted flow and returns how many there were.
func (h *EvictIdleFlowsCommandHandler) Handle(ctx context.Context, cmd EvictIdleFlowsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	evicted := h.registry.RemoveIdle(ctx, h.clock().Add(-cmd.IdleFor()))
	for _, controller := range evicted {
		controller.Close()
	}
	return len(evicted), nil
}
