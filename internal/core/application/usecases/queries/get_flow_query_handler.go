package queries

import (
	"context"

	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/core/domain/model/kernel"
)

// FlowReader resolves live flows by identifier.
type FlowReader interface {
	Get(ctx context.Context, id kernel.UUID) (*flow.Controller, error)
}

type GetFlowQueryHandler struct {
	flows FlowReader
}

func NewGetFlowQueryHandler(flows FlowReader) GetFlowQueryHandler {
	return GetFlowQueryHandler{flows: flows}
}

// Handle returns an ObjectNotFoundError for unknown flows.
func (h GetFlowQueryHandler) Handle(ctx context.Context, query GetFlowQuery) (FlowView, error) {
	if err := query.Validate(); err != nil {
		return FlowView{}, err
	}

	controller, err := h.flows.Get(ctx, query.FlowID())
	if err != nil {
		return FlowView{}, err
	}

	snapshot, err := controller.Snapshot()
	if err != nil {
		return FlowView{}, err
	}
	return NewFlowView(snapshot), nil
}
