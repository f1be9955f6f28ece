// Package queries contains read operations on flows. Queries return read
// models shaped for rendering rather than domain objects.
package queries

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrGetFlowQueryIsNotConstructed = errors.New(
	"GetFlowQuery must be created via NewGetFlowQuery constructor",
)

// GetFlowQuery reads the current state of one flow.
//
//	query, _ := NewGetFlowQuery(flowID)
//	view, err := handler.Handle(ctx, query)
type GetFlowQuery struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetFlowQuery(flowID kernel.UUID) (GetFlowQuery, error) {
	if err := flowID.Validate(); err != nil {
		return GetFlowQuery{}, err
	}
	return GetFlowQuery{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFlowQuery) Validate() error {
	return q.guard.Validate(ErrGetFlowQueryIsNotConstructed)
}

func (q GetFlowQuery) FlowID() kernel.UUID {
	return q.flowID
}
