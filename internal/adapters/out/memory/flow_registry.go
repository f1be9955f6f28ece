// Package memory keeps live flows in process memory. Flows are never
// persisted; a restart forgets them.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/errs"
)

// FlowRegistry maps flow identifiers to controllers.
type FlowRegistry struct {
	mu    sync.RWMutex
	flows map[kernel.UUID]*flow.Controller
}

func NewFlowRegistry() *FlowRegistry {
	return &FlowRegistry{
		flows: make(map[kernel.UUID]*flow.Controller),
	}
}

func (r *FlowRegistry) Add(_ context.Context, controller *flow.Controller) error {
	if controller == nil {
		return errs.NewValueIsRequiredError("controller")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := controller.ID()
	if _, ok := r.flows[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("flowId", fmt.Errorf("flow %s is already registered", id))
	}
	r.flows[id] = controller
	return nil
}

func (r *FlowRegistry) Get(_ context.Context, id kernel.UUID) (*flow.Controller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controller, ok := r.flows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("flowId", id)
	}
	return controller, nil
}

func (r *FlowRegistry) Remove(_ context.Context, id kernel.UUID) (*flow.Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	controller, ok := r.flows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("flowId", id)
	}
	delete(r.flows, id)
	return controller, nil
}

func (r *FlowRegistry) RemoveIdle(_ context.Context, cutoff time.Time) []*flow.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	var idle []*flow.Controller
	for id, controller := range r.flows {
		if controller.LastActivity().Before(cutoff) {
			idle = append(idle, controller)
			delete(r.flows, id)
		}
	}
	return idle
}

// Len returns the number of live flows.
func (r *FlowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}

// CloseAll unregisters and closes every flow. It returns how many there were.
func (r *FlowRegistry) CloseAll() int {
	r.mu.Lock()
	flows := r.flows
	r.flows = make(map[kernel.UUID]*flow.Controller)
	r.mu.Unlock()

	for _, controller := range flows {
		controller.Close()
	}
	return len(flows)
}
