package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlowRegistry struct{ mock.Mock }

func (m *MockFlowRegistry) Add(ctx context.Context, c *flow.Controller) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockFlowRegistry) Get(ctx context.Context, id kernel.UUID) (*flow.Controller, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*flow.Controller)
	return c, args.Error(1)
}

func (m *MockFlowRegistry) Remove(ctx context.Context, id kernel.UUID) (*flow.Controller, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*flow.Controller)
	return c, args.Error(1)
}

func (m *MockFlowRegistry) RemoveIdle(ctx context.Context, cutoff time.Time) []*flow.Controller {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]*flow.Controller)
}

type MockControllerFactory struct{ mock.Mock }

func (m *MockControllerFactory) NewController(id kernel.UUID) (*flow.Controller, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*flow.Controller)
	return c, args.Error(1)
}

type MockAssessor struct{ mock.Mock }

func (m *MockAssessor) Assess(ctx context.Context, req assessment.Request) (assessment.Result, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(assessment.Result), args.Error(1)
}

type idleScheduler struct{}

type idleTimer struct{}

func (idleTimer) Stop() {}

func (idleScheduler) After(time.Duration, func()) ports.Timer { return idleTimer{} }
func (idleScheduler) Every(time.Duration, func()) ports.Timer { return idleTimer{} }

type nopPublisher struct{}

func (nopPublisher) PublishSnapshot(context.Context, delivery.Snapshot) {}
func (nopPublisher) PublishNotification(context.Context, kernel.UUID, delivery.Notification) {
}

// newController returns a controller whose timers never fire.
func newController(t *testing.T, id kernel.UUID) *flow.Controller {
	t.Helper()

	factory, err := flow.NewFactory(flow.Config{
		Timings:   flow.DefaultTimings(),
		Scheduler: idleScheduler{},
		Assessor:  new(MockAssessor),
		Publisher: nopPublisher{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	c, err := factory.NewController(id)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}
