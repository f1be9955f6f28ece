package commands

import (
	"errors"
	"time"

	"rushdrop/internal/pkg/errs"
	"rushdrop/internal/pkg/guard"
)

var ErrEvictIdleFlowsCommandIsNotConstructed = errors.New(
	"EvictIdleFlowsCommand must be created via NewEvictIdleFlowsCommand constructor",
)

// EvictIdleFlowsCommand closes flows nobody has touched for at least idleFor.
type EvictIdleFlowsCommand struct {
	idleFor time.Duration
	guard   guard.ConstructorGuard
}

func NewEvictIdleFlowsCommand(idleFor time.Duration) (EvictIdleFlowsCommand, error) {
	if idleFor <= 0 {
		return EvictIdleFlowsCommand{}, errs.NewValueIsOutOfRangeError("idleFor", idleFor, time.Nanosecond, "unbounded")
	}
	return EvictIdleFlowsCommand{
		idleFor: idleFor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EvictIdleFlowsCommand) Validate() error {
	return c.guard.Validate(ErrEvictIdleFlowsCommandIsNotConstructed)
}

func (c EvictIdleFlowsCommand) IdleFor() time.Duration {
	return c.idleFor
}
