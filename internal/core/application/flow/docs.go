// Package flow runs delivery flows: it feeds user operations, timer firings and
// assessment outcomes to delivery.Transition and carries out the resulting
// effects.
//
// A Controller owns one flow. All events of a flow are serialized behind the
// controller mutex; timers and assessment calls run elsewhere and come back
// as events carrying a token (timer generation or assessment session), so a
// firing or result that was superseded in the meantime is dropped.
//
// Snapshots and notifications are published after the mutex is released.
//
//	factory, _ := flow.NewFactory(flow.Config{...})
//	c, _ := factory.NewController(kernel.NewUUID())
//	defer c.Close()
//
//	_, _ = c.SetAddresses(ctx, "123 Main St", "456 Oak Ave")
//	snap, err := c.RequestDelivery(ctx) // matching; matched after MatchingDelay
package flow
