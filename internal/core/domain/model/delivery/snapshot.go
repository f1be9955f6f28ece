package delivery

import (
	"time"

	"rushdrop/internal/core/domain/model/kernel"
)

// Snapshot is a rendering copy of a flow's state. Version grows by one with
// every applied transition, so consumers receiving snapshots out of order keep
// the highest version.
type Snapshot struct {
	FlowID    kernel.UUID
	State     State
	Version   uint64
	UpdatedAt time.Time
}
