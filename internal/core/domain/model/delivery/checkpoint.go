package delivery

const (
	// CheckpointCount is the number of tracking checkpoints.
	CheckpointCount = 5

	// InitialTrackingIndex is the tracking index of a freshly paid delivery: the
	// driver is already on the way to pickup.
	InitialTrackingIndex = 1

	// FinalCheckpointIndex is the index of the last checkpoint. Reaching it arms
	// the delivery timer.
	FinalCheckpointIndex = CheckpointCount - 1
)

var checkpointNames = [CheckpointCount]string{
	"Order Confirmed",
	"Driver on the way to pickup",
	"Item Picked Up",
	"En Route to Destination",
	"Arriving Soon",
}

// Checkpoint is one milestone of the tracking timeline. Completed is derived
// from the tracking index and never stored.
type Checkpoint struct {
	Name      string
	Completed bool
}

// Checkpoints returns the fixed, ordered timeline with checkpoints up to and
// including trackingIndex marked completed.
func Checkpoints(trackingIndex int) []Checkpoint {
	out := make([]Checkpoint, 0, CheckpointCount)
	for i, name := range checkpointNames {
		out = append(out, Checkpoint{
			Name:      name,
			Completed: i <= trackingIndex,
		})
	}
	return out
}

// Progress returns how far along the timeline trackingIndex is, in percent,
// clamped to [0, 100].
func Progress(trackingIndex int) int {
	switch {
	case trackingIndex <= 0:
		return 0
	case trackingIndex >= FinalCheckpointIndex:
		return 100
	default:
		return trackingIndex * 100 / FinalCheckpointIndex
	}
}
