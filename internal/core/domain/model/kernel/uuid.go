package kernel

import (
	"rushdrop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned for the nil flow ID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("flowId")

// UUID identifies a flow session. Flow IDs are minted by NewUUID when a flow
// is created and come back from clients in the path of every flow route.
type UUID struct {
	id uuid.UUID
}

// NewUUID mints a random ID for a new flow.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromWire accepts a flow ID decoded by the transport layer. The nil ID
// never names a flow and is rejected.
//
//	id, err := kernel.UUIDFromWire(flowId)
func UUIDFromWire(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Wire returns the ID in the form the generated API types carry.
func (u UUID) Wire() uuid.UUID {
	return u.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
