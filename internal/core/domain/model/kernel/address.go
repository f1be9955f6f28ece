package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"rushdrop/internal/pkg/errs"
	"rushdrop/internal/pkg/guard"
)

// AddressMaxLength bounds the length, in characters, of an address.
const AddressMaxLength = 256

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a pickup or delivery address as typed by the user, with
// surrounding whitespace removed. A whitespace-only input is treated as missing.
//
//	pickup, err := kernel.NewAddress("pickupAddress", "123 Main St")
type Address struct {
	value string
	guard guard.ConstructorGuard
}

// NewAddress validates raw input for the parameter named paramName. The name is
// reported back in the returned ValueIsRequiredError or ValueIsOutOfRangeError
// so callers can join the errors of several fields.
func NewAddress(paramName string, raw string) (Address, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError(paramName)
	}

	if n := utf8.RuneCountInString(value); n > AddressMaxLength {
		return Address{}, errs.NewValueIsOutOfRangeError(paramName, n, 1, AddressMaxLength)
	}

	return Address{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// String returns the trimmed address text.
func (a Address) String() string {
	return a.value
}
