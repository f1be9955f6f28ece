package delivery

import (
	"fmt"

	"rushdrop/internal/pkg/errs"
)

// PaymentMethod is how the user pays for a matched delivery. Payment is
// simulated; the method is only recorded.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Card
	ApplePay
	GooglePay
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "unknown",
		Card:                 "card",
		ApplePay:             "apple_pay",
		GooglePay:            "google_pay",
	}
}

// ParsePaymentMethod maps a wire name back to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if m != UnknownPaymentMethod && str == s {
			return m, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not one of card, apple_pay, google_pay", s))
}

func (m PaymentMethod) Validate() error {
	if m <= UnknownPaymentMethod || m > GooglePay {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
