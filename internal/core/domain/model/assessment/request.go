package assessment

import (
	"errors"
	"strings"

	"rushdrop/internal/pkg/errs"
	"rushdrop/internal/pkg/guard"
)

const (
	demoDriverHistory = "Driver has completed 150 trips in the last 6 months. " +
		"One minor incident reported 3 months ago: late delivery due to traffic. No other issues."
	demoStudentRatings = `Average rating: 4.8/5. Recent comments: "Very friendly and on time!", ` +
		`"Quick delivery, thanks!", "A bit late but communicated well."`
)

// ErrRequestIsNotConstructed is returned when validating a zero-value Request.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is the input of an assessment: free-text driver history and student ratings.
type Request struct {
	driverHistory  string
	studentRatings string
	guard          guard.ConstructorGuard
}

// NewRequest validates both fields. Missing fields are reported together as
// joined ValueIsRequiredError values naming driverHistory and studentRatings.
func NewRequest(driverHistory, studentRatings string) (Request, error) {
	r := Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setDriverHistory(driverHistory),
		r.setStudentRatings(studentRatings),
	); err != nil {
		return Request{}, err
	}

	return r, nil
}

// DemoDriverRecord returns the fixed record a flow assesses. It is not derived
// from the matched driver: matching and assessment input are decoupled.
func DemoDriverRecord() Request {
	return Request{
		driverHistory:  demoDriverHistory,
		studentRatings: demoStudentRatings,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the request was built by a constructor.
func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// DriverHistory returns past trips and incidents as free text.
func (r Request) DriverHistory() string {
	return r.driverHistory
}

// StudentRatings returns ratings and reviews as free text.
func (r Request) StudentRatings() string {
	return r.studentRatings
}

func (r *Request) setDriverHistory(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("driverHistory")
	}
	r.driverHistory = v
	return nil
}

func (r *Request) setStudentRatings(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("studentRatings")
	}
	r.studentRatings = v
	return nil
}
