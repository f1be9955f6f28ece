// Package assessment holds the contract of the driver reliability assessment:
// the Request a flow sends and the Result it gets back.
//
// Both are immutable value objects built through constructors that enforce the
// schema: a request needs non-empty driver history and student ratings, a result
// needs a score in [0, 1] and non-empty risk factors and recommendation. The
// computation behind the contract lives in adapters of ports.AssessmentService;
// nothing here assumes it is deterministic.
package assessment
