// Package servers holds the HTTP contract described by api/openapi.yml: its
// models, the ServerInterface every implementation satisfies and the echo
// routing that binds path parameters before calling it.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for FlowStep.
const (
	FlowStepRequest   FlowStep = "request"
	FlowStepMatching  FlowStep = "matching"
	FlowStepMatched   FlowStep = "matched"
	FlowStepTracking  FlowStep = "tracking"
	FlowStepDelivered FlowStep = "delivered"
)

// Defines values for PaymentMethod.
const (
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodApplePay  PaymentMethod = "apple_pay"
	PaymentMethodGooglePay PaymentMethod = "google_pay"
)

// Addresses defines model for Addresses.
type Addresses struct {
	DeliveryAddress string `json:"deliveryAddress"`
	PickupAddress   string `json:"pickupAddress"`
}

// AssessmentPanel defines model for AssessmentPanel.
type AssessmentPanel struct {
	InProgress bool              `json:"inProgress"`
	Open       bool              `json:"open"`
	Result     *AssessmentResult `json:"result,omitempty"`
}

// AssessmentRequest defines model for AssessmentRequest.
type AssessmentRequest struct {
	DriverHistory  string `json:"driverHistory"`
	StudentRatings string `json:"studentRatings"`
}

// AssessmentResult defines model for AssessmentResult.
type AssessmentResult struct {
	Recommendation   string  `json:"recommendation"`
	ReliabilityScore float64 `json:"reliabilityScore"`
	RiskFactors      string  `json:"riskFactors"`
	ScorePercent     int     `json:"scorePercent"`
}

// Checkpoint defines model for Checkpoint.
type Checkpoint struct {
	Completed bool   `json:"completed"`
	Name      string `json:"name"`
}

// Driver defines model for Driver.
type Driver struct {
	Name    string  `json:"name"`
	Plate   string  `json:"plate"`
	Rating  float64 `json:"rating"`
	Trips   int     `json:"trips"`
	Vehicle string  `json:"vehicle"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Flow defines model for Flow.
type Flow struct {
	Assessment      AssessmentPanel    `json:"assessment"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Driver          *Driver            `json:"driver,omitempty"`
	Id              openapi_types.UUID `json:"id"`
	PaymentMethod   *PaymentMethod     `json:"paymentMethod,omitempty"`
	PickupAddress   string             `json:"pickupAddress"`
	Quote           *Quote             `json:"quote,omitempty"`
	Step            FlowStep           `json:"step"`
	Tracking        *Tracking          `json:"tracking,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Version         int64              `json:"version"`
}

// FlowStep defines model for FlowStep.
type FlowStep string

// Notification defines model for Notification.
type Notification struct {
	Description string `json:"description"`
	Destructive bool   `json:"destructive"`
	Title       string `json:"title"`
}

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod string

// PaymentRequest defines model for PaymentRequest.
type PaymentRequest struct {
	Method PaymentMethod `json:"method"`
}

// Quote defines model for Quote.
type Quote struct {
	Currency      string  `json:"currency"`
	EstimatedTime string  `json:"estimatedTime"`
	Price         float64 `json:"price"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	Checkpoints []Checkpoint `json:"checkpoints"`
	Index       int          `json:"index"`
	Progress    int          `json:"progress"`
}

// FlowId defines model for FlowId.
type FlowId = openapi_types.UUID

// AssessDriverJSONRequestBody defines body for AssessDriver for application/json ContentType.
type AssessDriverJSONRequestBody = AssessmentRequest

// SetAddressesJSONRequestBody defines body for SetAddresses for application/json ContentType.
type SetAddressesJSONRequestBody = Addresses

// ConfirmPaymentJSONRequestBody defines body for ConfirmPayment for application/json ContentType.
type ConfirmPaymentJSONRequestBody = PaymentRequest
