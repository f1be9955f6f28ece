package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Assess a driver outside of any flow
	// (POST /api/v1/assessments)
	AssessDriver(ctx echo.Context) error
	// Create a flow session
	// (POST /api/v1/flows)
	CreateFlow(ctx echo.Context) error
	// Tear a flow down
	// (DELETE /api/v1/flows/{flowId})
	DeleteFlow(ctx echo.Context, flowId FlowId) error
	// Get the current state of a flow
	// (GET /api/v1/flows/{flowId})
	GetFlow(ctx echo.Context, flowId FlowId) error
	// Record raw address input
	// (PUT /api/v1/flows/{flowId}/addresses)
	SetAddresses(ctx echo.Context, flowId FlowId) error
	// Close the assessment panel
	// (DELETE /api/v1/flows/{flowId}/assessment)
	CloseAssessment(ctx echo.Context, flowId FlowId) error
	// Open the assessment panel and assess the matched driver
	// (POST /api/v1/flows/{flowId}/assessment)
	StartAssessment(ctx echo.Context, flowId FlowId) error
	// Subscribe to flow snapshots and notifications over a websocket
	// (GET /api/v1/flows/{flowId}/events)
	StreamFlowEvents(ctx echo.Context, flowId FlowId) error
	// Confirm payment for the matched delivery
	// (POST /api/v1/flows/{flowId}/payment)
	ConfirmPayment(ctx echo.Context, flowId FlowId) error
	// Request a delivery for the entered addresses
	// (POST /api/v1/flows/{flowId}/request)
	RequestDelivery(ctx echo.Context, flowId FlowId) error
	// Start the flow over
	// (POST /api/v1/flows/{flowId}/reset)
	ResetFlow(ctx echo.Context, flowId FlowId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) AssessDriver(ctx echo.Context) error {
	return w.Handler.AssessDriver(ctx)
}

func (w *ServerInterfaceWrapper) CreateFlow(ctx echo.Context) error {
	return w.Handler.CreateFlow(ctx)
}

func (w *ServerInterfaceWrapper) DeleteFlow(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.DeleteFlow)
}

func (w *ServerInterfaceWrapper) GetFlow(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.GetFlow)
}

func (w *ServerInterfaceWrapper) SetAddresses(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.SetAddresses)
}

func (w *ServerInterfaceWrapper) CloseAssessment(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.CloseAssessment)
}

func (w *ServerInterfaceWrapper) StartAssessment(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.StartAssessment)
}

func (w *ServerInterfaceWrapper) StreamFlowEvents(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.StreamFlowEvents)
}

func (w *ServerInterfaceWrapper) ConfirmPayment(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.ConfirmPayment)
}

func (w *ServerInterfaceWrapper) RequestDelivery(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.RequestDelivery)
}

func (w *ServerInterfaceWrapper) ResetFlow(ctx echo.Context) error {
	return w.withFlowID(ctx, w.Handler.ResetFlow)
}

func (w *ServerInterfaceWrapper) withFlowID(ctx echo.Context, next func(echo.Context, FlowId) error) error {
	var flowId FlowId

	err := runtime.BindStyledParameterWithOptions("simple", "flowId", ctx.Param("flowId"), &flowId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter flowId: %s", err))
	}

	return next(ctx, flowId)
}

// EchoRouter is the subset of echo routing RegisterHandlers needs; both
// *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, prepending baseURL to every path.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/assessments", wrapper.AssessDriver)
	router.POST(baseURL+"/api/v1/flows", wrapper.CreateFlow)
	router.DELETE(baseURL+"/api/v1/flows/:flowId", wrapper.DeleteFlow)
	router.GET(baseURL+"/api/v1/flows/:flowId", wrapper.GetFlow)
	router.PUT(baseURL+"/api/v1/flows/:flowId/addresses", wrapper.SetAddresses)
	router.DELETE(baseURL+"/api/v1/flows/:flowId/assessment", wrapper.CloseAssessment)
	router.POST(baseURL+"/api/v1/flows/:flowId/assessment", wrapper.StartAssessment)
	router.GET(baseURL+"/api/v1/flows/:flowId/events", wrapper.StreamFlowEvents)
	router.POST(baseURL+"/api/v1/flows/:flowId/payment", wrapper.ConfirmPayment)
	router.POST(baseURL+"/api/v1/flows/:flowId/request", wrapper.RequestDelivery)
	router.POST(baseURL+"/api/v1/flows/:flowId/reset", wrapper.ResetFlow)
}
