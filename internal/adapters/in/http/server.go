package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"rushdrop/internal/adapters/in/http/presenter"
	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/core/application/usecases/commands"
	"rushdrop/internal/core/application/usecases/queries"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/generated/servers"
	"rushdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// FlowStream attaches a websocket subscriber to a flow.
type FlowStream interface {
	Serve(ctx echo.Context, flowID kernel.UUID) error
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateFlow      commands.CreateFlowCommandHandler
	SetAddresses    commands.SetAddressesCommandHandler
	RequestDelivery commands.RequestDeliveryCommandHandler
	StartAssessment commands.StartAssessmentCommandHandler
	CloseAssessment commands.CloseAssessmentCommandHandler
	ConfirmPayment  commands.ConfirmPaymentCommandHandler
	ResetFlow       commands.ResetFlowCommandHandler
	DeleteFlow      commands.DeleteFlowCommandHandler
	AssessDriver    commands.AssessDriverCommandHandler

	GetFlow queries.GetFlowQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	stream   FlowStream
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, stream FlowStream, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		stream:   stream,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateFlow handles POST /api/v1/flows - starts a new flow in the request step.
func (s *Server) CreateFlow(ctx echo.Context) error {
	cmd, err := commands.NewCreateFlowCommand(kernel.NewUUID())
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.handlers.CreateFlow.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, presenter.Snapshot(snapshot))
}

// GetFlow handles GET /api/v1/flows/{flowId}.
func (s *Server) GetFlow(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetFlowQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetFlow.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presenter.Flow(view))
}

// DeleteFlow handles DELETE /api/v1/flows/{flowId} - stops every timer of the flow and forgets it.
func (s *Server) DeleteFlow(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteFlowCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteFlow.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetAddresses handles PUT /api/v1/flows/{flowId}/addresses.
func (s *Server) SetAddresses(ctx echo.Context, flowId servers.FlowId) error {
	var body servers.SetAddressesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetAddressesCommand(id, body.PickupAddress, body.DeliveryAddress)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, http.StatusOK, func(c context.Context) (delivery.Snapshot, error) {
		return s.handlers.SetAddresses.Handle(c, cmd)
	})
}

// RequestDelivery handles POST /api/v1/flows/{flowId}/request - starts driver matching.
func (s *Server) RequestDelivery(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRequestDeliveryCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, http.StatusOK, func(c context.Context) (delivery.Snapshot, error) {
		return s.handlers.RequestDelivery.Handle(c, cmd)
	})
}

// StartAssessment handles POST /api/v1/flows/{flowId}/assessment. The result
// arrives later through the event stream.
func (s *Server) StartAssessment(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewStartAssessmentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, http.StatusAccepted, func(c context.Context) (delivery.Snapshot, error) {
		return s.handlers.StartAssessment.Handle(c, cmd)
	})
}

// CloseAssessment handles DELETE /api/v1/flows/{flowId}/assessment.
func (s *Server) CloseAssessment(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCloseAssessmentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, http.StatusOK, func(c context.Context) (delivery.Snapshot, error) {
		return s.handlers.CloseAssessment.Handle(c, cmd)
	})
}

// ConfirmPayment handles POST /api/v1/flows/{flowId}/payment - starts tracking.
func (s *Server) ConfirmPayment(ctx echo.Context, flowId servers.FlowId) error {
	var body servers.ConfirmPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	method, err := delivery.ParsePaymentMethod(string(body.Method))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewConfirmPaymentCommand(id, method)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, http.StatusOK, func(c context.Context) (delivery.Snapshot, error) {
		return s.handlers.ConfirmPayment.Handle(c, cmd)
	})
}

// ResetFlow handles POST /api/v1/flows/{flowId}/reset.
func (s *Server) ResetFlow(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewResetFlowCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, http.StatusOK, func(c context.Context) (delivery.Snapshot, error) {
		return s.handlers.ResetFlow.Handle(c, cmd)
	})
}

// StreamFlowEvents handles GET /api/v1/flows/{flowId}/events - upgrades to a websocket.
func (s *Server) StreamFlowEvents(ctx echo.Context, flowId servers.FlowId) error {
	id, err := flowID(flowId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.stream.Serve(ctx, id); err != nil {
		return s.fail(ctx, err)
	}
	return nil
}

// AssessDriver handles POST /api/v1/assessments - assesses arbitrary driver data synchronously.
func (s *Server) AssessDriver(ctx echo.Context) error {
	var body servers.AssessDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}
	cmd, err := commands.NewAssessDriverCommand(body.DriverHistory, body.StudentRatings)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AssessDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presenter.AssessmentResult(result))
}

func (s *Server) respond(
	ctx echo.Context,
	status int,
	handle func(context.Context) (delivery.Snapshot, error),
) error {
	snapshot, err := handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, presenter.Snapshot(snapshot))
}

// fail writes the error response for err. Unclassified errors are logged and
// answered without details.
func (s *Server) fail(ctx echo.Context, err error) error {
	code, message := classify(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, flow.ErrFlowIsClosed):
		return http.StatusNotFound, "Flow not found"
	case errors.Is(err, delivery.ErrTransitionNotAllowed):
		return http.StatusConflict, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrServiceIsUnavailable):
		return http.StatusServiceUnavailable, "Assessment service is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func flowID(id servers.FlowId) (kernel.UUID, error) {
	return kernel.UUIDFromWire(id)
}
