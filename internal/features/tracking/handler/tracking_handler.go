package handler

import (
	"context"
	"errors"

	"fulfillment-admin/internal/core/httpclient"
	"fulfillment-admin/internal/core/logger"
	orderdomain "fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Workflow is the tracking workflow as seen by the HTTP layer.
type Workflow interface {
	Load(ctx context.Context, orderID string) (*service.TrackingView, error)
	Propose(ctx context.Context, orderID string, next domain.Status) (domain.Decision, *domain.TrackingRecord, error)
	Apply(ctx context.Context, orderID string, next domain.Status, confirmed bool) (*domain.TrackingRecord, domain.Decision, error)
	Reset(ctx context.Context, orderID string) (*domain.TrackingRecord, error)
	Create(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error)
}

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	workflow Workflow
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(workflow Workflow) *TrackingHandler {
	return &TrackingHandler{
		workflow: workflow,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
	// Decision is set when the local validator produced the error.
	Decision *domain.Decision `json:"decision,omitempty"`
}

// CreateTrackingRequest is the body of the create-tracking form.
type CreateTrackingRequest struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
}

// ProposeRequest asks for a decision without applying it.
type ProposeRequest struct {
	Status string `json:"status"`
}

// UpdateStatusRequest applies a status change. Confirmed must be true when the
// decision requires confirmation.
type UpdateStatusRequest struct {
	Status    string `json:"status"`
	Confirmed bool   `json:"confirmed"`
}

// DecisionResponse is the validator's answer for a proposed status.
type DecisionResponse struct {
	Current  domain.Status   `json:"current"`
	Next     domain.Status   `json:"next"`
	Decision domain.Decision `json:"decision"`
}

// TrackingResponse wraps a record returned by a mutation.
type TrackingResponse struct {
	Tracking *domain.TrackingRecord `json:"tracking"`
	Decision *domain.Decision       `json:"decision,omitempty"`
}

// StatusInfo describes one status for the picklist.
type StatusInfo struct {
	Value    domain.Status   `json:"value"`
	Label    string          `json:"label"`
	Terminal bool            `json:"terminal"`
	Next     []domain.Status `json:"next"`
}

// GetTracking godoc
// @Summary Get the tracking workflow for an order
// @Description Returns the order snapshot, the current tracking record (null when none exists) and the statuses the operator may pick next.
// @Tags tracking
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} service.TrackingView
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/{id}/tracking [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	orderID := c.Params("id")

	view, err := h.workflow.Load(c.UserContext(), orderID)
	if err != nil {
		return h.fail(c, orderID, err)
	}
	return c.JSON(view)
}

// CreateTracking godoc
// @Summary Create tracking for an order
// @Description Attaches carrier and tracking number to an order that has no tracking yet.
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body CreateTrackingRequest true "Carrier data"
// @Success 201 {object} TrackingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/{id}/tracking [post]
func (h *TrackingHandler) CreateTracking(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var body CreateTrackingRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	rec, err := h.workflow.Create(c.UserContext(), domain.NewTracking{
		OrderID:        orderID,
		Carrier:        body.Carrier,
		TrackingNumber: body.TrackingNumber,
		TrackingURL:    body.TrackingURL,
	})
	if err != nil {
		return h.fail(c, orderID, err)
	}
	return c.Status(fiber.StatusCreated).JSON(TrackingResponse{Tracking: rec})
}

// ProposeStatus godoc
// @Summary Validate a status change
// @Description Runs the status rules for the proposed status without changing anything.
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body ProposeRequest true "Proposed status"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/tracking/decisions [post]
func (h *TrackingHandler) ProposeStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var body ProposeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	next, err := domain.ParseStatus(body.Status)
	if err != nil {
		return h.fail(c, orderID, err)
	}

	decision, current, err := h.workflow.Propose(c.UserContext(), orderID, next)
	if err != nil {
		return h.fail(c, orderID, err)
	}

	return c.JSON(DecisionResponse{
		Current:  current.Status,
		Next:     next,
		Decision: decision,
	})
}

// UpdateStatus godoc
// @Summary Change the tracking status
// @Description Validates and applies a status change. Transitions that require confirmation are refused with 409 until resent with confirmed=true.
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} TrackingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/{id}/tracking/status [patch]
func (h *TrackingHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var body UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	next, err := domain.ParseStatus(body.Status)
	if err != nil {
		return h.fail(c, orderID, err)
	}

	rec, decision, err := h.workflow.Apply(c.UserContext(), orderID, next, body.Confirmed)
	if err != nil {
		return h.failWithDecision(c, orderID, err, &decision)
	}

	return c.JSON(TrackingResponse{Tracking: rec, Decision: &decision})
}

// ResetTracking godoc
// @Summary Reset tracking
// @Description Reverts the tracking record to its initial state. Not allowed once the order is delivered, cancelled or returned.
// @Tags tracking
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} TrackingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/{id}/tracking/reset [post]
func (h *TrackingHandler) ResetTracking(c *fiber.Ctx) error {
	orderID := c.Params("id")

	rec, err := h.workflow.Reset(c.UserContext(), orderID)
	if err != nil {
		return h.fail(c, orderID, err)
	}
	return c.JSON(TrackingResponse{Tracking: rec})
}

// ListStatuses godoc
// @Summary List tracking statuses
// @Description Returns every status with its label and the statuses reachable from it.
// @Tags tracking
// @Produce json
// @Success 200 {array} StatusInfo
// @Router /tracking/statuses [get]
func (h *TrackingHandler) ListStatuses(c *fiber.Ctx) error {
	all := domain.AllStatuses()
	out := make([]StatusInfo, 0, len(all))
	for _, s := range all {
		out = append(out, StatusInfo{
			Value:    s,
			Label:    s.Label(),
			Terminal: s.IsTerminal(),
			Next:     domain.RemainingStatuses(s),
		})
	}
	return c.JSON(out)
}

func (h *TrackingHandler) fail(c *fiber.Ctx, orderID string, err error) error {
	return h.failWithDecision(c, orderID, err, nil)
}

// failWithDecision maps workflow errors to HTTP answers. The decision is
// echoed only for local validation outcomes.
func (h *TrackingHandler) failWithDecision(c *fiber.Ctx, orderID string, err error, decision *domain.Decision) error {
	status := fiber.StatusInternalServerError
	msg := err.Error()
	var echo *domain.Decision

	var invalid *domain.ErrInvalidTransition
	var remote *service.RemoteFailure
	var upstream *httpclient.RemoteError

	switch {
	case errors.As(err, &invalid):
		status = fiber.StatusUnprocessableEntity
		msg = invalid.Reason
		echo = decision
	case errors.Is(err, service.ErrConfirmationRequired):
		status = fiber.StatusConflict
		echo = decision
	case errors.Is(err, service.ErrMutationInFlight),
		errors.Is(err, service.ErrTrackingExists):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrResetNotAllowed):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNoTracking),
		errors.Is(err, orderdomain.ErrOrderNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrCarrierRequired),
		errors.Is(err, domain.ErrTrackingNumberRequired),
		errors.Is(err, domain.ErrMissingShippingData):
		status = fiber.StatusBadRequest
	case errors.As(err, &remote):
		status = fiber.StatusBadGateway
		msg = remote.Message
	case errors.As(err, &upstream):
		status = fiber.StatusBadGateway
	}

	if status >= fiber.StatusInternalServerError {
		logger.Get().Error("Tracking request failed",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message:  msg,
		RayID:    rayID(c),
		Decision: echo,
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
