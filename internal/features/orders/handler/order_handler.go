package handler

import (
	"context"
	"errors"
	"net/http"

	"fulfillment-admin/internal/core/logger"
	"fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderReader is the subset of OrderService the handler needs.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	Invalidate(ctx context.Context, orderID string) error
}

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service loads order snapshots.
	service OrderReader
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s OrderReader) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// GetOrder returns the order snapshot shown next to the tracking panel.
// @Summary Get Order by ID
// @Description Fetch the read-only order snapshot (payment status and method drive the status rules).
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Param refresh query bool false "Drop the cached snapshot before loading"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	rayID := rayIDFrom(c)

	if orderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID,
		})
	}

	if c.QueryBool("refresh") {
		if err := h.service.Invalidate(c.UserContext(), orderID); err != nil {
			logger.Get().Warn("Failed to invalidate cached order", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	order, err := h.service.GetOrder(c.UserContext(), orderID)
	if err != nil {
		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		status := http.StatusBadGateway
		msg := err.Error()

		if errors.Is(err, service.ErrOrderNotFound) {
			status = http.StatusNotFound
			msg = "Order not found"
		} else if errors.Is(err, service.ErrOrderIDRequired) {
			status = http.StatusBadRequest
			msg = "Order ID is required"
		}

		return c.Status(status).JSON(ErrorResponse{
			Message: msg,
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

func rayIDFrom(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
