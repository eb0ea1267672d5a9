package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// OrderHandler maneja cancelación y confirmación de venta de pedidos (protegido).
type OrderHandler struct {
	cancel  *orders.CancelOrderUseCase
	confirm *orders.ConfirmSaleUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(cancel *orders.CancelOrderUseCase, confirm *orders.ConfirmSaleUseCase) *OrderHandler {
	return &OrderHandler{cancel: cancel, confirm: confirm}
}

// Cancel godoc
// @Summary      Cancelar un pedido reponiendo el stock de sus líneas
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true   "ID del pedido"
// @Param        body  body  dto.CancelOrderRequest  false  "motivo de la cancelación"
// @Success      200  {object}  dto.CancelOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CancelOrderRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.cancel.CancelOrder(c.Context(), companyID, userID, c.Params("id"), in.Reason)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(resp)
}

// ConfirmSale godoc
// @Summary      Confirmar la venta de un pedido listo (descuenta stock)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/confirm-sale [post]
func (h *OrderHandler) ConfirmSale(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.confirm.ConfirmSale(c.Context(), companyID, userID, c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta confirmada"})
}

func orderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, domain.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrAlreadyCancelled) || errors.Is(err, domain.ErrNotCancellable) ||
		errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
