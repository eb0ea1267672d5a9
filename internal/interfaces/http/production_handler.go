package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/production"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// ProductionHandler maneja las peticiones HTTP del flujo de producción (protegido).
type ProductionHandler struct {
	workflow *production.WorkflowUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(workflow *production.WorkflowUseCase) *ProductionHandler {
	return &ProductionHandler{workflow: workflow}
}

// Start godoc
// @Summary      Iniciar una orden de producción (pending → in_progress)
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden de producción"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/runs/{id}/start [post]
func (h *ProductionHandler) Start(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.workflow.Start(c.Context(), companyID, c.Params("id")); err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producción iniciada"})
}

// Finish godoc
// @Summary      Cerrar una orden de producción
// @Description  Outcome completed o approved persiste la cantidad producida;
//
//	approved además crea/actualiza la tarea de empaque y registra la entrada
//	a stock, todo en una transacción. Reintentos de approved son idempotentes.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la orden de producción"
// @Param        body  body  dto.FinishProductionRequest  true  "produced_qty y outcome"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/runs/{id}/finish [post]
func (h *ProductionHandler) Finish(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.FinishProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.workflow.Finish(c.Context(), companyID, userID, c.Params("id"), in.ProducedQty, in.Outcome); err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producción cerrada"})
}

func productionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidTransition) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidQuantity) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
