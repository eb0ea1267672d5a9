package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/routing"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// RoutingHandler maneja la asignación de rutas de reparto (protegido).
type RoutingHandler struct {
	allocate *routing.AllocateUseCase
}

// NewRoutingHandler construye el handler.
func NewRoutingHandler(allocate *routing.AllocateUseCase) *RoutingHandler {
	return &RoutingHandler{allocate: allocate}
}

// Allocate godoc
// @Summary      Asignar pedidos confirmados a vehículos de reparto
// @Description  Clasifica por región, empaca por capacidad en paradas y
//
//	devuelve las rutas con su enlace de navegación. No persiste nada.
//
// @Tags         routing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AllocateRoutesRequest  true  "origen y pedidos a repartir"
// @Success      200  {object}  dto.AllocateRoutesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/routes/allocate [post]
func (h *RoutingHandler) Allocate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AllocateRoutesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.allocate.Allocate(c.Context(), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(resp)
}
