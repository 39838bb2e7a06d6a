package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// SLAHandler configuração das regras de prazo de atendimento (protegido,
// restrito a admin/gestor).
type SLAHandler struct {
	uc *usecase.SLAConfigUseCase
}

// NewSLAHandler constrói o handler.
func NewSLAHandler(uc *usecase.SLAConfigUseCase) *SLAHandler {
	return &SLAHandler{uc: uc}
}

// List godoc
// @Summary      Regras de SLA da construtora
// @Tags         sla
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SLARuleListResponse
// @Router       /api/sla/regras [get]
func (h *SLAHandler) List(c *fiber.Ctx) error {
	construtoraID := GetConstrutoraID(c)
	if construtoraID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "construtora_id requerido"})
	}
	out, err := h.uc.List(c.Context(), construtoraID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Substituir o conjunto de regras de SLA
// @Description  Substituição completa e atômica; conjuntos com regras duplicadas ou prazos inválidos são rejeitados.
// @Tags         sla
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplaceSLARulesRequest  true  "Novo conjunto de regras"
// @Success      200   {object}  dto.SLARuleListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sla/regras [put]
func (h *SLAHandler) Replace(c *fiber.Ctx) error {
	construtoraID := GetConstrutoraID(c)
	if construtoraID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "construtora_id requerido"})
	}
	var in dto.ReplaceSLARulesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Replace(c.Context(), construtoraID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
