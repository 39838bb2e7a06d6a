package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// DashboardHandler visão consolidada de um empreendimento: conformidade de
// manutenção, garantias por vencer e OS por faixa de urgência.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo godoc
// @Summary      Resumo do empreendimento
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do empreendimento"
// @Success      200  {object}  dto.DashboardResumoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id}/dashboard [get]
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo(c.Context(), GetConstrutoraID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empreendimento não encontrado"})
	}
	return c.JSON(out)
}

// Conformidade godoc
// @Summary      Snapshot de conformidade de manutenção (últimos 12 meses)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do empreendimento"
// @Success      200  {object}  dto.ConformidadeDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id}/conformidade [get]
func (h *DashboardHandler) Conformidade(c *fiber.Ctx) error {
	out, err := h.uc.Conformidade(c.Context(), GetConstrutoraID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empreendimento não encontrado"})
	}
	return c.JSON(out)
}
