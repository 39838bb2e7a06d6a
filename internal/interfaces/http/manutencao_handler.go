package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// ManutencaoHandler trata as rotas HTTP do plano de manutenção preventiva
// (protegido).
type ManutencaoHandler struct {
	uc *usecase.ManutencaoUseCase
}

// NewManutencaoHandler constrói o handler.
func NewManutencaoHandler(uc *usecase.ManutencaoUseCase) *ManutencaoHandler {
	return &ManutencaoHandler{uc: uc}
}

// Create godoc
// @Summary      Adicionar atividade ao plano de manutenção
// @Tags         manutencao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAtividadeRequest  true  "Atividade"
// @Success      201   {object}  dto.AtividadeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manutencao/atividades [post]
func (h *ManutencaoHandler) Create(c *fiber.Ctx) error {
	construtoraID := GetConstrutoraID(c)
	if construtoraID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "construtora_id requerido"})
	}
	var in dto.CreateAtividadeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), construtoraID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar plano de manutenção de um empreendimento
// @Tags         manutencao
// @Security     Bearer
// @Produce      json
// @Param        empreendimento_id  query  string  true  "ID do empreendimento"
// @Success      200  {object}  dto.AtividadeListResponse
// @Router       /api/manutencao/atividades [get]
func (h *ManutencaoHandler) List(c *fiber.Ctx) error {
	empreendimentoID := c.Query("empreendimento_id")
	if empreendimentoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empreendimento_id é requerido"})
	}
	out, err := h.uc.List(c.Context(), GetConstrutoraID(c), empreendimentoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar atividade do plano
// @Tags         manutencao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da atividade"
// @Param        body  body  dto.UpdateAtividadeRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.AtividadeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manutencao/atividades/{id} [put]
func (h *ManutencaoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAtividadeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetConstrutoraID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "atividade não encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover atividade do plano
// @Tags         manutencao
// @Security     Bearer
// @Param        id  path  string  true  "ID da atividade"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manutencao/atividades/{id} [delete]
func (h *ManutencaoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetConstrutoraID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
