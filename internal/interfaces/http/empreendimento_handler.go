package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// EmpreendimentoHandler trata as rotas HTTP de empreendimentos (protegido).
type EmpreendimentoHandler struct {
	uc *usecase.EmpreendimentoUseCase
}

// NewEmpreendimentoHandler constrói o handler.
func NewEmpreendimentoHandler(uc *usecase.EmpreendimentoUseCase) *EmpreendimentoHandler {
	return &EmpreendimentoHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar empreendimento
// @Tags         empreendimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpreendimentoRequest  true  "Dados do empreendimento"
// @Success      201   {object}  dto.EmpreendimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empreendimentos [post]
func (h *EmpreendimentoHandler) Create(c *fiber.Ctx) error {
	construtoraID := GetConstrutoraID(c)
	if construtoraID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "construtora_id requerido"})
	}
	var in dto.CreateEmpreendimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é requerido"})
	}
	out, err := h.uc.Create(c.Context(), construtoraID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter empreendimento por ID
// @Tags         empreendimentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do empreendimento"
// @Success      200  {object}  dto.EmpreendimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id} [get]
func (h *EmpreendimentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetConstrutoraID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empreendimento não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empreendimentos da construtora
// @Tags         empreendimentos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.EmpreendimentoListResponse
// @Router       /api/empreendimentos [get]
func (h *EmpreendimentoHandler) List(c *fiber.Ctx) error {
	construtoraID := GetConstrutoraID(c)
	if construtoraID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "construtora_id requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), construtoraID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar empreendimento
// @Tags         empreendimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do empreendimento"
// @Param        body  body  dto.UpdateEmpreendimentoRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.EmpreendimentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id} [put]
func (h *EmpreendimentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmpreendimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetConstrutoraID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empreendimento não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover empreendimento
// @Tags         empreendimentos
// @Security     Bearer
// @Param        id  path  string  true  "ID do empreendimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id} [delete]
func (h *EmpreendimentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetConstrutoraID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Garantias godoc
// @Summary      Janelas de garantia do empreendimento (catálogo NBR 17170)
// @Tags         empreendimentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do empreendimento"
// @Success      200  {object}  dto.GarantiasResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id}/garantias [get]
func (h *EmpreendimentoHandler) Garantias(c *fiber.Ctx) error {
	out, err := h.uc.Garantias(c.Context(), GetConstrutoraID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empreendimento não encontrado"})
	}
	return c.JSON(out)
}
