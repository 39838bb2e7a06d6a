package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// OrcamentoHandler trata as rotas HTTP do marketplace de orçamentos (protegido).
type OrcamentoHandler struct {
	uc *usecase.OrcamentoUseCase
}

// NewOrcamentoHandler constrói o handler.
func NewOrcamentoHandler(uc *usecase.OrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{uc: uc}
}

// Submit godoc
// @Summary      Submeter orçamento para uma OS
// @Tags         orcamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da OS"
// @Param        body  body  dto.CreateOrcamentoRequest  true  "Proposta"
// @Success      201   {object}  dto.OrcamentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/os/{id}/orcamentos [post]
func (h *OrcamentoHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.PrestadorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "prestador_id é requerido"})
	}
	out, err := h.uc.Submit(c.Context(), GetConstrutoraID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOS godoc
// @Summary      Listar orçamentos de uma OS
// @Tags         orcamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da OS"
// @Success      200  {object}  dto.OrcamentoListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/os/{id}/orcamentos [get]
func (h *OrcamentoHandler) ListByOS(c *fiber.Ctx) error {
	out, err := h.uc.ListByOS(c.Context(), GetConstrutoraID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Aceitar um orçamento
// @Description  Aceita o orçamento escolhido, recusa os concorrentes e move a OS para EM_ANDAMENTO — numa única transação.
// @Tags         orcamentos
// @Security     Bearer
// @Produce      json
// @Param        id           path  string  true  "ID da OS"
// @Param        orcamentoId  path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.OrcamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/os/{id}/orcamentos/{orcamentoId}/aceite [post]
func (h *OrcamentoHandler) Accept(c *fiber.Ctx) error {
	out, err := h.uc.Accept(c.Context(), GetConstrutoraID(c), c.Params("id"), c.Params("orcamentoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
