package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
)

// OSHandler trata as rotas HTTP de ordens de serviço (protegido).
type OSHandler struct {
	uc *usecase.OSUseCase
}

// NewOSHandler constrói o handler.
func NewOSHandler(uc *usecase.OSUseCase) *OSHandler {
	return &OSHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ordem de serviço
// @Description  O prazo de atendimento (SLA) é calculado na criação a partir das regras da construtora.
// @Tags         ordens-servico
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOSRequest  true  "Dados da OS"
// @Success      201   {object}  dto.OSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/os [post]
func (h *OSHandler) Create(c *fiber.Ctx) error {
	construtoraID := GetConstrutoraID(c)
	if construtoraID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "construtora_id requerido"})
	}
	var in dto.CreateOSRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.EmpreendimentoID == "" || in.Titulo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empreendimento_id e titulo são requeridos"})
	}
	out, err := h.uc.Create(c.Context(), construtoraID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter ordem de serviço por ID
// @Tags         ordens-servico
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da OS"
// @Success      200  {object}  dto.OSResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/os/{id} [get]
func (h *OSHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetConstrutoraID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ordem de serviço não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ordens de serviço de um empreendimento
// @Tags         ordens-servico
// @Security     Bearer
// @Produce      json
// @Param        empreendimento_id  query  string  true   "ID do empreendimento"
// @Param        status             query  string  false  "Filtro por status"
// @Param        tipo               query  string  false  "Filtro por tipo"
// @Param        limit              query  int     false  "Limite"  default(20)
// @Param        offset             query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.OSListResponse
// @Router       /api/os [get]
func (h *OSHandler) List(c *fiber.Ctx) error {
	empreendimentoID := c.Query("empreendimento_id")
	if empreendimentoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empreendimento_id é requerido"})
	}
	filtro := repository.OSFilter{
		Status: entity.StatusOS(c.Query("status")),
		Tipo:   entity.TipoServico(c.Query("tipo")),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), GetConstrutoraID(c), empreendimentoID, filtro)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar status da ordem de serviço
// @Description  OS concluída ou cancelada fica imutável, exceto pelo relatório de conclusão.
// @Tags         ordens-servico
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da OS"
// @Param        body  body  dto.UpdateOSStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.OSResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/os/{id}/status [patch]
func (h *OSHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOSStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetConstrutoraID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ordem de serviço não encontrada"})
	}
	return c.JSON(out)
}
