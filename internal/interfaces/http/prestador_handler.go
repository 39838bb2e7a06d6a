package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// PrestadorHandler cadastro e consulta de prestadores (protegido).
type PrestadorHandler struct {
	uc *usecase.PrestadorUseCase
}

// NewPrestadorHandler constrói o handler.
func NewPrestadorHandler(uc *usecase.PrestadorUseCase) *PrestadorHandler {
	return &PrestadorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar prestador
// @Tags         prestadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrestadorRequest  true  "Dados do prestador"
// @Success      201   {object}  dto.PrestadorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prestadores [post]
func (h *PrestadorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrestadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter prestador por ID
// @Tags         prestadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do prestador"
// @Success      200  {object}  dto.PrestadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prestadores/{id} [get]
func (h *PrestadorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prestador não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar prestadores
// @Tags         prestadores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PrestadorListResponse
// @Router       /api/prestadores [get]
func (h *PrestadorHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// NotificacaoHandler trilha de auditoria dos alertas enviados (protegido).
type NotificacaoHandler struct {
	uc *usecase.NotificacaoUseCase
}

// NewNotificacaoHandler constrói o handler.
func NewNotificacaoHandler(uc *usecase.NotificacaoUseCase) *NotificacaoHandler {
	return &NotificacaoHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificações enviadas
// @Tags         notificacoes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.NotificacaoListResponse
// @Router       /api/notificacoes [get]
func (h *NotificacaoHandler) List(c *fiber.Ctx) error {
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
