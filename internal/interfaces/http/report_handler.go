package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/report"
)

// ReportHandler download do Relatório de Conformidade em PDF (protegido).
type ReportHandler struct {
	uc *report.ComplianceReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.ComplianceReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Conformidade godoc
// @Summary      Relatório de Conformidade de manutenção (PDF)
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do empreendimento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empreendimentos/{id}/relatorio-conformidade [get]
func (h *ReportHandler) Conformidade(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.Generate(c.Context(), GetConstrutoraID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="conformidade-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
