// Package report gera o Relatório de Conformidade de manutenção de um
// empreendimento (PDF para prestação de contas ao condomínio e seguradora).
package report

import (
	"context"
	"fmt"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
)

// PDFGenerator porta para o gerador de PDF (implementação Maroto na
// infraestrutura).
type PDFGenerator interface {
	GenerateComplianceReport(ctx context.Context, emp *entity.Empreendimento, conf *dto.ConformidadeDTO) ([]byte, error)
}

// ComplianceReportUseCase monta o snapshot de conformidade e delega a
// renderização ao gerador.
type ComplianceReportUseCase struct {
	empRepo     repository.EmpreendimentoRepository
	dashboardUC *usecase.DashboardUseCase
	generator   PDFGenerator
}

// NewComplianceReportUseCase constrói o caso de uso.
func NewComplianceReportUseCase(
	empRepo repository.EmpreendimentoRepository,
	dashboardUC *usecase.DashboardUseCase,
	generator PDFGenerator,
) *ComplianceReportUseCase {
	return &ComplianceReportUseCase{empRepo: empRepo, dashboardUC: dashboardUC, generator: generator}
}

// Generate devolve os bytes do PDF do relatório de conformidade.
func (uc *ComplianceReportUseCase) Generate(ctx context.Context, construtoraID, empreendimentoID string) ([]byte, error) {
	emp, err := uc.empRepo.GetByID(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}
	conf, err := uc.dashboardUC.Conformidade(ctx, construtoraID, empreendimentoID)
	if err != nil {
		return nil, fmt.Errorf("relatório: conformidade: %w", err)
	}
	return uc.generator.GenerateComplianceReport(ctx, emp, conf)
}
