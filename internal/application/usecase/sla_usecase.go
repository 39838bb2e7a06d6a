package usecase

import (
	"context"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/internal/domain/sla"
)

// SLAConfigUseCase configuração das regras de prazo de atendimento da
// construtora.
type SLAConfigUseCase struct {
	repo repository.SLARuleRepository
}

// NewSLAConfigUseCase constrói o caso de uso.
func NewSLAConfigUseCase(repo repository.SLARuleRepository) *SLAConfigUseCase {
	return &SLAConfigUseCase{repo: repo}
}

// List devolve as regras configuradas; vazio quando a construtora ainda usa
// as regras padrão.
func (uc *SLAConfigUseCase) List(ctx context.Context, construtoraID string) (*dto.SLARuleListResponse, error) {
	regras, err := uc.repo.ListByConstrutora(ctx, construtoraID)
	if err != nil {
		return nil, err
	}
	out := &dto.SLARuleListResponse{Items: make([]dto.SLARuleDTO, 0, len(regras))}
	for _, r := range regras {
		out.Items = append(out.Items, dto.SLARuleDTO{Tipo: string(r.Tipo), Sistema: r.Sistema, Dias: r.Dias})
	}
	return out, nil
}

// Replace valida e substitui o conjunto completo de regras da construtora.
// A validação usa a mesma construção que o cálculo de prazo: um conjunto que
// não passa aqui nunca chega ao banco.
func (uc *SLAConfigUseCase) Replace(ctx context.Context, construtoraID string, in dto.ReplaceSLARulesRequest) (*dto.SLARuleListResponse, error) {
	regras := make([]sla.Rule, 0, len(in.Items))
	for _, item := range in.Items {
		regras = append(regras, sla.Rule{
			Tipo:    entity.TipoServico(item.Tipo),
			Sistema: item.Sistema,
			Dias:    item.Dias,
		})
	}
	if _, err := sla.NewRuleSet(regras); err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(ctx, construtoraID, regras); err != nil {
		return nil, err
	}
	return &dto.SLARuleListResponse{Items: in.Items}, nil
}
