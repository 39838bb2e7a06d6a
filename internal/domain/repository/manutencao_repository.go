package repository

import (
	"context"

	"github.com/predialtech/garantia-api/internal/domain/entity"
)

// AtividadeManutencaoRepository porta de persistência para o plano de
// manutenção preventiva.
type AtividadeManutencaoRepository interface {
	Create(ctx context.Context, a *entity.AtividadeManutencao) error
	GetByID(ctx context.Context, id string) (*entity.AtividadeManutencao, error)
	Update(ctx context.Context, a *entity.AtividadeManutencao) error
	Delete(ctx context.Context, id string) error
	ListByEmpreendimento(ctx context.Context, empreendimentoID string) ([]*entity.AtividadeManutencao, error)
}
