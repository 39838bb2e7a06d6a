package repository

import (
	"context"

	"github.com/predialtech/garantia-api/internal/domain/entity"
)

// OrcamentoRepository porta de persistência para orçamentos do marketplace.
type OrcamentoRepository interface {
	Create(ctx context.Context, o *entity.Orcamento) error
	GetByID(ctx context.Context, id string) (*entity.Orcamento, error)
	Update(ctx context.Context, o *entity.Orcamento) error
	ListByOS(ctx context.Context, osID string) ([]*entity.Orcamento, error)
}

// PrestadorRepository porta de persistência para prestadores.
type PrestadorRepository interface {
	Create(ctx context.Context, p *entity.Prestador) error
	GetByID(ctx context.Context, id string) (*entity.Prestador, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Prestador, error)
}

// AceiteTxRunner executa o aceite de um orçamento numa única transação:
// marcar o orçamento aceito, recusar os concorrentes e mover a OS para
// EM_ANDAMENTO com o prestador atribuído — tudo ou nada.
type AceiteTxRunner interface {
	RunAceite(ctx context.Context, fn func(
		osRepo OrdemServicoRepository,
		orcRepo OrcamentoRepository,
	) error) error
}
