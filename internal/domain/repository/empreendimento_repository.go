package repository

import (
	"context"

	"github.com/predialtech/garantia-api/internal/domain/entity"
)

// EmpreendimentoRepository porta de persistência para empreendimentos.
// Implementações devolvem (nil, nil) quando o recurso não existe.
type EmpreendimentoRepository interface {
	Create(ctx context.Context, e *entity.Empreendimento) error
	GetByID(ctx context.Context, id string) (*entity.Empreendimento, error)
	Update(ctx context.Context, e *entity.Empreendimento) error
	Delete(ctx context.Context, id string) error
	ListByConstrutora(ctx context.Context, construtoraID string, limit, offset int) ([]*entity.Empreendimento, error)
	// ListAll devolve todos os empreendimentos de todos os tenants; usado pela
	// varredura periódica de notificações.
	ListAll(ctx context.Context) ([]*entity.Empreendimento, error)
}
