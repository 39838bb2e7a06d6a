package repository

import (
	"context"

	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/sla"
)

// SLARuleRepository porta de persistência para as regras de SLA de cada
// construtora. Lista vazia significa "sem regras configuradas" — o chamador
// decide o fallback (regras padrão ou nenhum prazo).
type SLARuleRepository interface {
	ListByConstrutora(ctx context.Context, construtoraID string) ([]sla.Rule, error)
	// Replace substitui o conjunto de regras da construtora atomicamente.
	Replace(ctx context.Context, construtoraID string, regras []sla.Rule) error
}

// NotificacaoRepository trilha de auditoria dos alertas despachados.
type NotificacaoRepository interface {
	Create(ctx context.Context, n *entity.Notificacao) error
	ListByConstrutora(ctx context.Context, construtoraID string, limit, offset int) ([]*entity.Notificacao, error)
}
