package postgres

import (
	"context"
	"fmt"

	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/internal/domain/sla"
)

var _ repository.SLARuleRepository = (*SLARuleRepo)(nil)
var _ repository.NotificacaoRepository = (*NotificacaoRepo)(nil)

// SLARuleRepo implementação do porto SLARuleRepository sobre PostgreSQL.
type SLARuleRepo struct {
	q Querier
}

// NewSLARuleRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewSLARuleRepository(q Querier) *SLARuleRepo {
	return &SLARuleRepo{q: q}
}

func (r *SLARuleRepo) ListByConstrutora(ctx context.Context, construtoraID string) ([]sla.Rule, error) {
	query := `
		SELECT tipo, sistema, dias
		FROM sla_rules WHERE construtora_id = $1
		ORDER BY tipo, sistema`
	rows, err := r.q.Query(ctx, query, construtoraID)
	if err != nil {
		return nil, fmt.Errorf("list regras de SLA: %w", err)
	}
	defer rows.Close()
	var regras []sla.Rule
	for rows.Next() {
		var regra sla.Rule
		if err := rows.Scan(&regra.Tipo, &regra.Sistema, &regra.Dias); err != nil {
			return nil, fmt.Errorf("scan regra de SLA: %w", err)
		}
		regras = append(regras, regra)
	}
	return regras, rows.Err()
}

// Replace substitui o conjunto de regras da construtora numa única transação
// implícita (DELETE + INSERTs no mesmo Querier; usar via tx quando necessário).
func (r *SLARuleRepo) Replace(ctx context.Context, construtoraID string, regras []sla.Rule) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sla_rules WHERE construtora_id = $1`, construtoraID); err != nil {
		return fmt.Errorf("limpar regras de SLA: %w", err)
	}
	for _, regra := range regras {
		_, err := r.q.Exec(ctx,
			`INSERT INTO sla_rules (construtora_id, tipo, sistema, dias) VALUES ($1, $2, $3, $4)`,
			construtoraID, regra.Tipo, regra.Sistema, regra.Dias,
		)
		if err != nil {
			return fmt.Errorf("insert regra de SLA: %w", err)
		}
	}
	return nil
}

// NotificacaoRepo trilha de auditoria dos alertas enviados, sobre PostgreSQL.
type NotificacaoRepo struct {
	q Querier
}

// NewNotificacaoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewNotificacaoRepository(q Querier) *NotificacaoRepo {
	return &NotificacaoRepo{q: q}
}

func (r *NotificacaoRepo) Create(ctx context.Context, n *entity.Notificacao) error {
	query := `
		INSERT INTO notificacoes (id, construtora_id, empreendimento_id, os_id, urgencia, assunto, mensagem, destinatario, enviada_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.ConstrutoraID, n.EmpreendimentoID, n.OSID,
		n.Urgencia, n.Assunto, n.Mensagem, n.Destinatario, n.EnviadaEm,
	)
	if err != nil {
		return fmt.Errorf("insert notificação: %w", err)
	}
	return nil
}

func (r *NotificacaoRepo) ListByConstrutora(ctx context.Context, construtoraID string, limit, offset int) ([]*entity.Notificacao, error) {
	query := `
		SELECT id, construtora_id, empreendimento_id, os_id, urgencia, assunto, mensagem, destinatario, enviada_em
		FROM notificacoes WHERE construtora_id = $1
		ORDER BY enviada_em DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, construtoraID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notificações: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notificacao
	for rows.Next() {
		var n entity.Notificacao
		if err := rows.Scan(
			&n.ID, &n.ConstrutoraID, &n.EmpreendimentoID, &n.OSID,
			&n.Urgencia, &n.Assunto, &n.Mensagem, &n.Destinatario, &n.EnviadaEm,
		); err != nil {
			return nil, fmt.Errorf("scan notificação: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
