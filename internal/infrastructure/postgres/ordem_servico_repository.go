package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
)

var _ repository.OrdemServicoRepository = (*OrdemServicoRepo)(nil)

const osCols = `id, construtora_id, empreendimento_id, titulo, descricao, tipo, sistema, status, solicitada_em, prazo_atendimento, prazo_dias, prestador_id, concluida_em, relatorio_conclusao, created_at, updated_at`

// OrdemServicoRepo implementação do porto OrdemServicoRepository sobre PostgreSQL.
type OrdemServicoRepo struct {
	q Querier
}

// NewOrdemServicoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewOrdemServicoRepository(q Querier) *OrdemServicoRepo {
	return &OrdemServicoRepo{q: q}
}

func (r *OrdemServicoRepo) Create(ctx context.Context, os *entity.OrdemServico) error {
	query := `
		INSERT INTO ordens_servico (` + osCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		os.ID, os.ConstrutoraID, os.EmpreendimentoID, os.Titulo, os.Descricao,
		os.Tipo, os.Sistema, os.Status, os.SolicitadaEm, os.PrazoAtendimento,
		os.PrazoDias, os.PrestadorID, os.ConcluidaEm, os.RelatorioConclusao,
		os.CreatedAt, os.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ordem de serviço: %w", err)
	}
	return nil
}

func (r *OrdemServicoRepo) GetByID(ctx context.Context, id string) (*entity.OrdemServico, error) {
	query := `SELECT ` + osCols + ` FROM ordens_servico WHERE id = $1`
	os, err := scanOS(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ordem de serviço: %w", err)
	}
	return os, nil
}

func (r *OrdemServicoRepo) Update(ctx context.Context, os *entity.OrdemServico) error {
	query := `
		UPDATE ordens_servico
		SET titulo = $2, descricao = $3, sistema = $4, status = $5,
		    prazo_atendimento = $6, prazo_dias = $7, prestador_id = $8,
		    concluida_em = $9, relatorio_conclusao = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		os.ID, os.Titulo, os.Descricao, os.Sistema, os.Status,
		os.PrazoAtendimento, os.PrazoDias, os.PrestadorID,
		os.ConcluidaEm, os.RelatorioConclusao, os.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ordem de serviço: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrdemServicoRepo) ListByEmpreendimento(ctx context.Context, empreendimentoID string, filtro repository.OSFilter) ([]*entity.OrdemServico, error) {
	query := `SELECT ` + osCols + ` FROM ordens_servico WHERE empreendimento_id = $1`
	args := []any{empreendimentoID}
	if filtro.Status != "" {
		args = append(args, filtro.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filtro.Tipo != "" {
		args = append(args, filtro.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	args = append(args, filtro.Limit)
	query += fmt.Sprintf(" ORDER BY solicitada_em DESC LIMIT $%d", len(args))
	args = append(args, filtro.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordens de serviço: %w", err)
	}
	defer rows.Close()
	return collectOS(rows)
}

func (r *OrdemServicoRepo) ListAbertasComPrazo(ctx context.Context) ([]*entity.OrdemServico, error) {
	query := `
		SELECT ` + osCols + `
		FROM ordens_servico
		WHERE status NOT IN ('CONCLUIDA', 'CANCELADA') AND prazo_atendimento IS NOT NULL
		ORDER BY prazo_atendimento`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list OS abertas com prazo: %w", err)
	}
	defer rows.Close()
	return collectOS(rows)
}

func (r *OrdemServicoRepo) UltimaPreventivaConcluida(ctx context.Context, empreendimentoID string) (*time.Time, error) {
	query := `
		SELECT MAX(concluida_em)
		FROM ordens_servico
		WHERE empreendimento_id = $1 AND tipo = 'manutencao_preventiva' AND status = 'CONCLUIDA'`
	var ultima *time.Time
	if err := r.q.QueryRow(ctx, query, empreendimentoID).Scan(&ultima); err != nil {
		return nil, fmt.Errorf("última preventiva concluída: %w", err)
	}
	return ultima, nil
}

func scanOS(row pgx.Row) (*entity.OrdemServico, error) {
	var os entity.OrdemServico
	err := row.Scan(
		&os.ID, &os.ConstrutoraID, &os.EmpreendimentoID, &os.Titulo, &os.Descricao,
		&os.Tipo, &os.Sistema, &os.Status, &os.SolicitadaEm, &os.PrazoAtendimento,
		&os.PrazoDias, &os.PrestadorID, &os.ConcluidaEm, &os.RelatorioConclusao,
		&os.CreatedAt, &os.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &os, nil
}

func collectOS(rows pgx.Rows) ([]*entity.OrdemServico, error) {
	var list []*entity.OrdemServico
	for rows.Next() {
		os, err := scanOS(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ordem de serviço: %w", err)
		}
		list = append(list, os)
	}
	return list, rows.Err()
}
