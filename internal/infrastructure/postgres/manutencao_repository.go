package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
)

var _ repository.AtividadeManutencaoRepository = (*AtividadeManutencaoRepo)(nil)

const atividadeCols = `id, construtora_id, empreendimento_id, sistema, descricao, periodicidade, responsavel, inicio_vigencia, ativa, created_at, updated_at`

// AtividadeManutencaoRepo implementação do porto AtividadeManutencaoRepository
// sobre PostgreSQL.
type AtividadeManutencaoRepo struct {
	q Querier
}

// NewAtividadeManutencaoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewAtividadeManutencaoRepository(q Querier) *AtividadeManutencaoRepo {
	return &AtividadeManutencaoRepo{q: q}
}

func (r *AtividadeManutencaoRepo) Create(ctx context.Context, a *entity.AtividadeManutencao) error {
	query := `
		INSERT INTO atividades_manutencao (` + atividadeCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ConstrutoraID, a.EmpreendimentoID, a.Sistema, a.Descricao,
		a.Periodicidade, a.Responsavel, a.InicioVigencia, a.Ativa, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert atividade de manutenção: %w", err)
	}
	return nil
}

func (r *AtividadeManutencaoRepo) GetByID(ctx context.Context, id string) (*entity.AtividadeManutencao, error) {
	query := `SELECT ` + atividadeCols + ` FROM atividades_manutencao WHERE id = $1`
	a, err := scanAtividade(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get atividade de manutenção: %w", err)
	}
	return a, nil
}

func (r *AtividadeManutencaoRepo) Update(ctx context.Context, a *entity.AtividadeManutencao) error {
	query := `
		UPDATE atividades_manutencao
		SET sistema = $2, descricao = $3, periodicidade = $4, responsavel = $5,
		    inicio_vigencia = $6, ativa = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.Sistema, a.Descricao, a.Periodicidade, a.Responsavel,
		a.InicioVigencia, a.Ativa, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update atividade de manutenção: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AtividadeManutencaoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM atividades_manutencao WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete atividade de manutenção: %w", err)
	}
	return nil
}

func (r *AtividadeManutencaoRepo) ListByEmpreendimento(ctx context.Context, empreendimentoID string) ([]*entity.AtividadeManutencao, error) {
	query := `
		SELECT ` + atividadeCols + `
		FROM atividades_manutencao WHERE empreendimento_id = $1
		ORDER BY sistema, descricao`
	rows, err := r.q.Query(ctx, query, empreendimentoID)
	if err != nil {
		return nil, fmt.Errorf("list atividades de manutenção: %w", err)
	}
	defer rows.Close()
	var list []*entity.AtividadeManutencao
	for rows.Next() {
		a, err := scanAtividade(rows)
		if err != nil {
			return nil, fmt.Errorf("scan atividade de manutenção: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAtividade(row pgx.Row) (*entity.AtividadeManutencao, error) {
	var a entity.AtividadeManutencao
	err := row.Scan(
		&a.ID, &a.ConstrutoraID, &a.EmpreendimentoID, &a.Sistema, &a.Descricao,
		&a.Periodicidade, &a.Responsavel, &a.InicioVigencia, &a.Ativa, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
