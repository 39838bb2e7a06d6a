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

var _ repository.EmpreendimentoRepository = (*EmpreendimentoRepo)(nil)

const empreendimentoCols = `id, construtora_id, nome, endereco, cidade, uf, habite_se, data_entrega, sindico_nome, sindico_email, created_at, updated_at`

// EmpreendimentoRepo implementação do porto EmpreendimentoRepository sobre PostgreSQL.
type EmpreendimentoRepo struct {
	q Querier
}

// NewEmpreendimentoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewEmpreendimentoRepository(q Querier) *EmpreendimentoRepo {
	return &EmpreendimentoRepo{q: q}
}

func (r *EmpreendimentoRepo) Create(ctx context.Context, e *entity.Empreendimento) error {
	query := `
		INSERT INTO empreendimentos (` + empreendimentoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ConstrutoraID, e.Nome, e.Endereco, e.Cidade, e.UF,
		e.HabiteSe, e.DataEntrega, e.SindicoNome, e.SindicoEmail, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empreendimento: %w", err)
	}
	return nil
}

func (r *EmpreendimentoRepo) GetByID(ctx context.Context, id string) (*entity.Empreendimento, error) {
	query := `SELECT ` + empreendimentoCols + ` FROM empreendimentos WHERE id = $1`
	e, err := scanEmpreendimento(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empreendimento: %w", err)
	}
	return e, nil
}

func (r *EmpreendimentoRepo) Update(ctx context.Context, e *entity.Empreendimento) error {
	query := `
		UPDATE empreendimentos
		SET nome = $2, endereco = $3, cidade = $4, uf = $5, habite_se = $6,
		    data_entrega = $7, sindico_nome = $8, sindico_email = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Nome, e.Endereco, e.Cidade, e.UF, e.HabiteSe,
		e.DataEntrega, e.SindicoNome, e.SindicoEmail, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empreendimento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmpreendimentoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM empreendimentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empreendimento: %w", err)
	}
	return nil
}

func (r *EmpreendimentoRepo) ListByConstrutora(ctx context.Context, construtoraID string, limit, offset int) ([]*entity.Empreendimento, error) {
	query := `
		SELECT ` + empreendimentoCols + `
		FROM empreendimentos WHERE construtora_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, construtoraID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empreendimentos: %w", err)
	}
	defer rows.Close()
	return collectEmpreendimentos(rows)
}

func (r *EmpreendimentoRepo) ListAll(ctx context.Context) ([]*entity.Empreendimento, error) {
	query := `SELECT ` + empreendimentoCols + ` FROM empreendimentos ORDER BY construtora_id, created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all empreendimentos: %w", err)
	}
	defer rows.Close()
	return collectEmpreendimentos(rows)
}

func scanEmpreendimento(row pgx.Row) (*entity.Empreendimento, error) {
	var e entity.Empreendimento
	err := row.Scan(
		&e.ID, &e.ConstrutoraID, &e.Nome, &e.Endereco, &e.Cidade, &e.UF,
		&e.HabiteSe, &e.DataEntrega, &e.SindicoNome, &e.SindicoEmail, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEmpreendimentos(rows pgx.Rows) ([]*entity.Empreendimento, error) {
	var list []*entity.Empreendimento
	for rows.Next() {
		e, err := scanEmpreendimento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empreendimento: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
