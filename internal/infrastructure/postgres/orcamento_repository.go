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

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)
var _ repository.PrestadorRepository = (*PrestadorRepo)(nil)

const orcamentoCols = `id, os_id, prestador_id, valor, prazo_dias, observacoes, status, respondido_em, created_at, updated_at`

// OrcamentoRepo implementação do porto OrcamentoRepository sobre PostgreSQL.
type OrcamentoRepo struct {
	q Querier
}

// NewOrcamentoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewOrcamentoRepository(q Querier) *OrcamentoRepo {
	return &OrcamentoRepo{q: q}
}

func (r *OrcamentoRepo) Create(ctx context.Context, o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamentos (` + orcamentoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OSID, o.PrestadorID, o.Valor, o.PrazoDias,
		o.Observacoes, o.Status, o.RespondidoEm, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orçamento: %w", err)
	}
	return nil
}

func (r *OrcamentoRepo) GetByID(ctx context.Context, id string) (*entity.Orcamento, error) {
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos WHERE id = $1`
	o, err := scanOrcamento(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orçamento: %w", err)
	}
	return o, nil
}

func (r *OrcamentoRepo) Update(ctx context.Context, o *entity.Orcamento) error {
	query := `
		UPDATE orcamentos
		SET valor = $2, prazo_dias = $3, observacoes = $4, status = $5,
		    respondido_em = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.Valor, o.PrazoDias, o.Observacoes, o.Status, o.RespondidoEm, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orçamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrcamentoRepo) ListByOS(ctx context.Context, osID string) ([]*entity.Orcamento, error) {
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos WHERE os_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, osID)
	if err != nil {
		return nil, fmt.Errorf("list orçamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orcamento
	for rows.Next() {
		o, err := scanOrcamento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orçamento: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrcamento(row pgx.Row) (*entity.Orcamento, error) {
	var o entity.Orcamento
	err := row.Scan(
		&o.ID, &o.OSID, &o.PrestadorID, &o.Valor, &o.PrazoDias,
		&o.Observacoes, &o.Status, &o.RespondidoEm, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

const prestadorCols = `id, nome, cnpj, email, telefone, especialidade, cidade, uf, created_at, updated_at`

// PrestadorRepo implementação do porto PrestadorRepository sobre PostgreSQL.
type PrestadorRepo struct {
	q Querier
}

// NewPrestadorRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewPrestadorRepository(q Querier) *PrestadorRepo {
	return &PrestadorRepo{q: q}
}

func (r *PrestadorRepo) Create(ctx context.Context, p *entity.Prestador) error {
	query := `
		INSERT INTO prestadores (` + prestadorCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nome, p.CNPJ, p.Email, p.Telefone,
		p.Especialidade, p.Cidade, p.UF, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert prestador: %w", err)
	}
	return nil
}

func (r *PrestadorRepo) GetByID(ctx context.Context, id string) (*entity.Prestador, error) {
	query := `SELECT ` + prestadorCols + ` FROM prestadores WHERE id = $1`
	var p entity.Prestador
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nome, &p.CNPJ, &p.Email, &p.Telefone,
		&p.Especialidade, &p.Cidade, &p.UF, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prestador: %w", err)
	}
	return &p, nil
}

func (r *PrestadorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Prestador, error) {
	query := `SELECT ` + prestadorCols + ` FROM prestadores ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prestadores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prestador
	for rows.Next() {
		var p entity.Prestador
		if err := rows.Scan(
			&p.ID, &p.Nome, &p.CNPJ, &p.Email, &p.Telefone,
			&p.Especialidade, &p.Cidade, &p.UF, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prestador: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
