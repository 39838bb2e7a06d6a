package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predialtech/garantia-api/internal/domain/repository"
)

var _ repository.AceiteTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAceite inicia uma transação, executa fn com repositórios atados à tx e
// faz Commit ou Rollback. Usado no aceite de orçamento: aceitar o escolhido,
// recusar os concorrentes e mover a OS — tudo ou nada.
func (r *TxRunner) RunAceite(ctx context.Context, fn func(
	osRepo repository.OrdemServicoRepository,
	orcRepo repository.OrcamentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	osRepo := NewOrdemServicoRepository(tx)
	orcRepo := NewOrcamentoRepository(tx)

	if err := fn(osRepo, orcRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
