package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrcamentoRequest proposta de um prestador para uma OS.
type CreateOrcamentoRequest struct {
	PrestadorID string          `json:"prestador_id"`
	Valor       decimal.Decimal `json:"valor"`
	PrazoDias   int             `json:"prazo_dias"`
	Observacoes string          `json:"observacoes,omitempty"`
}

// OrcamentoResponse representação de saída.
type OrcamentoResponse struct {
	ID           string          `json:"id"`
	OSID         string          `json:"os_id"`
	PrestadorID  string          `json:"prestador_id"`
	Valor        decimal.Decimal `json:"valor"`
	PrazoDias    int             `json:"prazo_dias"`
	Observacoes  string          `json:"observacoes,omitempty"`
	Status       string          `json:"status"`
	RespondidoEm *time.Time      `json:"respondido_em,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrcamentoListResponse orçamentos de uma OS.
type OrcamentoListResponse struct {
	Items []OrcamentoResponse `json:"items"`
}
