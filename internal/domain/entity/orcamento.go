package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusOrcamento estado de uma proposta no marketplace.
type StatusOrcamento string

const (
	OrcamentoPendente StatusOrcamento = "PENDENTE"
	OrcamentoAceito   StatusOrcamento = "ACEITO"
	OrcamentoRecusado StatusOrcamento = "RECUSADO"
)

// Orcamento é a proposta de um prestador para executar uma ordem de serviço.
// Apenas um orçamento por OS pode ser aceito; a aceitação move a OS para
// EM_ANDAMENTO e atribui o prestador (transação única).
type Orcamento struct {
	ID           string
	OSID         string
	PrestadorID  string
	Valor        decimal.Decimal // valor total proposto (R$)
	PrazoDias    int             // prazo de execução proposto
	Observacoes  string
	Status       StatusOrcamento
	RespondidoEm *time.Time // quando foi aceito/recusado
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
