package dto

import "time"

// CreateAtividadeRequest item do plano de manutenção preventiva.
type CreateAtividadeRequest struct {
	EmpreendimentoID string    `json:"empreendimento_id"`
	Sistema          string    `json:"sistema"`
	Descricao        string    `json:"descricao"`
	Periodicidade    string    `json:"periodicidade"` // mensal | bimestral | trimestral | semestral | anual
	Responsavel      string    `json:"responsavel,omitempty"`
	InicioVigencia   time.Time `json:"inicio_vigencia"`
}

// UpdateAtividadeRequest atualização parcial.
type UpdateAtividadeRequest struct {
	Sistema       *string `json:"sistema,omitempty"`
	Descricao     *string `json:"descricao,omitempty"`
	Periodicidade *string `json:"periodicidade,omitempty"`
	Responsavel   *string `json:"responsavel,omitempty"`
	Ativa         *bool   `json:"ativa,omitempty"`
}

// AtividadeResponse representação de saída.
type AtividadeResponse struct {
	ID               string    `json:"id"`
	EmpreendimentoID string    `json:"empreendimento_id"`
	Sistema          string    `json:"sistema,omitempty"`
	Descricao        string    `json:"descricao"`
	Periodicidade    string    `json:"periodicidade"`
	Responsavel      string    `json:"responsavel,omitempty"`
	InicioVigencia   time.Time `json:"inicio_vigencia"`
	Ativa            bool      `json:"ativa"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AtividadeListResponse plano de manutenção de um empreendimento.
type AtividadeListResponse struct {
	Items []AtividadeResponse `json:"items"`
}
