package dto

import "time"

// CreateEmpreendimentoRequest criação de empreendimento.
type CreateEmpreendimentoRequest struct {
	Nome         string     `json:"nome"`
	Endereco     string     `json:"endereco"`
	Cidade       string     `json:"cidade"`
	UF           string     `json:"uf"`
	HabiteSe     *time.Time `json:"habite_se,omitempty"`
	DataEntrega  *time.Time `json:"data_entrega,omitempty"`
	SindicoNome  string     `json:"sindico_nome,omitempty"`
	SindicoEmail string     `json:"sindico_email,omitempty"`
}

// UpdateEmpreendimentoRequest atualização parcial (campos nil não mudam).
type UpdateEmpreendimentoRequest struct {
	Nome         *string    `json:"nome,omitempty"`
	Endereco     *string    `json:"endereco,omitempty"`
	Cidade       *string    `json:"cidade,omitempty"`
	UF           *string    `json:"uf,omitempty"`
	HabiteSe     *time.Time `json:"habite_se,omitempty"`
	DataEntrega  *time.Time `json:"data_entrega,omitempty"`
	SindicoNome  *string    `json:"sindico_nome,omitempty"`
	SindicoEmail *string    `json:"sindico_email,omitempty"`
}

// EmpreendimentoResponse representação de saída.
type EmpreendimentoResponse struct {
	ID           string     `json:"id"`
	Nome         string     `json:"nome"`
	Endereco     string     `json:"endereco"`
	Cidade       string     `json:"cidade"`
	UF           string     `json:"uf"`
	HabiteSe     *time.Time `json:"habite_se,omitempty"`
	DataEntrega  *time.Time `json:"data_entrega,omitempty"`
	SindicoNome  string     `json:"sindico_nome,omitempty"`
	SindicoEmail string     `json:"sindico_email,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EmpreendimentoListResponse lista paginada.
type EmpreendimentoListResponse struct {
	Items []EmpreendimentoResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// GarantiaWindowResponse uma janela de garantia derivada para o empreendimento.
type GarantiaWindowResponse struct {
	Sistema    string     `json:"sistema"`
	Descricao  string     `json:"descricao"`
	PrazoAnos  int        `json:"prazo_anos"`
	Tipo       string     `json:"tipo"` // legal | ofertada
	Inicio     *time.Time `json:"inicio,omitempty"`
	Vencimento *time.Time `json:"vencimento,omitempty"`
	Status     string     `json:"status"` // PENDENTE | VIGENTE | EXPIRADA
	Dias       int        `json:"dias"`   // restantes (+) ou de atraso (−)
}

// GarantiasResponse janelas de garantia de um empreendimento.
type GarantiasResponse struct {
	EmpreendimentoID string                   `json:"empreendimento_id"`
	Referencia       *time.Time               `json:"referencia,omitempty"` // habite-se/entrega
	Janelas          []GarantiaWindowResponse `json:"janelas"`
}
