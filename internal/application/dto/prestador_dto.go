package dto

import "time"

// CreatePrestadorRequest cadastro de prestador.
type CreatePrestadorRequest struct {
	Nome          string `json:"nome"`
	CNPJ          string `json:"cnpj"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone,omitempty"`
	Especialidade string `json:"especialidade,omitempty"`
	Cidade        string `json:"cidade,omitempty"`
	UF            string `json:"uf,omitempty"`
}

// PrestadorResponse representação de saída.
type PrestadorResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	CNPJ          string    `json:"cnpj"`
	Email         string    `json:"email"`
	Telefone      string    `json:"telefone,omitempty"`
	Especialidade string    `json:"especialidade,omitempty"`
	Cidade        string    `json:"cidade,omitempty"`
	UF            string    `json:"uf,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PrestadorListResponse lista paginada.
type PrestadorListResponse struct {
	Items []PrestadorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// NotificacaoResponse item da trilha de auditoria de alertas.
type NotificacaoResponse struct {
	ID               string    `json:"id"`
	EmpreendimentoID string    `json:"empreendimento_id"`
	OSID             string    `json:"os_id,omitempty"`
	Urgencia         string    `json:"urgencia"`
	Assunto          string    `json:"assunto"`
	Mensagem         string    `json:"mensagem"`
	Destinatario     string    `json:"destinatario"`
	EnviadaEm        time.Time `json:"enviada_em"`
}

// NotificacaoListResponse lista paginada.
type NotificacaoListResponse struct {
	Items []NotificacaoResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
