package dto

import "time"

// CreateOSRequest abertura de ordem de serviço.
type CreateOSRequest struct {
	EmpreendimentoID string `json:"empreendimento_id"`
	Titulo           string `json:"titulo"`
	Descricao        string `json:"descricao"`
	Tipo             string `json:"tipo"`    // garantia | manutencao_preventiva | novo_servico
	Sistema          string `json:"sistema"` // sistema construtivo; vazio = não classificado
}

// UpdateOSStatusRequest transição de status.
type UpdateOSStatusRequest struct {
	Status             string `json:"status"`
	RelatorioConclusao string `json:"relatorio_conclusao,omitempty"`
}

// OSResponse representação de saída de uma OS, com a classificação de urgência
// do SLA já derivada (os consumidores não recalculam).
type OSResponse struct {
	ID                 string     `json:"id"`
	EmpreendimentoID   string     `json:"empreendimento_id"`
	Titulo             string     `json:"titulo"`
	Descricao          string     `json:"descricao"`
	Tipo               string     `json:"tipo"`
	Sistema            string     `json:"sistema,omitempty"`
	Status             string     `json:"status"`
	SolicitadaEm       time.Time  `json:"solicitada_em"`
	PrazoAtendimento   *time.Time `json:"prazo_atendimento,omitempty"`
	PrazoDias          *int       `json:"prazo_dias,omitempty"`
	SLAPercentual      *int       `json:"sla_percentual,omitempty"` // % do SLA decorrido
	SLAFaixa           string     `json:"sla_faixa,omitempty"`      // NORMAL | ATENCAO | CRITICO | VENCIDO
	PrestadorID        string     `json:"prestador_id,omitempty"`
	ConcluidaEm        *time.Time `json:"concluida_em,omitempty"`
	RelatorioConclusao string     `json:"relatorio_conclusao,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// OSListResponse lista paginada.
type OSListResponse struct {
	Items []OSResponse `json:"items"`
	Page  PageResponse `json:"page"`
}
