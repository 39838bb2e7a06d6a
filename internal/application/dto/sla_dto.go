package dto

// SLARuleDTO uma regra de prazo de atendimento. Sistema vazio = regra padrão
// do tipo (fallback quando nenhuma regra específica casa).
type SLARuleDTO struct {
	Tipo    string `json:"tipo"` // garantia | manutencao_preventiva
	Sistema string `json:"sistema,omitempty"`
	Dias    int    `json:"dias"`
}

// SLARuleListResponse conjunto de regras da construtora.
type SLARuleListResponse struct {
	Items []SLARuleDTO `json:"items"`
}

// ReplaceSLARulesRequest substituição completa do conjunto de regras.
type ReplaceSLARulesRequest struct {
	Items []SLARuleDTO `json:"items"`
}
