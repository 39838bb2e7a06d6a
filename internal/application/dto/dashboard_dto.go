package dto

import "time"

// SistemaConformidadeDTO conformidade de um sistema construtivo.
type SistemaConformidadeDTO struct {
	Sistema    string `json:"sistema"`
	Previstas  int    `json:"previstas"`
	Concluidas int    `json:"concluidas"`
	Percentual int    `json:"percentual"`
}

// ConformidadeDTO snapshot de conformidade do empreendimento num período.
type ConformidadeDTO struct {
	EmpreendimentoID string                   `json:"empreendimento_id"`
	PeriodoInicio    time.Time                `json:"periodo_inicio"`
	PeriodoFim       time.Time                `json:"periodo_fim"`
	Percentual       int                      `json:"percentual"`
	EmRisco          bool                     `json:"em_risco"`
	PorSistema       []SistemaConformidadeDTO `json:"por_sistema"`
	NaoConformidades []string                 `json:"nao_conformidades,omitempty"`
}

// DashboardResumoDTO visão consolidada de um empreendimento: conformidade,
// garantias por vencer e OS por faixa de urgência de SLA.
type DashboardResumoDTO struct {
	EmpreendimentoID   string                   `json:"empreendimento_id"`
	Conformidade       ConformidadeDTO          `json:"conformidade"`
	GarantiasAVencer   []GarantiaWindowResponse `json:"garantias_a_vencer"`   // vencimento em até 90 dias
	GarantiasExpiradas int                      `json:"garantias_expiradas"`
	OSPorFaixa         map[string]int           `json:"os_por_faixa"` // NORMAL/ATENCAO/CRITICO/VENCIDO → contagem
	OSAbertas          int                      `json:"os_abertas"`
}

// TermoCatalogoResponse item do catálogo de garantias.
type TermoCatalogoResponse struct {
	Sistema    string   `json:"sistema"`
	Descricao  string   `json:"descricao"`
	ModosFalha string   `json:"modos_falha"`
	PrazoAnos  int      `json:"prazo_anos"`
	Tipo       string   `json:"tipo"` // legal | ofertada
	Palavras   []string `json:"palavras,omitempty"`
}
