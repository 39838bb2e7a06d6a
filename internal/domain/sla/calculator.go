// Package sla calcula prazos de atendimento de ordens de serviço a partir de
// regras (tipo de serviço, sistema construtivo) → dias corridos.
//
// Funções puras; "agora" é sempre parâmetro explícito.
package sla

import (
	"time"

	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
)

// Rule mapeia (tipo de serviço, sistema) para um prazo de atendimento em dias
// corridos. Sistema vazio é a regra padrão (fallback) do tipo.
type Rule struct {
	Tipo    entity.TipoServico
	Sistema string // vazio = padrão do tipo
	Dias    int
}

// Deadline resultado do cálculo. Dias e Data nulos quando nenhum SLA se aplica
// (novo serviço, ou nenhuma regra para o tipo) — ausência de regra não é erro.
type Deadline struct {
	Dias *int
	Data *time.Time
}

// RuleSet conjunto de regras com resolução determinística: a regra específica
// do sistema (nome exato) vence sobre a regra padrão do tipo; nunca há
// ambiguidade porque duplicatas são rejeitadas na construção.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet valida e monta o conjunto de regras. Rejeita dias não positivos,
// tipo inválido e pares (tipo, sistema) duplicados.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	seen := make(map[[2]string]bool, len(rules))
	for _, r := range rules {
		if !r.Tipo.Valida() {
			return nil, domain.NewValidationError("tipo", "tipo de serviço desconhecido: "+string(r.Tipo))
		}
		if r.Dias <= 0 {
			return nil, domain.NewValidationError("dias", "prazo de SLA deve ser positivo")
		}
		key := [2]string{string(r.Tipo), r.Sistema}
		if seen[key] {
			return nil, domain.NewValidationError("regra", "regra duplicada para ("+string(r.Tipo)+", "+r.Sistema+")")
		}
		seen[key] = true
	}
	return &RuleSet{rules: rules}, nil
}

// ComputeDeadline resolve o prazo de atendimento de uma OS.
//
//   - Novo serviço nunca tem SLA → {nil, nil}.
//   - Regra específica do sistema vence sobre a padrão do tipo; sem nenhuma
//     regra para o tipo → {nil, nil} (o chamador decide se aceita).
//   - Data = solicitadaEm + dias corridos (não úteis).
func (rs *RuleSet) ComputeDeadline(tipo entity.TipoServico, sistema string, solicitadaEm time.Time) (Deadline, error) {
	if !tipo.Valida() {
		return Deadline{}, domain.NewValidationError("tipo", "tipo de serviço desconhecido: "+string(tipo))
	}
	if solicitadaEm.IsZero() {
		return Deadline{}, domain.NewValidationError("solicitadaEm", "data de solicitação zerada")
	}
	if tipo == entity.TipoNovoServico {
		return Deadline{}, nil
	}

	dias, ok := rs.resolve(tipo, sistema)
	if !ok {
		return Deadline{}, nil
	}
	base := time.Date(solicitadaEm.Year(), solicitadaEm.Month(), solicitadaEm.Day(), 0, 0, 0, 0, time.UTC)
	data := base.AddDate(0, 0, dias)
	return Deadline{Dias: &dias, Data: &data}, nil
}

func (rs *RuleSet) resolve(tipo entity.TipoServico, sistema string) (int, bool) {
	var padrao *Rule
	for i := range rs.rules {
		r := &rs.rules[i]
		if r.Tipo != tipo {
			continue
		}
		if sistema != "" && r.Sistema == sistema {
			return r.Dias, true
		}
		if r.Sistema == "" {
			padrao = r
		}
	}
	if padrao != nil {
		return padrao.Dias, true
	}
	return 0, false
}

// DefaultRules regras de fallback usadas pelo seed quando a construtora ainda
// não configurou SLAs próprios.
func DefaultRules() []Rule {
	return []Rule{
		{Tipo: entity.TipoGarantia, Sistema: "", Dias: 15},
		{Tipo: entity.TipoGarantia, Sistema: "Impermeabilização", Dias: 10},
		{Tipo: entity.TipoGarantia, Sistema: "Estrutura", Dias: 7},
		{Tipo: entity.TipoGarantia, Sistema: "Instalações Hidrossanitárias - Tubulações", Dias: 10},
		{Tipo: entity.TipoPreventiva, Sistema: "", Dias: 30},
	}
}
