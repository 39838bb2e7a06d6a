// Package warranty implementa o catálogo de prazos de garantia (NBR 17170) e o
// cálculo de janelas de garantia de um empreendimento.
//
// Todas as funções são puras: a data de referência "hoje" é sempre parâmetro
// explícito, nunca lida do relógio do sistema, para manter o cálculo
// determinístico e testável.
package warranty

import (
	"time"

	"github.com/predialtech/garantia-api/internal/domain"
)

// Kind classifica um prazo de garantia.
type Kind string

const (
	// KindLegal prazo mínimo legal (itens de solidez e segurança, 5 anos).
	KindLegal Kind = "legal"
	// KindOffered prazo contratual ofertado além do mínimo legal.
	KindOffered Kind = "ofertada"
)

// Term é um prazo de garantia do catálogo: um sistema construtivo e seus modos
// de falha cobertos, com duração em anos. Dados de referência, imutáveis em
// runtime.
type Term struct {
	Sistema     string
	Descricao   string
	ModosFalha  string // texto livre: defeitos cobertos
	PrazoAnos   int
	Kind        Kind
	Palavras    []string // palavras-chave para busca textual
}

// Validate rejeita prazos malformados (PrazoAnos não positivo, sistema vazio,
// kind fora do conjunto fechado).
func (t Term) Validate() error {
	if t.Sistema == "" {
		return domain.NewValidationError("sistema", "não pode ser vazio")
	}
	if t.PrazoAnos <= 0 {
		return domain.NewValidationError("prazoAnos", "deve ser inteiro positivo")
	}
	switch t.Kind {
	case KindLegal, KindOffered:
	default:
		return domain.NewValidationError("kind", "deve ser legal ou ofertada")
	}
	return nil
}

// Status de uma janela de garantia.
type Status string

const (
	// StatusPendente sem data de referência (obra não entregue).
	StatusPendente Status = "PENDENTE"
	// StatusVigente dentro do prazo (inclui início futuro: cobertura começa lá).
	StatusVigente Status = "VIGENTE"
	// StatusExpirada prazo vencido.
	StatusExpirada Status = "EXPIRADA"
)

// Window é a instanciação de um Term contra um empreendimento concreto.
// Sempre derivada, nunca persistida.
type Window struct {
	Term       Term
	Inicio     *time.Time // habite-se / entrega; nil = Pendente
	Vencimento *time.Time // Inicio + PrazoAnos anos-calendário; nil quando Pendente
	Status     Status
	// Dias com sinal: positivo = dias restantes de vigência; negativo = dias de
	// atraso desde a expiração (contagem inclui o dia do vencimento). Zero só
	// ocorre no último dia de vigência e é indefinido quando Pendente.
	Dias int
}
