// Package alerting decide quais prazos e lacunas de manutenção merecem alerta
// e com que urgência. Produz apenas decisões: deduplicação e despacho (e-mail)
// são responsabilidade dos colaboradores que consomem o resultado.
package alerting

import (
	"fmt"
	"time"

	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/warranty"
)

// Urgencia faixas de alerta.
type Urgencia string

const (
	UrgenciaNenhuma Urgencia = "NENHUMA"
	UrgenciaMedia   Urgencia = "MEDIA"
	UrgenciaAlta    Urgencia = "ALTA"
	UrgenciaCritica Urgencia = "CRITICA"
)

// JanelaLacunaDias lacuna máxima sem manutenção preventiva concluída antes de
// alertar (6 meses, NBR 5674).
const JanelaLacunaDias = 180

// Decisao resultado da classificação de um prazo.
type Decisao struct {
	Urgencia Urgencia
	Mensagem string
}

// Classify aplica a tabela de decisão sobre o prazo de atendimento de uma OS,
// nesta ordem de precedência:
//
//  1. prazo < hoje            → CRITICA (informa dias de atraso)
//  2. garantia e faltam <= 2  → ALTA
//  3. faltam <= 7 dias        → MEDIA
//  4. senão                   → NENHUMA (nenhum alerta emitido)
//
// Monotônica: reduzir os dias até o prazo nunca reduz a faixa de urgência.
func Classify(prazo time.Time, tipo entity.TipoServico, hoje time.Time) (Decisao, error) {
	if prazo.IsZero() {
		return Decisao{}, domain.NewValidationError("prazo", "data de prazo zerada")
	}
	if hoje.IsZero() {
		return Decisao{}, domain.NewValidationError("hoje", "data de referência zerada")
	}
	if !tipo.Valida() {
		return Decisao{}, domain.NewValidationError("tipo", "tipo de serviço desconhecido: "+string(tipo))
	}

	faltam := warranty.DaysBetween(hoje, prazo)
	switch {
	case faltam < 0:
		return Decisao{
			Urgencia: UrgenciaCritica,
			Mensagem: fmt.Sprintf("prazo de atendimento vencido há %d dia(s)", -faltam),
		}, nil
	case tipo == entity.TipoGarantia && faltam <= 2:
		return Decisao{
			Urgencia: UrgenciaAlta,
			Mensagem: fmt.Sprintf("ordem de garantia vence em %d dia(s)", faltam),
		}, nil
	case faltam <= 7:
		return Decisao{
			Urgencia: UrgenciaMedia,
			Mensagem: fmt.Sprintf("prazo de atendimento vence em %d dia(s)", faltam),
		}, nil
	}
	return Decisao{Urgencia: UrgenciaNenhuma}, nil
}

// MaintenanceGap verifica a lacuna de manutenção preventiva de um
// empreendimento: se nenhuma OS preventiva foi concluída nos últimos 180 dias
// contados de max(última preventiva concluída, data de referência do
// empreendimento), emite alerta de urgência ALTA.
//
// A decisão é idempotente dado o mesmo input ("deve alertar agora", não "já
// alertei"); quem despacha é responsável por não duplicar envios no mesmo dia.
func MaintenanceGap(ultimaPreventiva *time.Time, referencia time.Time, hoje time.Time) (Decisao, bool, error) {
	if referencia.IsZero() {
		return Decisao{}, false, domain.NewValidationError("referencia", "data de referência zerada")
	}
	if hoje.IsZero() {
		return Decisao{}, false, domain.NewValidationError("hoje", "data de referência zerada")
	}

	base := referencia
	if ultimaPreventiva != nil && ultimaPreventiva.After(base) {
		base = *ultimaPreventiva
	}
	lacuna := warranty.DaysBetween(base, hoje)
	if lacuna <= JanelaLacunaDias {
		return Decisao{Urgencia: UrgenciaNenhuma}, false, nil
	}
	return Decisao{
		Urgencia: UrgenciaAlta,
		Mensagem: fmt.Sprintf("nenhuma manutenção preventiva concluída há %d dias", lacuna),
	}, true, nil
}
