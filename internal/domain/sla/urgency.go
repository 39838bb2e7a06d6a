package sla

import (
	"time"

	"github.com/predialtech/garantia-api/internal/domain/warranty"
)

// Tier faixa de urgência pelo percentual de SLA decorrido. Contrato fixo de
// quatro faixas: consumidores (dashboards, política de notificação) dependem
// dos mesmos cortes para alertar de forma consistente.
type Tier string

const (
	TierNormal  Tier = "NORMAL"  // < 60% decorrido
	TierAtencao Tier = "ATENCAO" // 60–79%
	TierCritico Tier = "CRITICO" // >= 80%
	TierVencido Tier = "VENCIDO" // agora > prazo
)

// ElapsedPercentage percentual do SLA já decorrido, em [0,100].
//
// O período começa em (prazo − totalDias) e termina no prazo; antes do início
// devolve 0, depois do prazo devolve 100 (clamp, nunca estoura).
func ElapsedPercentage(prazo time.Time, totalDias int, agora time.Time) int {
	if totalDias <= 0 {
		return 100
	}
	inicio := prazo.AddDate(0, 0, -totalDias)
	decorrido := warranty.DaysBetween(inicio, agora)
	pct := decorrido * 100 / totalDias
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClassifyElapsed aplica as quatro faixas. "Vencido" é decidido pela data
// (agora > prazo), não pelo percentual clampado.
func ClassifyElapsed(prazo time.Time, totalDias int, agora time.Time) Tier {
	if warranty.DaysBetween(prazo, agora) > 0 {
		return TierVencido
	}
	pct := ElapsedPercentage(prazo, totalDias, agora)
	switch {
	case pct >= 80:
		return TierCritico
	case pct >= 60:
		return TierAtencao
	default:
		return TierNormal
	}
}
