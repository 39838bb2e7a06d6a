// Package compliance agrega manutenções previstas × executadas em percentuais
// de conformidade (NBR 5674), por sistema e geral, com motivos de não
// conformidade.
//
// Funções puras; cada elemento da lista de previstas representa uma execução
// esperada no período (o chamador expande periodicidades em ocorrências).
package compliance

import (
	"fmt"
	"math"
	"sort"

	"github.com/predialtech/garantia-api/internal/domain/entity"
	"time"
)

// BucketOutros agrupa itens sem sistema construtivo definido.
const BucketOutros = "Outros"

// LimiteConformidade abaixo deste percentual geral o empreendimento é marcado
// "em risco". O corte de 70% é contrato, não detalhe de apresentação.
const LimiteConformidade = 70

// SistemaConformidade conformidade de um sistema construtivo.
type SistemaConformidade struct {
	Sistema    string
	Previstas  int
	Concluidas int
	Percentual int // round(100·min(concluídas, previstas)/previstas); 0 se previstas = 0
}

// Snapshot resultado derivado da agregação; nunca persistido.
type Snapshot struct {
	Percentual       int // percentual geral sobre os totais achatados
	PorSistema       []SistemaConformidade
	NaoConformidades []string
	EmRisco          bool // Percentual < LimiteConformidade
}

// Aggregate combina o plano de manutenção (execuções previstas no período) com
// as ordens de serviço do empreendimento.
//
//   - Agrupa por sistema; sistema vazio cai no balde "Outros".
//   - Percentual por sistema limita concluídas a previstas (execuções extras
//     não empurram um sistema acima de 100%).
//   - O percentual geral é calculado sobre os totais achatados, não como média
//     dos percentuais por sistema (evita viés de sistemas com poucos itens).
//   - Previstas = 0 resulta em percentual 0, nunca divisão por zero.
//   - Não conformidades: nenhuma preventiva concluída apesar de haver
//     previstas; e OS abertas com prazo de atendimento vencido.
func Aggregate(previstas []entity.AtividadeManutencao, ordens []entity.OrdemServico, hoje time.Time) Snapshot {
	type contagem struct {
		previstas  int
		concluidas int
	}
	porSistema := make(map[string]*contagem)
	bucket := func(sistema string) *contagem {
		if sistema == "" {
			sistema = BucketOutros
		}
		c, ok := porSistema[sistema]
		if !ok {
			c = &contagem{}
			porSistema[sistema] = c
		}
		return c
	}

	for _, a := range previstas {
		bucket(a.Sistema).previstas++
	}

	atrasadas := 0
	for _, os := range ordens {
		if os.Atrasada(hoje) {
			atrasadas++
		}
		if os.Tipo == entity.TipoPreventiva && os.Status == entity.StatusConcluida {
			bucket(os.Sistema).concluidas++
		}
	}

	snap := Snapshot{}
	totalPrevistas, totalConcluidas := 0, 0
	nomes := make([]string, 0, len(porSistema))
	for nome := range porSistema {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes) // saída determinística: mesma entrada, mesmo snapshot

	for _, nome := range nomes {
		c := porSistema[nome]
		snap.PorSistema = append(snap.PorSistema, SistemaConformidade{
			Sistema:    nome,
			Previstas:  c.previstas,
			Concluidas: c.concluidas,
			Percentual: percentual(c.concluidas, c.previstas),
		})
		totalPrevistas += c.previstas
		totalConcluidas += min(c.concluidas, c.previstas)
	}
	snap.Percentual = percentual(totalConcluidas, totalPrevistas)
	snap.EmRisco = snap.Percentual < LimiteConformidade

	preventivasConcluidas := 0
	for _, s := range snap.PorSistema {
		preventivasConcluidas += s.Concluidas
	}
	if totalPrevistas > 0 && preventivasConcluidas == 0 {
		snap.NaoConformidades = append(snap.NaoConformidades,
			"nenhuma manutenção preventiva realizada no período")
	}
	if atrasadas > 0 {
		snap.NaoConformidades = append(snap.NaoConformidades,
			fmt.Sprintf("%d ordens de serviço com prazo de atendimento vencido", atrasadas))
	}
	return snap
}

// percentual round(100·min(c, p)/p), 0 quando p = 0.
func percentual(concluidas, previstas int) int {
	if previstas <= 0 {
		return 0
	}
	if concluidas > previstas {
		concluidas = previstas
	}
	return int(math.Round(100 * float64(concluidas) / float64(previstas)))
}
