package sla_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/predialtech/garantia-api/internal/domain/sla"
)

// SLA de 10 dias terminando em 2024-01-11 (início 2024-01-01).
const diasSLA = 10

var prazoSLA = time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)

func TestElapsedPercentage(t *testing.T) {
	casos := []struct {
		nome     string
		agora    time.Time
		esperado int
	}{
		{"no início", data(2024, time.January, 1), 0},
		{"meio do período", data(2024, time.January, 6), 50},
		{"oitenta por cento", data(2024, time.January, 9), 80},
		{"no prazo", data(2024, time.January, 11), 100},
		{"depois do prazo clampa em 100", data(2024, time.February, 1), 100},
		{"antes do início clampa em 0", data(2023, time.December, 20), 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, sla.ElapsedPercentage(prazoSLA, diasSLA, c.agora))
		})
	}
}

// Contrato de quatro faixas: <60% normal, 60–79% atenção, >=80% crítico,
// passado do prazo vencido.
func TestClassifyElapsed_QuatroFaixas(t *testing.T) {
	casos := []struct {
		nome     string
		agora    time.Time
		esperado sla.Tier
	}{
		{"recém-aberta", data(2024, time.January, 2), sla.TierNormal},
		{"59 por cento ainda normal", data(2024, time.January, 5), sla.TierNormal}, // 40%
		{"60 por cento entra em atenção", data(2024, time.January, 7), sla.TierAtencao},
		{"79 por cento ainda atenção", data(2024, time.January, 8), sla.TierAtencao}, // 70%
		{"80 por cento é crítico", data(2024, time.January, 9), sla.TierCritico},
		{"dia do prazo ainda crítico", data(2024, time.January, 11), sla.TierCritico},
		{"passou do prazo é vencido", data(2024, time.January, 12), sla.TierVencido},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, sla.ClassifyElapsed(prazoSLA, diasSLA, c.agora))
		})
	}
}

// Monotonicidade: avançando o relógio dia a dia a faixa nunca regride.
func TestClassifyElapsed_Monotonica(t *testing.T) {
	ordem := map[sla.Tier]int{
		sla.TierNormal:  0,
		sla.TierAtencao: 1,
		sla.TierCritico: 2,
		sla.TierVencido: 3,
	}
	anterior := -1
	for dia := 0; dia <= 20; dia++ {
		agora := data(2024, time.January, 1).AddDate(0, 0, dia)
		faixa := sla.ClassifyElapsed(prazoSLA, diasSLA, agora)
		assert.GreaterOrEqual(t, ordem[faixa], anterior,
			"no dia %d a faixa %s regrediu", dia, faixa)
		anterior = ordem[faixa]
	}
}
