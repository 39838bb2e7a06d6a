package alerting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/alerting"
	"github.com/predialtech/garantia-api/internal/domain/entity"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

var hoje = data(2024, time.June, 10)

// Vetor: prazo vencido há 3 dias → CRITICA para qualquer tipo de serviço.
func TestClassify_VencidoEhCritico(t *testing.T) {
	prazo := hoje.AddDate(0, 0, -3)
	for _, tipo := range []entity.TipoServico{entity.TipoGarantia, entity.TipoPreventiva, entity.TipoNovoServico} {
		d, err := alerting.Classify(prazo, tipo, hoje)
		require.NoError(t, err)
		assert.Equal(t, alerting.UrgenciaCritica, d.Urgencia, "tipo %s", tipo)
		assert.Contains(t, d.Mensagem, "3 dia")
	}
}

// Garantia a 2 dias do prazo → ALTA; os demais tipos a 2 dias → MEDIA.
func TestClassify_GarantiaAntecipaParaAlta(t *testing.T) {
	prazo := hoje.AddDate(0, 0, 2)

	d, err := alerting.Classify(prazo, entity.TipoGarantia, hoje)
	require.NoError(t, err)
	assert.Equal(t, alerting.UrgenciaAlta, d.Urgencia)

	d, err = alerting.Classify(prazo, entity.TipoPreventiva, hoje)
	require.NoError(t, err)
	assert.Equal(t, alerting.UrgenciaMedia, d.Urgencia)
}

func TestClassify_SeteDiasEhMedia(t *testing.T) {
	d, err := alerting.Classify(hoje.AddDate(0, 0, 7), entity.TipoPreventiva, hoje)
	require.NoError(t, err)
	assert.Equal(t, alerting.UrgenciaMedia, d.Urgencia)
}

// Longe do prazo não emite nada.
func TestClassify_LongeDoPrazoEhNenhuma(t *testing.T) {
	d, err := alerting.Classify(hoje.AddDate(0, 0, 8), entity.TipoGarantia, hoje)
	require.NoError(t, err)
	assert.Equal(t, alerting.UrgenciaNenhuma, d.Urgencia)
	assert.Empty(t, d.Mensagem)
}

// Monotonicidade: encolhendo os dias até o prazo a urgência nunca regride.
func TestClassify_Monotonica(t *testing.T) {
	ordem := map[alerting.Urgencia]int{
		alerting.UrgenciaNenhuma: 0,
		alerting.UrgenciaMedia:   1,
		alerting.UrgenciaAlta:    2,
		alerting.UrgenciaCritica: 3,
	}
	for _, tipo := range []entity.TipoServico{entity.TipoGarantia, entity.TipoPreventiva} {
		anterior := -1
		for faltam := 15; faltam >= -5; faltam-- {
			d, err := alerting.Classify(hoje.AddDate(0, 0, faltam), tipo, hoje)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, ordem[d.Urgencia], anterior,
				"tipo %s: a %d dias do prazo a urgência %s regrediu", tipo, faltam, d.Urgencia)
			anterior = ordem[d.Urgencia]
		}
	}
}

func TestClassify_EntradaMalformada(t *testing.T) {
	_, err := alerting.Classify(time.Time{}, entity.TipoGarantia, hoje)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = alerting.Classify(hoje, "tipo_estranho", hoje)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

// Lacuna de manutenção: mais de 180 dias sem preventiva concluída (contados de
// max(última preventiva, data de referência do empreendimento)) → alerta ALTA.
func TestMaintenanceGap_Alerta(t *testing.T) {
	referencia := hoje.AddDate(-2, 0, 0)
	ultima := hoje.AddDate(0, 0, -181)

	d, alertar, err := alerting.MaintenanceGap(&ultima, referencia, hoje)
	require.NoError(t, err)
	assert.True(t, alertar)
	assert.Equal(t, alerting.UrgenciaAlta, d.Urgencia)
	assert.Contains(t, d.Mensagem, "181 dias")
}

func TestMaintenanceGap_DentroDaJanelaNaoAlerta(t *testing.T) {
	referencia := hoje.AddDate(-2, 0, 0)
	ultima := hoje.AddDate(0, 0, -180) // exatamente no limite: ainda sem alerta

	d, alertar, err := alerting.MaintenanceGap(&ultima, referencia, hoje)
	require.NoError(t, err)
	assert.False(t, alertar)
	assert.Equal(t, alerting.UrgenciaNenhuma, d.Urgencia)
}

// Empreendimento recém-entregue sem nenhuma preventiva: a base é a data de
// referência, não alerta antes de 180 dias de vida.
func TestMaintenanceGap_EntregaRecenteNaoAlerta(t *testing.T) {
	referencia := hoje.AddDate(0, 0, -30)

	_, alertar, err := alerting.MaintenanceGap(nil, referencia, hoje)
	require.NoError(t, err)
	assert.False(t, alertar)
}

// A base é max(última preventiva, referência): uma preventiva antiga anterior à
// referência não encurta a janela.
func TestMaintenanceGap_BaseEhOMaisRecente(t *testing.T) {
	referencia := hoje.AddDate(0, 0, -100)
	ultimaAntiga := hoje.AddDate(-3, 0, 0)

	_, alertar, err := alerting.MaintenanceGap(&ultimaAntiga, referencia, hoje)
	require.NoError(t, err)
	assert.False(t, alertar, "referência há 100 dias mantém a janela dentro do limite")
}

// Idempotência: mesma entrada, mesma decisão (a política só decide "alertar
// agora"; dedupe de envio é de quem despacha).
func TestMaintenanceGap_Deterministico(t *testing.T) {
	referencia := hoje.AddDate(-1, 0, 0)

	d1, a1, err1 := alerting.MaintenanceGap(nil, referencia, hoje)
	d2, a2, err2 := alerting.MaintenanceGap(nil, referencia, hoje)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, a1, a2)
}
