package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/garantia-api/internal/application/usecase"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
)

func setupDashboard(
	t *testing.T,
	emp *entity.Empreendimento,
	atividades []*entity.AtividadeManutencao,
	ordens []*entity.OrdemServico,
) *usecase.DashboardUseCase {
	t.Helper()
	empRepo := newFakeEmpRepo(emp)
	osRepo := newFakeOSRepo(ordens...)
	atvRepo := newFakeAtvRepo(atividades...)
	return usecase.NewDashboardUseCase(empRepo, osRepo, atvRepo).WithNow(fixedNow)
}

func atividade(id, sistema string, per entity.Periodicidade, inicio time.Time) *entity.AtividadeManutencao {
	return &entity.AtividadeManutencao{
		ID:               id,
		ConstrutoraID:    tenantA,
		EmpreendimentoID: empID,
		Sistema:          sistema,
		Descricao:        "Inspeção periódica",
		Periodicidade:    per,
		InicioVigencia:   inicio,
		Ativa:            true,
	}
}

func preventivaConcluida(id, sistema string, concluidaEm time.Time) *entity.OrdemServico {
	return &entity.OrdemServico{
		ID:               id,
		ConstrutoraID:    tenantA,
		EmpreendimentoID: empID,
		Titulo:           "Manutenção " + sistema,
		Tipo:             entity.TipoPreventiva,
		Sistema:          sistema,
		Status:           entity.StatusConcluida,
		SolicitadaEm:     concluidaEm.AddDate(0, 0, -3),
		ConcluidaEm:      &concluidaEm,
	}
}

func TestConformidade_ExpandePeriodicidadeEmOcorrencias(t *testing.T) {
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA, Nome: "Residencial Teste"}
	// Semestral iniciada em jun/2024: duas ocorrências caem na janela de 12
	// meses (jun e dez). Anual de 2020: apenas a de abr/2024.
	atividades := []*entity.AtividadeManutencao{
		atividade("atv-1", "Impermeabilização", entity.PeriodicidadeSemestral, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		atividade("atv-2", "Cobertura", entity.PeriodicidadeAnual, time.Date(2020, 4, 15, 0, 0, 0, 0, time.UTC)),
	}
	ordens := []*entity.OrdemServico{
		preventivaConcluida("os-1", "Impermeabilização", time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)),
	}
	uc := setupDashboard(t, emp, atividades, ordens)

	conf, err := uc.Conformidade(context.Background(), tenantA, empID)
	require.NoError(t, err)

	require.Len(t, conf.PorSistema, 2)
	assert.Equal(t, "Cobertura", conf.PorSistema[0].Sistema)
	assert.Equal(t, 1, conf.PorSistema[0].Previstas)
	assert.Equal(t, 0, conf.PorSistema[0].Concluidas)
	assert.Equal(t, "Impermeabilização", conf.PorSistema[1].Sistema)
	assert.Equal(t, 2, conf.PorSistema[1].Previstas)
	assert.Equal(t, 1, conf.PorSistema[1].Concluidas)
	assert.Equal(t, 50, conf.PorSistema[1].Percentual)

	// geral sobre os totais achatados: 1 de 3
	assert.Equal(t, 33, conf.Percentual)
	assert.True(t, conf.EmRisco)
	assert.Empty(t, conf.NaoConformidades)
}

func TestConformidade_ConcluidaAntesDaJanelaNaoConta(t *testing.T) {
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA}
	atividades := []*entity.AtividadeManutencao{
		atividade("atv-1", "Impermeabilização", entity.PeriodicidadeSemestral, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}
	ordens := []*entity.OrdemServico{
		preventivaConcluida("os-1", "Impermeabilização", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
	}
	uc := setupDashboard(t, emp, atividades, ordens)

	conf, err := uc.Conformidade(context.Background(), tenantA, empID)
	require.NoError(t, err)

	assert.Equal(t, 0, conf.Percentual)
	assert.True(t, conf.EmRisco)
	assert.Contains(t, conf.NaoConformidades, "nenhuma manutenção preventiva realizada no período")
}

func TestConformidade_ExecucoesExtrasNaoPassamDe100(t *testing.T) {
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA}
	atividades := []*entity.AtividadeManutencao{
		atividade("atv-1", "Impermeabilização", entity.PeriodicidadeSemestral, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}
	ordens := []*entity.OrdemServico{
		preventivaConcluida("os-1", "Impermeabilização", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		preventivaConcluida("os-2", "Impermeabilização", time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)),
		preventivaConcluida("os-3", "Impermeabilização", time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)),
	}
	uc := setupDashboard(t, emp, atividades, ordens)

	conf, err := uc.Conformidade(context.Background(), tenantA, empID)
	require.NoError(t, err)

	assert.Equal(t, 100, conf.Percentual)
	assert.Equal(t, 100, conf.PorSistema[0].Percentual)
	assert.False(t, conf.EmRisco)
}

func TestConformidade_AtividadeInativaNaoGeraPrevistas(t *testing.T) {
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA}
	inativa := atividade("atv-1", "Cobertura", entity.PeriodicidadeMensal, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	inativa.Ativa = false
	uc := setupDashboard(t, emp, []*entity.AtividadeManutencao{inativa}, nil)

	conf, err := uc.Conformidade(context.Background(), tenantA, empID)
	require.NoError(t, err)
	assert.Empty(t, conf.PorSistema)
	assert.Equal(t, 0, conf.Percentual)
}

func TestConformidade_TenantErrado(t *testing.T) {
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA}
	uc := setupDashboard(t, emp, nil, nil)

	_, err := uc.Conformidade(context.Background(), tenantB, empID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumo_GarantiasEOSPorFaixa(t *testing.T) {
	habiteSe := time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC)
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA, HabiteSe: &habiteSe}

	dia := func(d int) *time.Time {
		t := time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	dez := 10
	aberta := func(id string, prazo *time.Time) *entity.OrdemServico {
		os := &entity.OrdemServico{
			ID:               id,
			ConstrutoraID:    tenantA,
			EmpreendimentoID: empID,
			Titulo:           "Chamado " + id,
			Tipo:             entity.TipoGarantia,
			Status:           entity.StatusEmAndamento,
			SolicitadaEm:     fixedNow().AddDate(0, 0, -20),
		}
		if prazo != nil {
			os.PrazoAtendimento = prazo
			os.PrazoDias = &dez
		}
		return os
	}
	ordens := []*entity.OrdemServico{
		aberta("os-normal", dia(18)),  // 20% decorrido
		aberta("os-atencao", dia(13)), // 70% decorrido
		aberta("os-critico", dia(12)), // 80% decorrido
		aberta("os-vencido", dia(8)),  // prazo no passado
		aberta("os-sem-prazo", nil),
		{
			ID: "os-fechada", ConstrutoraID: tenantA, EmpreendimentoID: empID,
			Titulo: "Encerrada", Tipo: entity.TipoGarantia, Status: entity.StatusCancelada,
			SolicitadaEm: fixedNow().AddDate(0, 0, -30),
		},
	}
	uc := setupDashboard(t, emp, nil, ordens)

	out, err := uc.Resumo(context.Background(), tenantA, empID)
	require.NoError(t, err)

	assert.Equal(t, 5, out.OSAbertas)
	assert.Equal(t, map[string]int{
		"NORMAL":  1,
		"ATENCAO": 1,
		"CRITICO": 1,
		"VENCIDO": 1,
	}, out.OSPorFaixa)

	// habite-se há ~22 meses: os prazos de 1 ano já venceram; os de 2 anos
	// vencem em 71 dias e entram no aviso de 90 dias.
	assert.Equal(t, 3, out.GarantiasExpiradas)
	sistemas := make([]string, 0, len(out.GarantiasAVencer))
	for _, g := range out.GarantiasAVencer {
		sistemas = append(sistemas, g.Sistema)
		assert.Equal(t, "VIGENTE", g.Status)
		assert.LessOrEqual(t, g.Dias, 90)
	}
	assert.ElementsMatch(t, []string{"Esquadrias de Alumínio e PVC", "Pintura"}, sistemas)
}

func TestResumo_SemDataDeReferenciaNaoContaGarantias(t *testing.T) {
	emp := &entity.Empreendimento{ID: empID, ConstrutoraID: tenantA}
	uc := setupDashboard(t, emp, nil, nil)

	out, err := uc.Resumo(context.Background(), tenantA, empID)
	require.NoError(t, err)
	assert.Zero(t, out.GarantiasExpiradas)
	assert.Empty(t, out.GarantiasAVencer)
	assert.Zero(t, out.OSAbertas)
}
