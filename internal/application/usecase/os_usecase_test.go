package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/sla"
)

const (
	tenantA = "construtora-a"
	tenantB = "construtora-b"
	empID   = "emp-1"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
}

func setupOSUseCase(t *testing.T, regras []sla.Rule) (*usecase.OSUseCase, *fakeOSRepo) {
	t.Helper()
	habiteSe := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	empRepo := newFakeEmpRepo(&entity.Empreendimento{
		ID: empID, ConstrutoraID: tenantA, Nome: "Residencial Teste", HabiteSe: &habiteSe,
	})
	osRepo := newFakeOSRepo()
	slaRepo := newFakeSLARepo()
	require.NoError(t, slaRepo.Replace(context.Background(), tenantA, regras))
	uc := usecase.NewOSUseCase(osRepo, empRepo, slaRepo).WithNow(fixedNow)
	return uc, osRepo
}

func TestOSCreate_CalculaPrazoNaCriacao(t *testing.T) {
	uc, _ := setupOSUseCase(t, []sla.Rule{
		{Tipo: entity.TipoGarantia, Sistema: "", Dias: 15},
		{Tipo: entity.TipoGarantia, Sistema: "Impermeabilização", Dias: 10},
	})

	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID,
		Titulo:           "Infiltração na garagem",
		Tipo:             "garantia",
		Sistema:          "Impermeabilização",
	})
	require.NoError(t, err)

	// Regra específica do sistema (10 dias) vence sobre a padrão do tipo.
	require.NotNil(t, out.PrazoDias)
	assert.Equal(t, 10, *out.PrazoDias)
	require.NotNil(t, out.PrazoAtendimento)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), *out.PrazoAtendimento)
	assert.Equal(t, "A_FAZER", out.Status)

	// Faixa de urgência derivada na resposta (prazo recém-criado → NORMAL).
	require.NotNil(t, out.SLAPercentual)
	assert.Equal(t, "NORMAL", out.SLAFaixa)
}

func TestOSCreate_NovoServicoSemPrazo(t *testing.T) {
	uc, _ := setupOSUseCase(t, []sla.Rule{{Tipo: entity.TipoGarantia, Dias: 15}})

	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID,
		Titulo:           "Pintura de área comum",
		Tipo:             "novo_servico",
	})
	require.NoError(t, err)
	assert.Nil(t, out.PrazoAtendimento)
	assert.Nil(t, out.PrazoDias)
	assert.Empty(t, out.SLAFaixa)
}

func TestOSCreate_SemRegraParaOTipo_SemPrazo(t *testing.T) {
	// Construtora sem nenhuma regra configurada: a OS abre sem prazo.
	uc, _ := setupOSUseCase(t, nil)

	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID,
		Titulo:           "Trinca na fachada",
		Tipo:             "garantia",
		Sistema:          "Estrutura",
	})
	require.NoError(t, err)
	assert.Nil(t, out.PrazoAtendimento)
	assert.Nil(t, out.PrazoDias)
}

func TestOSCreate_TipoInvalido(t *testing.T) {
	uc, _ := setupOSUseCase(t, nil)

	_, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID,
		Titulo:           "Qualquer",
		Tipo:             "reforma",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestOSCreate_EmpreendimentoDeOutroTenant(t *testing.T) {
	uc, _ := setupOSUseCase(t, nil)

	_, err := uc.Create(context.Background(), tenantB, dto.CreateOSRequest{
		EmpreendimentoID: empID,
		Titulo:           "Vazamento",
		Tipo:             "garantia",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOSUpdateStatus_ConcluirRegistraData(t *testing.T) {
	uc, osRepo := setupOSUseCase(t, nil)
	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID, Titulo: "Porta empenada", Tipo: "garantia", Sistema: "Esquadrias",
	})
	require.NoError(t, err)

	done, err := uc.UpdateStatus(context.Background(), tenantA, out.ID, dto.UpdateOSStatusRequest{
		Status:             "CONCLUIDA",
		RelatorioConclusao: "Porta ajustada e lubrificada",
	})
	require.NoError(t, err)
	assert.Equal(t, "CONCLUIDA", done.Status)
	require.NotNil(t, done.ConcluidaEm)
	assert.Equal(t, fixedNow(), *done.ConcluidaEm)

	persisted, err := osRepo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConcluida, persisted.Status)
}

func TestOSUpdateStatus_EncerradaEImutavel(t *testing.T) {
	uc, _ := setupOSUseCase(t, nil)
	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID, Titulo: "Rejunte solto", Tipo: "garantia",
	})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), tenantA, out.ID, dto.UpdateOSStatusRequest{Status: "CANCELADA"})
	require.NoError(t, err)

	// Reabrir uma OS cancelada é rejeitado.
	_, err = uc.UpdateStatus(context.Background(), tenantA, out.ID, dto.UpdateOSStatusRequest{Status: "A_FAZER"})
	assert.ErrorIs(t, err, domain.ErrOSImutavel)
}

func TestOSUpdateStatus_RelatorioEditavelAposEncerrar(t *testing.T) {
	uc, _ := setupOSUseCase(t, nil)
	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID, Titulo: "Fissura", Tipo: "garantia",
	})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), tenantA, out.ID, dto.UpdateOSStatusRequest{Status: "CONCLUIDA"})
	require.NoError(t, err)

	// Única mutação permitida depois de encerrada: o relatório de conclusão.
	updated, err := uc.UpdateStatus(context.Background(), tenantA, out.ID, dto.UpdateOSStatusRequest{
		RelatorioConclusao: "Fissura selada com mastique; fotos anexadas ao dossiê",
	})
	require.NoError(t, err)
	assert.Equal(t, "CONCLUIDA", updated.Status)
	assert.Contains(t, updated.RelatorioConclusao, "mastique")
}

func TestOSGetByID_OutroTenantNaoEnxerga(t *testing.T) {
	uc, _ := setupOSUseCase(t, nil)
	out, err := uc.Create(context.Background(), tenantA, dto.CreateOSRequest{
		EmpreendimentoID: empID, Titulo: "Teste", Tipo: "garantia",
	})
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), tenantB, out.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
