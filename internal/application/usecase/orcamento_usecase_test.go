package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/usecase"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
)

func setupOrcamentoUseCase(t *testing.T) (*usecase.OrcamentoUseCase, *fakeOSRepo, *fakeOrcRepo) {
	t.Helper()
	osRepo := newFakeOSRepo(&entity.OrdemServico{
		ID:               "os-1",
		ConstrutoraID:    tenantA,
		EmpreendimentoID: empID,
		Titulo:           "Infiltração na cobertura",
		Tipo:             entity.TipoGarantia,
		Status:           entity.StatusAFazer,
		SolicitadaEm:     fixedNow().AddDate(0, 0, -2),
	})
	orcRepo := newFakeOrcRepo()
	prestRepo := newFakePrestRepo(
		&entity.Prestador{ID: "prest-1", Nome: "Impermax", Email: "a@impermax.com.br"},
		&entity.Prestador{ID: "prest-2", Nome: "VedaTudo", Email: "b@vedatudo.com.br"},
	)
	tx := &fakeTxRunner{osRepo: osRepo, orcRepo: orcRepo}
	uc := usecase.NewOrcamentoUseCase(tx, osRepo, orcRepo, prestRepo).WithNow(fixedNow)
	return uc, osRepo, orcRepo
}

func TestOrcamentoSubmit_PrimeiraPropostaMudaStatusDaOS(t *testing.T) {
	uc, osRepo, _ := setupOrcamentoUseCase(t)

	out, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1",
		Valor:       decimal.NewFromFloat(3500.50),
		PrazoDias:   14,
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDENTE", out.Status)
	assert.True(t, out.Valor.Equal(decimal.NewFromFloat(3500.50)))

	os, err := osRepo.GetByID(context.Background(), "os-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAguardandoOrcamento, os.Status)
}

func TestOrcamentoSubmit_ValorNaoPositivo(t *testing.T) {
	uc, _, _ := setupOrcamentoUseCase(t)

	_, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1",
		Valor:       decimal.Zero,
		PrazoDias:   14,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestOrcamentoSubmit_PrestadorInexistente(t *testing.T) {
	uc, _, _ := setupOrcamentoUseCase(t)

	_, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-fantasma",
		Valor:       decimal.NewFromInt(100),
		PrazoDias:   5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrcamentoAccept_AceitaUmRecusaConcorrentes(t *testing.T) {
	uc, osRepo, orcRepo := setupOrcamentoUseCase(t)

	a, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1", Valor: decimal.NewFromInt(3000), PrazoDias: 10,
	})
	require.NoError(t, err)
	b, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-2", Valor: decimal.NewFromInt(2500), PrazoDias: 20,
	})
	require.NoError(t, err)

	out, err := uc.Accept(context.Background(), tenantA, "os-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACEITO", out.Status)
	require.NotNil(t, out.RespondidoEm)

	// O concorrente pendente é recusado na mesma operação.
	rival, err := orcRepo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrcamentoRecusado, rival.Status)

	// A OS segue para execução com o prestador atribuído.
	os, err := osRepo.GetByID(context.Background(), "os-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEmAndamento, os.Status)
	assert.Equal(t, "prest-1", os.PrestadorID)
}

func TestOrcamentoAccept_SegundoAceiteRejeitado(t *testing.T) {
	uc, _, _ := setupOrcamentoUseCase(t)

	a, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1", Valor: decimal.NewFromInt(3000), PrazoDias: 10,
	})
	require.NoError(t, err)
	b, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-2", Valor: decimal.NewFromInt(2500), PrazoDias: 20,
	})
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), tenantA, "os-1", a.ID)
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), tenantA, "os-1", b.ID)
	assert.ErrorIs(t, err, domain.ErrOrcamentoAceito)
}

func TestOrcamentoSubmit_OSJaComPrestadorRejeita(t *testing.T) {
	uc, osRepo, _ := setupOrcamentoUseCase(t)

	a, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1", Valor: decimal.NewFromInt(3000), PrazoDias: 10,
	})
	require.NoError(t, err)
	_, err = uc.Accept(context.Background(), tenantA, "os-1", a.ID)
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-2", Valor: decimal.NewFromInt(900), PrazoDias: 3,
	})
	assert.ErrorIs(t, err, domain.ErrOrcamentoAceito)

	os, err := osRepo.GetByID(context.Background(), "os-1")
	require.NoError(t, err)
	assert.Equal(t, "prest-1", os.PrestadorID)
}

func TestOrcamentoAccept_OSEncerradaRejeita(t *testing.T) {
	uc, osRepo, _ := setupOrcamentoUseCase(t)

	a, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1", Valor: decimal.NewFromInt(3000), PrazoDias: 10,
	})
	require.NoError(t, err)

	os, err := osRepo.GetByID(context.Background(), "os-1")
	require.NoError(t, err)
	now := fixedNow()
	os.Status = entity.StatusCancelada
	os.UpdatedAt = now
	require.NoError(t, osRepo.Update(context.Background(), os))

	_, err = uc.Accept(context.Background(), tenantA, "os-1", a.ID)
	assert.ErrorIs(t, err, domain.ErrOSImutavel)
}

func TestOrcamentoAccept_TenantErrado(t *testing.T) {
	uc, _, _ := setupOrcamentoUseCase(t)

	a, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1", Valor: decimal.NewFromInt(3000), PrazoDias: 10,
	})
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), tenantB, "os-1", a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Orçamentos respondidos carregam a data da decisão.
func TestOrcamentoAccept_RegistraRespondidoEm(t *testing.T) {
	uc, _, orcRepo := setupOrcamentoUseCase(t)

	a, err := uc.Submit(context.Background(), tenantA, "os-1", dto.CreateOrcamentoRequest{
		PrestadorID: "prest-1", Valor: decimal.NewFromInt(1200), PrazoDias: 7,
	})
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), tenantA, "os-1", a.ID)
	require.NoError(t, err)

	aceito, err := orcRepo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, aceito.RespondidoEm)
	assert.True(t, aceito.RespondidoEm.Equal(fixedNow()), "respondido_em deve ser o instante do aceite")
}
