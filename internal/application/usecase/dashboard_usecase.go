package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/compliance"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/internal/domain/sla"
	"github.com/predialtech/garantia-api/internal/domain/warranty"
)

// janelaConformidadeMeses período padrão do snapshot de conformidade
// (12 meses retroativos).
const janelaConformidadeMeses = 12

// diasAvisoVencimento garantias com vencimento até aqui entram no widget
// "a vencer".
const diasAvisoVencimento = 90

// DashboardUseCase consolida a visão de um empreendimento: conformidade de
// manutenção, janelas de garantia e urgência de SLA das OS abertas.
//
// Os repositórios fornecem as linhas cruas; todo o cálculo derivado é do motor
// (warranty/sla/compliance) — aqui só orquestração e formatação.
type DashboardUseCase struct {
	empRepo repository.EmpreendimentoRepository
	osRepo  repository.OrdemServicoRepository
	atvRepo repository.AtividadeManutencaoRepository
	nowFn   func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	empRepo repository.EmpreendimentoRepository,
	osRepo repository.OrdemServicoRepository,
	atvRepo repository.AtividadeManutencaoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{empRepo: empRepo, osRepo: osRepo, atvRepo: atvRepo, nowFn: time.Now}
}

// WithNow substitui o relógio (testes).
func (uc *DashboardUseCase) WithNow(now func() time.Time) *DashboardUseCase {
	uc.nowFn = now
	return uc
}

// Resumo monta o DashboardResumoDTO do empreendimento.
//
// Duas consultas em paralelo (OS e plano de manutenção) após validar o tenant.
func (uc *DashboardUseCase) Resumo(ctx context.Context, construtoraID, empreendimentoID string) (*dto.DashboardResumoDTO, error) {
	emp, err := uc.empRepo.GetByID(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}

	type osResult struct {
		ordens []*entity.OrdemServico
		err    error
	}
	type atvResult struct {
		atividades []*entity.AtividadeManutencao
		err        error
	}
	osCh := make(chan osResult, 1)
	atvCh := make(chan atvResult, 1)

	go func() {
		ordens, err := uc.osRepo.ListByEmpreendimento(ctx, empreendimentoID, repository.OSFilter{Limit: 1000})
		osCh <- osResult{ordens, err}
	}()
	go func() {
		atividades, err := uc.atvRepo.ListByEmpreendimento(ctx, empreendimentoID)
		atvCh <- atvResult{atividades, err}
	}()

	osRes := <-osCh
	atvRes := <-atvCh
	if osRes.err != nil {
		return nil, fmt.Errorf("dashboard: ordens de serviço: %w", osRes.err)
	}
	if atvRes.err != nil {
		return nil, fmt.Errorf("dashboard: plano de manutenção: %w", atvRes.err)
	}

	hoje := uc.nowFn()
	out := &dto.DashboardResumoDTO{EmpreendimentoID: empreendimentoID}

	conf, err := uc.conformidade(emp, atvRes.atividades, osRes.ordens, hoje)
	if err != nil {
		return nil, err
	}
	out.Conformidade = *conf

	// janelas de garantia: a vencer em até 90 dias e já expiradas
	referencia := emp.DataReferencia()
	for _, termo := range warranty.Catalog() {
		w, err := warranty.ComputeWindow(termo, referencia, hoje)
		if err != nil {
			return nil, fmt.Errorf("dashboard: janela %q: %w", termo.Sistema, err)
		}
		switch w.Status {
		case warranty.StatusExpirada:
			out.GarantiasExpiradas++
		case warranty.StatusVigente:
			if w.Dias <= diasAvisoVencimento {
				out.GarantiasAVencer = append(out.GarantiasAVencer, toGarantiaWindow(w))
			}
		}
	}

	// OS abertas por faixa de urgência do SLA
	out.OSPorFaixa = map[string]int{}
	for _, os := range osRes.ordens {
		if os.Status.Encerrada() {
			continue
		}
		out.OSAbertas++
		if os.PrazoAtendimento == nil || os.PrazoDias == nil {
			continue
		}
		faixa := sla.ClassifyElapsed(*os.PrazoAtendimento, *os.PrazoDias, hoje)
		out.OSPorFaixa[string(faixa)]++
	}
	return out, nil
}

// Conformidade devolve apenas o snapshot de conformidade do empreendimento.
func (uc *DashboardUseCase) Conformidade(ctx context.Context, construtoraID, empreendimentoID string) (*dto.ConformidadeDTO, error) {
	emp, err := uc.empRepo.GetByID(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}
	atividades, err := uc.atvRepo.ListByEmpreendimento(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	ordens, err := uc.osRepo.ListByEmpreendimento(ctx, empreendimentoID, repository.OSFilter{Limit: 1000})
	if err != nil {
		return nil, err
	}
	return uc.conformidade(emp, atividades, ordens, uc.nowFn())
}

// conformidade expande o plano em execuções previstas para os últimos 12 meses
// e delega ao agregador.
func (uc *DashboardUseCase) conformidade(
	emp *entity.Empreendimento,
	atividades []*entity.AtividadeManutencao,
	ordens []*entity.OrdemServico,
	hoje time.Time,
) (*dto.ConformidadeDTO, error) {
	inicio := hoje.AddDate(0, -janelaConformidadeMeses, 0)

	var previstas []entity.AtividadeManutencao
	for _, a := range atividades {
		for i := a.OcorrenciasPrevistas(inicio, hoje); i > 0; i-- {
			previstas = append(previstas, *a)
		}
	}
	concluidasNoPeriodo := make([]entity.OrdemServico, 0, len(ordens))
	for _, os := range ordens {
		// preventivas concluídas fora do período não contam; OS abertas entram
		// para a checagem de atraso
		if os.Status == entity.StatusConcluida && os.ConcluidaEm != nil && os.ConcluidaEm.Before(inicio) {
			continue
		}
		concluidasNoPeriodo = append(concluidasNoPeriodo, *os)
	}

	snap := compliance.Aggregate(previstas, concluidasNoPeriodo, hoje)

	out := &dto.ConformidadeDTO{
		EmpreendimentoID: emp.ID,
		PeriodoInicio:    inicio,
		PeriodoFim:       hoje,
		Percentual:       snap.Percentual,
		EmRisco:          snap.EmRisco,
		NaoConformidades: snap.NaoConformidades,
	}
	for _, s := range snap.PorSistema {
		out.PorSistema = append(out.PorSistema, dto.SistemaConformidadeDTO{
			Sistema:    s.Sistema,
			Previstas:  s.Previstas,
			Concluidas: s.Concluidas,
			Percentual: s.Percentual,
		})
	}
	return out, nil
}
