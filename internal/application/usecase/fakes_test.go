package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/internal/domain/sla"
)

// Repositórios em memória para os testes dos casos de uso. Mesmo contrato dos
// adaptadores reais: (nil, nil) quando o recurso não existe.

type fakeEmpRepo struct {
	items map[string]*entity.Empreendimento
}

func newFakeEmpRepo(emps ...*entity.Empreendimento) *fakeEmpRepo {
	r := &fakeEmpRepo{items: map[string]*entity.Empreendimento{}}
	for _, e := range emps {
		r.items[e.ID] = e
	}
	return r
}

func (r *fakeEmpRepo) Create(_ context.Context, e *entity.Empreendimento) error {
	r.items[e.ID] = e
	return nil
}

func (r *fakeEmpRepo) GetByID(_ context.Context, id string) (*entity.Empreendimento, error) {
	return r.items[id], nil
}

func (r *fakeEmpRepo) Update(_ context.Context, e *entity.Empreendimento) error {
	r.items[e.ID] = e
	return nil
}

func (r *fakeEmpRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeEmpRepo) ListByConstrutora(_ context.Context, construtoraID string, _, _ int) ([]*entity.Empreendimento, error) {
	var out []*entity.Empreendimento
	for _, e := range r.items {
		if e.ConstrutoraID == construtoraID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmpRepo) ListAll(_ context.Context) ([]*entity.Empreendimento, error) {
	var out []*entity.Empreendimento
	for _, e := range r.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeOSRepo struct {
	items map[string]*entity.OrdemServico
}

func newFakeOSRepo(ordens ...*entity.OrdemServico) *fakeOSRepo {
	r := &fakeOSRepo{items: map[string]*entity.OrdemServico{}}
	for _, os := range ordens {
		r.items[os.ID] = os
	}
	return r
}

func (r *fakeOSRepo) Create(_ context.Context, os *entity.OrdemServico) error {
	cp := *os
	r.items[os.ID] = &cp
	return nil
}

func (r *fakeOSRepo) GetByID(_ context.Context, id string) (*entity.OrdemServico, error) {
	os, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *os
	return &cp, nil
}

func (r *fakeOSRepo) Update(_ context.Context, os *entity.OrdemServico) error {
	cp := *os
	r.items[os.ID] = &cp
	return nil
}

func (r *fakeOSRepo) ListByEmpreendimento(_ context.Context, empreendimentoID string, filtro repository.OSFilter) ([]*entity.OrdemServico, error) {
	var out []*entity.OrdemServico
	for _, os := range r.items {
		if os.EmpreendimentoID != empreendimentoID {
			continue
		}
		if filtro.Status != "" && os.Status != filtro.Status {
			continue
		}
		if filtro.Tipo != "" && os.Tipo != filtro.Tipo {
			continue
		}
		cp := *os
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOSRepo) ListAbertasComPrazo(_ context.Context) ([]*entity.OrdemServico, error) {
	var out []*entity.OrdemServico
	for _, os := range r.items {
		if os.Status.Encerrada() || os.PrazoAtendimento == nil {
			continue
		}
		cp := *os
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOSRepo) UltimaPreventivaConcluida(_ context.Context, empreendimentoID string) (*time.Time, error) {
	var ultima *time.Time
	for _, os := range r.items {
		if os.EmpreendimentoID != empreendimentoID || os.Tipo != entity.TipoPreventiva {
			continue
		}
		if os.Status != entity.StatusConcluida || os.ConcluidaEm == nil {
			continue
		}
		if ultima == nil || os.ConcluidaEm.After(*ultima) {
			t := *os.ConcluidaEm
			ultima = &t
		}
	}
	return ultima, nil
}

type fakeAtvRepo struct {
	items map[string]*entity.AtividadeManutencao
}

func newFakeAtvRepo(atividades ...*entity.AtividadeManutencao) *fakeAtvRepo {
	r := &fakeAtvRepo{items: map[string]*entity.AtividadeManutencao{}}
	for _, a := range atividades {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAtvRepo) Create(_ context.Context, a *entity.AtividadeManutencao) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAtvRepo) GetByID(_ context.Context, id string) (*entity.AtividadeManutencao, error) {
	return r.items[id], nil
}

func (r *fakeAtvRepo) Update(_ context.Context, a *entity.AtividadeManutencao) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAtvRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeAtvRepo) ListByEmpreendimento(_ context.Context, empreendimentoID string) ([]*entity.AtividadeManutencao, error) {
	var out []*entity.AtividadeManutencao
	for _, a := range r.items {
		if a.EmpreendimentoID == empreendimentoID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeOrcRepo struct {
	items map[string]*entity.Orcamento
}

func newFakeOrcRepo(orcamentos ...*entity.Orcamento) *fakeOrcRepo {
	r := &fakeOrcRepo{items: map[string]*entity.Orcamento{}}
	for _, o := range orcamentos {
		r.items[o.ID] = o
	}
	return r
}

func (r *fakeOrcRepo) Create(_ context.Context, o *entity.Orcamento) error {
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrcRepo) GetByID(_ context.Context, id string) (*entity.Orcamento, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrcRepo) Update(_ context.Context, o *entity.Orcamento) error {
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrcRepo) ListByOS(_ context.Context, osID string) ([]*entity.Orcamento, error) {
	var out []*entity.Orcamento
	for _, o := range r.items {
		if o.OSID == osID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakePrestRepo struct {
	items map[string]*entity.Prestador
}

func newFakePrestRepo(prestadores ...*entity.Prestador) *fakePrestRepo {
	r := &fakePrestRepo{items: map[string]*entity.Prestador{}}
	for _, p := range prestadores {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePrestRepo) Create(_ context.Context, p *entity.Prestador) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakePrestRepo) GetByID(_ context.Context, id string) (*entity.Prestador, error) {
	return r.items[id], nil
}

func (r *fakePrestRepo) List(_ context.Context, _, _ int) ([]*entity.Prestador, error) {
	var out []*entity.Prestador
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeSLARepo struct {
	regras map[string][]sla.Rule
}

func newFakeSLARepo() *fakeSLARepo {
	return &fakeSLARepo{regras: map[string][]sla.Rule{}}
}

func (r *fakeSLARepo) ListByConstrutora(_ context.Context, construtoraID string) ([]sla.Rule, error) {
	return r.regras[construtoraID], nil
}

func (r *fakeSLARepo) Replace(_ context.Context, construtoraID string, regras []sla.Rule) error {
	r.regras[construtoraID] = regras
	return nil
}

// fakeTxRunner executa o callback diretamente sobre os repositórios em
// memória; sem transação real, mas o contrato do caso de uso é o mesmo.
type fakeTxRunner struct {
	osRepo  repository.OrdemServicoRepository
	orcRepo repository.OrcamentoRepository
}

func (r *fakeTxRunner) RunAceite(ctx context.Context, fn func(
	osRepo repository.OrdemServicoRepository,
	orcRepo repository.OrcamentoRepository,
) error) error {
	return fn(r.osRepo, r.orcRepo)
}
