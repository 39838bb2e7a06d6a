package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/internal/domain/sla"
)

// OSUseCase casos de uso de ordens de serviço: abertura (com cálculo de prazo
// de atendimento), listagem com faixa de urgência derivada e transições de
// status.
type OSUseCase struct {
	osRepo   repository.OrdemServicoRepository
	empRepo  repository.EmpreendimentoRepository
	slaRepo  repository.SLARuleRepository
	nowFn    func() time.Time
}

// NewOSUseCase constrói o caso de uso.
func NewOSUseCase(
	osRepo repository.OrdemServicoRepository,
	empRepo repository.EmpreendimentoRepository,
	slaRepo repository.SLARuleRepository,
) *OSUseCase {
	return &OSUseCase{osRepo: osRepo, empRepo: empRepo, slaRepo: slaRepo, nowFn: time.Now}
}

// WithNow substitui o relógio (testes).
func (uc *OSUseCase) WithNow(now func() time.Time) *OSUseCase {
	uc.nowFn = now
	return uc
}

// Create abre uma OS. O prazo de atendimento é calculado na criação pelas
// regras de SLA da construtora: regra específica do sistema vence sobre a
// padrão do tipo; novo serviço (ou tipo sem regra) fica sem prazo.
func (uc *OSUseCase) Create(ctx context.Context, construtoraID string, in dto.CreateOSRequest) (*dto.OSResponse, error) {
	tipo := entity.TipoServico(in.Tipo)
	if !tipo.Valida() {
		return nil, domain.NewValidationError("tipo", "tipo de serviço desconhecido: "+in.Tipo)
	}
	if in.Titulo == "" {
		return nil, domain.NewValidationError("titulo", "não pode ser vazio")
	}

	emp, err := uc.empRepo.GetByID(ctx, in.EmpreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}

	regras, err := uc.slaRepo.ListByConstrutora(ctx, construtoraID)
	if err != nil {
		return nil, fmt.Errorf("regras de SLA: %w", err)
	}
	rs, err := sla.NewRuleSet(regras)
	if err != nil {
		return nil, fmt.Errorf("regras de SLA da construtora %s: %w", construtoraID, err)
	}

	now := uc.nowFn()
	prazo, err := rs.ComputeDeadline(tipo, in.Sistema, now)
	if err != nil {
		return nil, err
	}

	os := &entity.OrdemServico{
		ID:               uuid.New().String(),
		ConstrutoraID:    construtoraID,
		EmpreendimentoID: emp.ID,
		Titulo:           in.Titulo,
		Descricao:        in.Descricao,
		Tipo:             tipo,
		Sistema:          in.Sistema,
		Status:           entity.StatusAFazer,
		SolicitadaEm:     now,
		PrazoAtendimento: prazo.Data,
		PrazoDias:        prazo.Dias,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.osRepo.Create(ctx, os); err != nil {
		return nil, err
	}
	return uc.toOSResponse(os), nil
}

// GetByID busca uma OS, restrita ao tenant.
func (uc *OSUseCase) GetByID(ctx context.Context, construtoraID, id string) (*dto.OSResponse, error) {
	os, err := uc.buscar(ctx, construtoraID, id)
	if err != nil || os == nil {
		return nil, err
	}
	return uc.toOSResponse(os), nil
}

// List lista as OS de um empreendimento com filtros de status/tipo.
func (uc *OSUseCase) List(ctx context.Context, construtoraID, empreendimentoID string, filtro repository.OSFilter) (*dto.OSListResponse, error) {
	emp, err := uc.empRepo.GetByID(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}
	if filtro.Limit <= 0 || filtro.Limit > 100 {
		filtro.Limit = 20
	}
	if filtro.Offset < 0 {
		filtro.Offset = 0
	}
	list, err := uc.osRepo.ListByEmpreendimento(ctx, empreendimentoID, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OSResponse, 0, len(list))
	for _, os := range list {
		items = append(items, *uc.toOSResponse(os))
	}
	return &dto.OSListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// UpdateStatus aplica uma transição de status. OS encerrada (concluída ou
// cancelada) é imutável, exceto pelo relatório de conclusão.
func (uc *OSUseCase) UpdateStatus(ctx context.Context, construtoraID, id string, in dto.UpdateOSStatusRequest) (*dto.OSResponse, error) {
	os, err := uc.buscar(ctx, construtoraID, id)
	if err != nil || os == nil {
		return nil, err
	}

	novo := entity.StatusOS(in.Status)
	now := uc.nowFn()

	if os.Status.Encerrada() {
		// única mutação permitida após encerrar: documentação de conclusão
		if in.RelatorioConclusao == "" || (novo != "" && novo != os.Status) {
			return nil, domain.ErrOSImutavel
		}
		os.RelatorioConclusao = in.RelatorioConclusao
		os.UpdatedAt = now
		if err := uc.osRepo.Update(ctx, os); err != nil {
			return nil, err
		}
		return uc.toOSResponse(os), nil
	}

	if !novo.Valida() {
		return nil, domain.NewValidationError("status", "status desconhecido: "+in.Status)
	}
	os.Status = novo
	if novo == entity.StatusConcluida {
		os.ConcluidaEm = &now
	}
	if in.RelatorioConclusao != "" {
		os.RelatorioConclusao = in.RelatorioConclusao
	}
	os.UpdatedAt = now
	if err := uc.osRepo.Update(ctx, os); err != nil {
		return nil, err
	}
	return uc.toOSResponse(os), nil
}

func (uc *OSUseCase) buscar(ctx context.Context, construtoraID, id string) (*entity.OrdemServico, error) {
	os, err := uc.osRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if os == nil || os.ConstrutoraID != construtoraID {
		return nil, nil
	}
	return os, nil
}

// toOSResponse monta a resposta com percentual e faixa de SLA derivados.
func (uc *OSUseCase) toOSResponse(os *entity.OrdemServico) *dto.OSResponse {
	out := &dto.OSResponse{
		ID:                 os.ID,
		EmpreendimentoID:   os.EmpreendimentoID,
		Titulo:             os.Titulo,
		Descricao:          os.Descricao,
		Tipo:               string(os.Tipo),
		Sistema:            os.Sistema,
		Status:             string(os.Status),
		SolicitadaEm:       os.SolicitadaEm,
		PrazoAtendimento:   os.PrazoAtendimento,
		PrazoDias:          os.PrazoDias,
		PrestadorID:        os.PrestadorID,
		ConcluidaEm:        os.ConcluidaEm,
		RelatorioConclusao: os.RelatorioConclusao,
		CreatedAt:          os.CreatedAt,
		UpdatedAt:          os.UpdatedAt,
	}
	if os.PrazoAtendimento != nil && os.PrazoDias != nil && !os.Status.Encerrada() {
		now := uc.nowFn()
		pct := sla.ElapsedPercentage(*os.PrazoAtendimento, *os.PrazoDias, now)
		out.SLAPercentual = &pct
		out.SLAFaixa = string(sla.ClassifyElapsed(*os.PrazoAtendimento, *os.PrazoDias, now))
	}
	return out
}
