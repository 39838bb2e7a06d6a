package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
)

// ManutencaoUseCase CRUD do plano de manutenção preventiva (NBR 5674).
type ManutencaoUseCase struct {
	repo    repository.AtividadeManutencaoRepository
	empRepo repository.EmpreendimentoRepository
	nowFn   func() time.Time
}

// NewManutencaoUseCase constrói o caso de uso.
func NewManutencaoUseCase(
	repo repository.AtividadeManutencaoRepository,
	empRepo repository.EmpreendimentoRepository,
) *ManutencaoUseCase {
	return &ManutencaoUseCase{repo: repo, empRepo: empRepo, nowFn: time.Now}
}

// WithNow substitui o relógio (testes).
func (uc *ManutencaoUseCase) WithNow(now func() time.Time) *ManutencaoUseCase {
	uc.nowFn = now
	return uc
}

// Create adiciona uma atividade ao plano de manutenção do empreendimento.
func (uc *ManutencaoUseCase) Create(ctx context.Context, construtoraID string, in dto.CreateAtividadeRequest) (*dto.AtividadeResponse, error) {
	periodicidade := entity.Periodicidade(in.Periodicidade)
	if !periodicidade.Valida() {
		return nil, domain.NewValidationError("periodicidade", "periodicidade desconhecida: "+in.Periodicidade)
	}
	if in.Descricao == "" {
		return nil, domain.NewValidationError("descricao", "não pode ser vazia")
	}
	if in.InicioVigencia.IsZero() {
		return nil, domain.NewValidationError("inicio_vigencia", "data zerada")
	}

	emp, err := uc.empRepo.GetByID(ctx, in.EmpreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}

	now := uc.nowFn()
	a := &entity.AtividadeManutencao{
		ID:               uuid.New().String(),
		ConstrutoraID:    construtoraID,
		EmpreendimentoID: emp.ID,
		Sistema:          in.Sistema,
		Descricao:        in.Descricao,
		Periodicidade:    periodicidade,
		Responsavel:      in.Responsavel,
		InicioVigencia:   in.InicioVigencia,
		Ativa:            true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAtividadeResponse(a), nil
}

// Update atualização parcial de uma atividade.
func (uc *ManutencaoUseCase) Update(ctx context.Context, construtoraID, id string, in dto.UpdateAtividadeRequest) (*dto.AtividadeResponse, error) {
	a, err := uc.buscar(ctx, construtoraID, id)
	if err != nil || a == nil {
		return nil, err
	}
	if in.Sistema != nil {
		a.Sistema = *in.Sistema
	}
	if in.Descricao != nil {
		a.Descricao = *in.Descricao
	}
	if in.Periodicidade != nil {
		p := entity.Periodicidade(*in.Periodicidade)
		if !p.Valida() {
			return nil, domain.NewValidationError("periodicidade", "periodicidade desconhecida: "+*in.Periodicidade)
		}
		a.Periodicidade = p
	}
	if in.Responsavel != nil {
		a.Responsavel = *in.Responsavel
	}
	if in.Ativa != nil {
		a.Ativa = *in.Ativa
	}
	a.UpdatedAt = uc.nowFn()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAtividadeResponse(a), nil
}

// List plano de manutenção de um empreendimento.
func (uc *ManutencaoUseCase) List(ctx context.Context, construtoraID, empreendimentoID string) (*dto.AtividadeListResponse, error) {
	emp, err := uc.empRepo.GetByID(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByEmpreendimento(ctx, empreendimentoID)
	if err != nil {
		return nil, err
	}
	out := &dto.AtividadeListResponse{Items: make([]dto.AtividadeResponse, 0, len(list))}
	for _, a := range list {
		out.Items = append(out.Items, *toAtividadeResponse(a))
	}
	return out, nil
}

// Delete remove uma atividade do plano.
func (uc *ManutencaoUseCase) Delete(ctx context.Context, construtoraID, id string) error {
	a, err := uc.buscar(ctx, construtoraID, id)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ManutencaoUseCase) buscar(ctx context.Context, construtoraID, id string) (*entity.AtividadeManutencao, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.ConstrutoraID != construtoraID {
		return nil, nil
	}
	return a, nil
}

func toAtividadeResponse(a *entity.AtividadeManutencao) *dto.AtividadeResponse {
	return &dto.AtividadeResponse{
		ID:               a.ID,
		EmpreendimentoID: a.EmpreendimentoID,
		Sistema:          a.Sistema,
		Descricao:        a.Descricao,
		Periodicidade:    string(a.Periodicidade),
		Responsavel:      a.Responsavel,
		InicioVigencia:   a.InicioVigencia,
		Ativa:            a.Ativa,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
