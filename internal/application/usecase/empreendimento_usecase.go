package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/internal/domain/warranty"
)

// EmpreendimentoUseCase casos de uso CRUD para empreendimentos e derivação das
// janelas de garantia (catálogo × data de referência do empreendimento).
type EmpreendimentoUseCase struct {
	repo  repository.EmpreendimentoRepository
	nowFn func() time.Time
}

// NewEmpreendimentoUseCase constrói o caso de uso.
func NewEmpreendimentoUseCase(repo repository.EmpreendimentoRepository) *EmpreendimentoUseCase {
	return &EmpreendimentoUseCase{repo: repo, nowFn: time.Now}
}

// WithNow substitui o relógio (testes).
func (uc *EmpreendimentoUseCase) WithNow(now func() time.Time) *EmpreendimentoUseCase {
	uc.nowFn = now
	return uc
}

// Create cadastra um empreendimento para a construtora.
func (uc *EmpreendimentoUseCase) Create(ctx context.Context, construtoraID string, in dto.CreateEmpreendimentoRequest) (*dto.EmpreendimentoResponse, error) {
	now := uc.nowFn()
	e := &entity.Empreendimento{
		ID:            uuid.New().String(),
		ConstrutoraID: construtoraID,
		Nome:          in.Nome,
		Endereco:      in.Endereco,
		Cidade:        in.Cidade,
		UF:            in.UF,
		HabiteSe:      in.HabiteSe,
		DataEntrega:   in.DataEntrega,
		SindicoNome:   in.SindicoNome,
		SindicoEmail:  in.SindicoEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmpreendimentoResponse(e), nil
}

// GetByID busca um empreendimento por ID, restrito ao tenant.
func (uc *EmpreendimentoUseCase) GetByID(ctx context.Context, construtoraID, id string) (*dto.EmpreendimentoResponse, error) {
	e, err := uc.buscar(ctx, construtoraID, id)
	if err != nil || e == nil {
		return nil, err
	}
	return toEmpreendimentoResponse(e), nil
}

// Update atualização parcial.
func (uc *EmpreendimentoUseCase) Update(ctx context.Context, construtoraID, id string, in dto.UpdateEmpreendimentoRequest) (*dto.EmpreendimentoResponse, error) {
	e, err := uc.buscar(ctx, construtoraID, id)
	if err != nil || e == nil {
		return nil, err
	}
	if in.Nome != nil {
		e.Nome = *in.Nome
	}
	if in.Endereco != nil {
		e.Endereco = *in.Endereco
	}
	if in.Cidade != nil {
		e.Cidade = *in.Cidade
	}
	if in.UF != nil {
		e.UF = *in.UF
	}
	if in.HabiteSe != nil {
		e.HabiteSe = in.HabiteSe
	}
	if in.DataEntrega != nil {
		e.DataEntrega = in.DataEntrega
	}
	if in.SindicoNome != nil {
		e.SindicoNome = *in.SindicoNome
	}
	if in.SindicoEmail != nil {
		e.SindicoEmail = *in.SindicoEmail
	}
	e.UpdatedAt = uc.nowFn()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmpreendimentoResponse(e), nil
}

// List lista empreendimentos da construtora com paginação.
func (uc *EmpreendimentoUseCase) List(ctx context.Context, construtoraID string, page dto.PageRequest) (*dto.EmpreendimentoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByConstrutora(ctx, construtoraID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpreendimentoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpreendimentoResponse(e))
	}
	return &dto.EmpreendimentoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete remove um empreendimento.
func (uc *EmpreendimentoUseCase) Delete(ctx context.Context, construtoraID, id string) error {
	e, err := uc.buscar(ctx, construtoraID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return nil
	}
	return uc.repo.Delete(ctx, id)
}

// Garantias deriva as janelas de garantia do empreendimento: todo o catálogo
// NBR 17170 instanciado contra a data de referência (habite-se/entrega).
// Sem data de referência todas as janelas ficam PENDENTE.
func (uc *EmpreendimentoUseCase) Garantias(ctx context.Context, construtoraID, id string) (*dto.GarantiasResponse, error) {
	e, err := uc.buscar(ctx, construtoraID, id)
	if err != nil || e == nil {
		return nil, err
	}

	referencia := e.DataReferencia()
	hoje := uc.nowFn()
	out := &dto.GarantiasResponse{EmpreendimentoID: e.ID, Referencia: referencia}
	for _, termo := range warranty.Catalog() {
		w, err := warranty.ComputeWindow(termo, referencia, hoje)
		if err != nil {
			return nil, fmt.Errorf("janela de garantia %q: %w", termo.Sistema, err)
		}
		out.Janelas = append(out.Janelas, toGarantiaWindow(w))
	}
	return out, nil
}

// buscar devolve o empreendimento apenas se pertencer à construtora;
// empreendimento de outro tenant é tratado como inexistente.
func (uc *EmpreendimentoUseCase) buscar(ctx context.Context, construtoraID, id string) (*entity.Empreendimento, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.ConstrutoraID != construtoraID {
		return nil, nil
	}
	return e, nil
}

func toEmpreendimentoResponse(e *entity.Empreendimento) *dto.EmpreendimentoResponse {
	return &dto.EmpreendimentoResponse{
		ID:           e.ID,
		Nome:         e.Nome,
		Endereco:     e.Endereco,
		Cidade:       e.Cidade,
		UF:           e.UF,
		HabiteSe:     e.HabiteSe,
		DataEntrega:  e.DataEntrega,
		SindicoNome:  e.SindicoNome,
		SindicoEmail: e.SindicoEmail,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toGarantiaWindow(w warranty.Window) dto.GarantiaWindowResponse {
	return dto.GarantiaWindowResponse{
		Sistema:    w.Term.Sistema,
		Descricao:  w.Term.Descricao,
		PrazoAnos:  w.Term.PrazoAnos,
		Tipo:       string(w.Term.Kind),
		Inicio:     w.Inicio,
		Vencimento: w.Vencimento,
		Status:     string(w.Status),
		Dias:       w.Dias,
	}
}
