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

// PrestadorUseCase cadastro e consulta de prestadores do marketplace.
type PrestadorUseCase struct {
	repo  repository.PrestadorRepository
	nowFn func() time.Time
}

// NewPrestadorUseCase constrói o caso de uso.
func NewPrestadorUseCase(repo repository.PrestadorRepository) *PrestadorUseCase {
	return &PrestadorUseCase{repo: repo, nowFn: time.Now}
}

// WithNow substitui o relógio (testes).
func (uc *PrestadorUseCase) WithNow(now func() time.Time) *PrestadorUseCase {
	uc.nowFn = now
	return uc
}

// Create cadastra um prestador.
func (uc *PrestadorUseCase) Create(ctx context.Context, in dto.CreatePrestadorRequest) (*dto.PrestadorResponse, error) {
	if in.Nome == "" {
		return nil, domain.NewValidationError("nome", "não pode ser vazio")
	}
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "não pode ser vazio")
	}
	now := uc.nowFn()
	p := &entity.Prestador{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		CNPJ:          in.CNPJ,
		Email:         in.Email,
		Telefone:      in.Telefone,
		Especialidade: in.Especialidade,
		Cidade:        in.Cidade,
		UF:            in.UF,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPrestadorResponse(p), nil
}

// GetByID busca um prestador por ID.
func (uc *PrestadorUseCase) GetByID(ctx context.Context, id string) (*dto.PrestadorResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toPrestadorResponse(p), nil
}

// List lista prestadores com paginação.
func (uc *PrestadorUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PrestadorListResponse, error) {
	page.DefaultPage()
	prestadores, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PrestadorListResponse{
		Items: make([]dto.PrestadorResponse, 0, len(prestadores)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range prestadores {
		out.Items = append(out.Items, *toPrestadorResponse(p))
	}
	return out, nil
}

func toPrestadorResponse(p *entity.Prestador) *dto.PrestadorResponse {
	return &dto.PrestadorResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		CNPJ:          p.CNPJ,
		Email:         p.Email,
		Telefone:      p.Telefone,
		Especialidade: p.Especialidade,
		Cidade:        p.Cidade,
		UF:            p.UF,
		CreatedAt:     p.CreatedAt,
	}
}

// NotificacaoUseCase consulta da trilha de auditoria de alertas enviados.
type NotificacaoUseCase struct {
	repo repository.NotificacaoRepository
}

// NewNotificacaoUseCase constrói o caso de uso.
func NewNotificacaoUseCase(repo repository.NotificacaoRepository) *NotificacaoUseCase {
	return &NotificacaoUseCase{repo: repo}
}

// List lista as notificações despachadas para a construtora, mais recentes
// primeiro.
func (uc *NotificacaoUseCase) List(ctx context.Context, construtoraID string, page dto.PageRequest) (*dto.NotificacaoListResponse, error) {
	page.DefaultPage()
	notificacoes, err := uc.repo.ListByConstrutora(ctx, construtoraID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.NotificacaoListResponse{
		Items: make([]dto.NotificacaoResponse, 0, len(notificacoes)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, n := range notificacoes {
		out.Items = append(out.Items, dto.NotificacaoResponse{
			ID:               n.ID,
			EmpreendimentoID: n.EmpreendimentoID,
			OSID:             n.OSID,
			Urgencia:         n.Urgencia,
			Assunto:          n.Assunto,
			Mensagem:         n.Mensagem,
			Destinatario:     n.Destinatario,
			EnviadaEm:        n.EnviadaEm,
		})
	}
	return out, nil
}
