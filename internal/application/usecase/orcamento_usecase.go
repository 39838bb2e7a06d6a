package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
)

// OrcamentoUseCase marketplace de orçamentos: prestadores propõem, o
// solicitante aceita um e a OS segue para execução.
type OrcamentoUseCase struct {
	txRunner  repository.AceiteTxRunner
	osRepo    repository.OrdemServicoRepository
	orcRepo   repository.OrcamentoRepository
	prestRepo repository.PrestadorRepository
	nowFn     func() time.Time
}

// NewOrcamentoUseCase constrói o caso de uso.
func NewOrcamentoUseCase(
	txRunner repository.AceiteTxRunner,
	osRepo repository.OrdemServicoRepository,
	orcRepo repository.OrcamentoRepository,
	prestRepo repository.PrestadorRepository,
) *OrcamentoUseCase {
	return &OrcamentoUseCase{
		txRunner:  txRunner,
		osRepo:    osRepo,
		orcRepo:   orcRepo,
		prestRepo: prestRepo,
		nowFn:     time.Now,
	}
}

// WithNow substitui o relógio (testes).
func (uc *OrcamentoUseCase) WithNow(now func() time.Time) *OrcamentoUseCase {
	uc.nowFn = now
	return uc
}

// Submit registra a proposta de um prestador para uma OS aberta. A primeira
// proposta move a OS de A_FAZER para AGUARDANDO_ORCAMENTO.
func (uc *OrcamentoUseCase) Submit(ctx context.Context, construtoraID, osID string, in dto.CreateOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	if in.Valor.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("valor", "deve ser positivo")
	}
	if in.PrazoDias <= 0 {
		return nil, domain.NewValidationError("prazo_dias", "deve ser positivo")
	}

	os, err := uc.osRepo.GetByID(ctx, osID)
	if err != nil {
		return nil, err
	}
	if os == nil || os.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}
	if os.Status.Encerrada() {
		return nil, domain.ErrOSImutavel
	}
	if os.PrestadorID != "" {
		return nil, domain.ErrOrcamentoAceito
	}

	prestador, err := uc.prestRepo.GetByID(ctx, in.PrestadorID)
	if err != nil {
		return nil, err
	}
	if prestador == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.nowFn()
	orc := &entity.Orcamento{
		ID:          uuid.New().String(),
		OSID:        os.ID,
		PrestadorID: in.PrestadorID,
		Valor:       in.Valor,
		PrazoDias:   in.PrazoDias,
		Observacoes: in.Observacoes,
		Status:      entity.OrcamentoPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orcRepo.Create(ctx, orc); err != nil {
		return nil, err
	}

	if os.Status == entity.StatusAFazer {
		os.Status = entity.StatusAguardandoOrcamento
		os.UpdatedAt = now
		if err := uc.osRepo.Update(ctx, os); err != nil {
			return nil, err
		}
	}
	return toOrcamentoResponse(orc), nil
}

// ListByOS lista as propostas de uma OS.
func (uc *OrcamentoUseCase) ListByOS(ctx context.Context, construtoraID, osID string) (*dto.OrcamentoListResponse, error) {
	os, err := uc.osRepo.GetByID(ctx, osID)
	if err != nil {
		return nil, err
	}
	if os == nil || os.ConstrutoraID != construtoraID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.orcRepo.ListByOS(ctx, osID)
	if err != nil {
		return nil, err
	}
	out := &dto.OrcamentoListResponse{Items: make([]dto.OrcamentoResponse, 0, len(list))}
	for _, o := range list {
		out.Items = append(out.Items, *toOrcamentoResponse(o))
	}
	return out, nil
}

// Accept aceita um orçamento. Transação única: aceita o escolhido, recusa os
// concorrentes pendentes e move a OS para EM_ANDAMENTO com o prestador
// atribuído — escritas concorrentes são resolvidas pelo banco.
func (uc *OrcamentoUseCase) Accept(ctx context.Context, construtoraID, osID, orcamentoID string) (*dto.OrcamentoResponse, error) {
	now := uc.nowFn()
	var aceito *entity.Orcamento

	err := uc.txRunner.RunAceite(ctx, func(
		osRepo repository.OrdemServicoRepository,
		orcRepo repository.OrcamentoRepository,
	) error {
		os, err := osRepo.GetByID(ctx, osID)
		if err != nil {
			return err
		}
		if os == nil || os.ConstrutoraID != construtoraID {
			return domain.ErrNotFound
		}
		if os.Status.Encerrada() {
			return domain.ErrOSImutavel
		}
		if os.PrestadorID != "" {
			return domain.ErrOrcamentoAceito
		}

		propostas, err := orcRepo.ListByOS(ctx, osID)
		if err != nil {
			return err
		}
		for _, o := range propostas {
			if o.ID == orcamentoID {
				aceito = o
				break
			}
		}
		if aceito == nil {
			return domain.ErrNotFound
		}

		for _, o := range propostas {
			if o.Status != entity.OrcamentoPendente {
				continue
			}
			if o.ID == orcamentoID {
				o.Status = entity.OrcamentoAceito
			} else {
				o.Status = entity.OrcamentoRecusado
			}
			o.RespondidoEm = &now
			o.UpdatedAt = now
			if err := orcRepo.Update(ctx, o); err != nil {
				return err
			}
		}

		os.PrestadorID = aceito.PrestadorID
		os.Status = entity.StatusEmAndamento
		os.UpdatedAt = now
		return osRepo.Update(ctx, os)
	})
	if err != nil {
		return nil, err
	}
	return toOrcamentoResponse(aceito), nil
}

func toOrcamentoResponse(o *entity.Orcamento) *dto.OrcamentoResponse {
	return &dto.OrcamentoResponse{
		ID:           o.ID,
		OSID:         o.OSID,
		PrestadorID:  o.PrestadorID,
		Valor:        o.Valor,
		PrazoDias:    o.PrazoDias,
		Observacoes:  o.Observacoes,
		Status:       string(o.Status),
		RespondidoEm: o.RespondidoEm,
		CreatedAt:    o.CreatedAt,
	}
}
