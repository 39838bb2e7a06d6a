package repository

import (
	"context"
	"time"

	"github.com/predialtech/garantia-api/internal/domain/entity"
)

// OSFilter filtros de listagem de ordens de serviço. Campos vazios não filtram.
type OSFilter struct {
	Status entity.StatusOS
	Tipo   entity.TipoServico
	Limit  int
	Offset int
}

// OrdemServicoRepository porta de persistência para ordens de serviço.
type OrdemServicoRepository interface {
	Create(ctx context.Context, os *entity.OrdemServico) error
	GetByID(ctx context.Context, id string) (*entity.OrdemServico, error)
	Update(ctx context.Context, os *entity.OrdemServico) error
	ListByEmpreendimento(ctx context.Context, empreendimentoID string, filtro OSFilter) ([]*entity.OrdemServico, error)
	// ListAbertasComPrazo devolve OS não encerradas com prazo de atendimento
	// definido, de todos os tenants; alimenta a varredura de notificações.
	ListAbertasComPrazo(ctx context.Context) ([]*entity.OrdemServico, error)
	// UltimaPreventivaConcluida devolve a data de conclusão da preventiva mais
	// recente do empreendimento; (nil, nil) se nunca houve.
	UltimaPreventivaConcluida(ctx context.Context, empreendimentoID string) (*time.Time, error)
}
