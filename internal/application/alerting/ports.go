// Package alerting (aplicação) orquestra a varredura periódica de alertas:
// política de decisão (domínio) → deduplicação → despacho.
package alerting

import (
	"context"
	"time"

	domalerting "github.com/predialtech/garantia-api/internal/domain/alerting"
)

// Alerta tupla entregue ao despachante.
type Alerta struct {
	DestinatarioEmail string
	DestinatarioNome  string
	Assunto           string
	Mensagem          string
	Urgencia          domalerting.Urgencia
}

// Notifier colaborador de despacho (e-mail). Fire-and-forget do ponto de vista
// da varredura: falha de entrega é problema do colaborador, a varredura apenas
// registra e segue.
type Notifier interface {
	Send(ctx context.Context, a Alerta) error
}

// Deduper impede envios duplicados do mesmo alerta no mesmo dia. FirstToday
// devolve true na primeira vez que a chave aparece no dia; repetições no mesmo
// dia devolvem false (reexecuções da varredura não duplicam alertas).
type Deduper interface {
	FirstToday(ctx context.Context, chave string, dia time.Time) (bool, error)
}
