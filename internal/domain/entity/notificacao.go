package entity

import "time"

// Notificacao registra um alerta efetivamente despachado pela varredura de
// notificações. Serve como trilha de auditoria; a deduplicação intra-dia é
// feita antes do despacho (store dedicado), não por esta tabela.
type Notificacao struct {
	ID               string
	ConstrutoraID    string
	EmpreendimentoID string
	OSID             string // vazio em alertas de lacuna de manutenção
	Urgencia         string // espelho de alerting.Urgencia
	Assunto          string
	Mensagem         string
	Destinatario     string
	EnviadaEm        time.Time
}
