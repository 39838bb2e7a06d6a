// Package mail despacho de alertas por e-mail via SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/predialtech/garantia-api/internal/application/alerting"
	"github.com/predialtech/garantia-api/pkg/config"
)

var _ alerting.Notifier = (*GomailNotifier)(nil)

// GomailNotifier implementa o despacho de alertas via SMTP.
type GomailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailNotifier constrói o notifier a partir da configuração SMTP.
func NewGomailNotifier(cfg config.SMTPConfig) *GomailNotifier {
	return &GomailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envia o alerta. O assunto ganha o prefixo de urgência para facilitar
// filtros na caixa do síndico.
func (n *GomailNotifier) Send(ctx context.Context, a alerting.Alerta) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetAddressHeader("To", a.DestinatarioEmail, a.DestinatarioNome)
	m.SetHeader("Subject", fmt.Sprintf("[%s] %s", a.Urgencia, a.Assunto))
	m.SetBody("text/plain", a.Mensagem)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar e-mail: %w", err)
	}
	return nil
}
