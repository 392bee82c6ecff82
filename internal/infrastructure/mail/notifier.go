package mail

import (
	"context"
	"fmt"

	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/pkg/config"
	"gopkg.in/gomail.v2"
)

var _ orders.Notifier = (*Notifier)(nil)

// Notifier despacha por SMTP la notificación de pedido pendiente de autorizar.
// Los destinatarios son fijos y vienen de configuración (los encargados de autorizar).
type Notifier struct {
	cfg config.MailConfig
}

// NewNotifier construye el despachador SMTP.
func NewNotifier(cfg config.MailConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// SendOrderNotification renderiza el cuerpo HTML y envía el correo. El envío es
// bloqueante; el fallo se devuelve tal cual al caso de uso, sin reintentos.
func (n *Notifier) SendOrderNotification(_ context.Context, notification orders.OrderNotification) error {
	if len(n.cfg.Recipients) == 0 {
		return fmt.Errorf("mail: sin destinatarios configurados")
	}
	body, err := renderBody(notification)
	if err != nil {
		return fmt.Errorf("mail: renderizar cuerpo: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.Recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo pedido a autorizar - %s", notification.Client.Name))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar: %w", err)
	}
	return nil
}
