package mail

import (
	"html/template"
	"strings"

	"github.com/tponsmiquel/almacen/internal/application/orders"
)

// Cuerpo del correo de autorización: líneas del pedido nuevo más la tabla de
// histórico por año de los mismos artículos.
const bodyTemplate = `<html>
<body>
  <h2>Nuevo pedido de {{.Client.Name}}</h2>
  <p>Fecha del pedido: {{.Date.Format "02/01/2006"}}</p>
  <table border="1" cellpadding="4">
    <tr><th>Artículo</th><th>Cantidad</th></tr>
    {{- range .Lines}}
    <tr><td>{{.Article}}</td><td>{{.Quantity}}</td></tr>
    {{- end}}
  </table>
  {{- if .History}}
  <h3>Histórico de pedidos</h3>
  {{- range .History}}
  <h4>{{.Year}}</h4>
  <table border="1" cellpadding="4">
    <tr><th>Artículo</th><th>Total</th></tr>
    {{- range .Totals}}
    <tr><td>{{.Article}}</td><td>{{.Quantity}}</td></tr>
    {{- end}}
  </table>
  {{- end}}
  {{- else}}
  <p>Sin pedidos anteriores de estos artículos.</p>
  {{- end}}
</body>
</html>`

var bodyTmpl = template.Must(template.New("order_notification").Parse(bodyTemplate))

// renderBody genera el HTML del correo a partir de la carga de la notificación.
func renderBody(n orders.OrderNotification) (string, error) {
	var sb strings.Builder
	if err := bodyTmpl.Execute(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
