package notify

import (
	"bytes"
	"html/template"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/domain/order"
)

var orderPlacedTmpl = template.Must(template.New("order_placed").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hi {{.Contact.FullName}},</p>
<p>We received your order <b>{{.ID}}</b>.</p>
<table>
<tr><th align="left">Item</th><th>Qty</th><th align="right">Price</th></tr>
{{- range .Lines}}
<tr><td>{{.DisplayName}}</td><td align="center">{{.Quantity}}</td><td align="right">{{.Price.StringFixed 2}}</td></tr>
{{- end}}
</table>
{{- if .DiscountCode}}
<p>Discount code: {{.DiscountCode}}</p>
{{- end}}
<p>Total: <b>{{.Total.StringFixed 2}}</b></p>
</body>
</html>
`))

// OrderPlaced renders the confirmation sent after a successful checkout.
func OrderPlaced(o *order.Order) (Message, error) {
	var buf bytes.Buffer
	if err := orderPlacedTmpl.Execute(&buf, o); err != nil {
		return Message{}, errors.Wrap(err, "render order confirmation")
	}
	return Message{
		To:      o.Contact.Email,
		Subject: "Order confirmation " + o.ID,
		HTML:    buf.String(),
	}, nil
}
