// Package receipt renders a plain-text receipt for a confirmed order. The
// output is monospace-friendly text suitable for both the API response and
// the receipt email body.
package receipt

import (
	"strings"
	"text/template"
	"time"
)

type Line struct {
	Name      string
	Quantity  int32
	UnitPrice string
	Total     string
}

type Data struct {
	OrderNumber    string
	PlacedAt       time.Time
	ConfirmedAt    time.Time
	CustomerName   string
	CustomerEmail  string
	DeliveryOption string
	Address        string
	Lines          []Line
	Subtotal       string
	Tax            string
	ShippingFee    string
	Total          string
}

var tmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"pad": func(width int, s string) string {
		if len(s) >= width {
			return s
		}
		return s + strings.Repeat(" ", width-len(s))
	},
	"date": func(t time.Time) string {
		return t.Format("02 Jan 2006 15:04")
	},
}).Parse(`========================================
              BEAUTIFY
========================================
Order    : {{.OrderNumber}}
Placed   : {{date .PlacedAt}}
Confirmed: {{date .ConfirmedAt}}
Customer : {{.CustomerName}}
Email    : {{.CustomerEmail}}
Delivery : {{.DeliveryOption}}{{if .Address}}
Ship to  : {{.Address}}{{end}}
----------------------------------------
{{range .Lines}}{{pad 24 .Name}} x{{.Quantity}}
{{pad 24 ""}}{{.Total}}
{{end}}----------------------------------------
Subtotal : {{.Subtotal}}
Tax      : {{.Tax}}
Shipping : {{.ShippingFee}}
Total    : {{.Total}}
========================================
     Thank you for shopping with us
========================================
`))

func Render(d Data) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}
