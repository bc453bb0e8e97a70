// Package preview renders the live HTML preview of a document. It is a
// pure function of the DocumentData snapshot: no I/O, cheap enough to
// re-run on every input change.
package preview

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/pkg/money"
)

//go:embed templates/document.html.tmpl
var templateFS embed.FS

var documentTmpl = template.Must(template.New("document.html.tmpl").
	Funcs(template.FuncMap{
		"multiline": multiline,
	}).
	ParseFS(templateFS, "templates/document.html.tmpl"))

type itemView struct {
	Description string
	Quantity    string
	Price       string
	Discount    string
	Total       string
	Shaded      bool
}

type view struct {
	Title        string
	Number       string
	Date         string
	Business     entity.BusinessProfile
	BusinessName string
	Client       entity.PartyInfo
	Items        []itemView
	Subtotal     string
	TaxLabel     string
	TaxAmount    string
	GrandTotal   string
}

// Render produces the preview markup for a document snapshot
func Render(data entity.DocumentData) (string, error) {
	v := view{
		Title:        data.Type.Title(),
		Number:       data.Number,
		Date:         data.IssueDate,
		Business:     data.Business,
		BusinessName: data.Business.BusinessName,
		Client:       data.Client,
		Subtotal:     money.Format(data.Totals.Subtotal, data.CurrencyCode),
		TaxLabel:     "Tax (" + trimZeros(data.Totals.TaxRatePercent) + "%):",
		TaxAmount:    money.Format(data.Totals.TaxAmount, data.CurrencyCode),
		GrandTotal:   money.Format(data.Totals.GrandTotal, data.CurrencyCode),
	}
	if v.BusinessName == "" {
		v.BusinessName = "Your Business Name"
	}

	for i, item := range data.Items {
		v.Items = append(v.Items, itemView{
			Description: item.Description,
			Quantity:    trimZeros(item.Quantity),
			Price:       money.Format(item.UnitPrice, data.CurrencyCode),
			Discount:    trimZeros(item.DiscountPercent) + "%",
			Total:       money.Format(item.Total(), data.CurrencyCode),
			Shaded:      i%2 == 1,
		})
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// multiline converts newlines to <br> after escaping
func multiline(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func trimZeros(v float64) string {
	s := strings.TrimRight(strings.TrimRight(moneyFixed(v), "0"), ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func moneyFixed(v float64) string {
	return strings.TrimSpace(strings.ReplaceAll(money.FormatAmount(v), ",", ""))
}
