package preview

import (
	"strings"
	"testing"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContainsDocumentStructure(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Widget", Quantity: 3, UnitPrice: 10, DiscountPercent: 10},
		{Description: "Gadget", Quantity: 1, UnitPrice: 5},
	}
	data := entity.DocumentData{
		Type:      enum.DocumentTypeQuotation,
		Number:    "QUO-2000",
		IssueDate: "1/15/2026",
		Business: entity.BusinessProfile{
			BusinessName:    "Acme Ltd",
			BusinessAddress: "1 Acme Way\nSpringfield",
			BusinessEmail:   "billing@acme.test",
		},
		Client:       entity.PartyInfo{Name: "Jane Doe", Address: "12 Main St"},
		Items:        items,
		Totals:       entity.ComputeTotals(items, 5),
		CurrencyCode: "USD",
	}

	html, err := Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "QUOTATION")
	assert.Contains(t, html, "QUO-2000")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Acme Ltd")
	assert.Contains(t, html, "1 Acme Way<br>Springfield")
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "$27.00")
	assert.Contains(t, html, "Tax (5%):")
	assert.Contains(t, html, "$33.60")
	assert.Contains(t, html, "Thank you for your business!")
	assert.Contains(t, html, "Page 1 of 1")
}

func TestRenderZebraStripesOddRows(t *testing.T) {
	items := []entity.LineItem{
		{Description: "First", Quantity: 1, UnitPrice: 1},
		{Description: "Second", Quantity: 1, UnitPrice: 1},
	}
	data := entity.DocumentData{
		Type:   enum.DocumentTypeInvoice,
		Items:  items,
		Totals: entity.ComputeTotals(items, 0),
	}

	html, err := Render(data)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(html, "background-color: #f9f9f9;"))
}

func TestRenderPlaceholdersWhenAssetsMissing(t *testing.T) {
	data := entity.DocumentData{
		Type:   enum.DocumentTypeReceipt,
		Client: entity.PartyInfo{Name: "Jane"},
		Totals: entity.ComputeTotals(nil, 0),
	}

	html, err := Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "RECEIPT")
	assert.Contains(t, html, "Your Business Name")
	assert.Contains(t, html, ">Logo</div>")
	assert.Contains(t, html, ">Signature</div>")
}

func TestRenderEscapesUserContent(t *testing.T) {
	items := []entity.LineItem{
		{Description: "<script>alert(1)</script>", Quantity: 1, UnitPrice: 1},
	}
	data := entity.DocumentData{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "<b>bold</b>"},
		Items:  items,
		Totals: entity.ComputeTotals(items, 0),
	}

	html, err := Render(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<b>bold</b>")
}

func TestUnknownTypeFallsBackToDocumentTitle(t *testing.T) {
	data := entity.DocumentData{
		Type:   enum.DocumentType("memo"),
		Totals: entity.ComputeTotals(nil, 0),
	}

	html, err := Render(data)
	require.NoError(t, err)
	assert.Contains(t, html, "DOCUMENT")
}
