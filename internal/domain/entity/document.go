package entity

import (
	"math"

	"github.com/docugen/docugen-api/internal/domain/enum"
)

// LineItem represents a single billable row on a document
type LineItem struct {
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"price"`
	DiscountPercent float64 `json:"discount"`
}

// Subtotal returns quantity times unit price before discount.
// Negative or non-finite inputs are coerced to zero; the calculator is
// fed directly from user input and must never error.
func (i LineItem) Subtotal() float64 {
	return coerce(i.Quantity) * coerce(i.UnitPrice)
}

// Total returns the line subtotal with the discount applied
func (i LineItem) Total() float64 {
	sub := i.Subtotal()
	disc := coerce(i.DiscountPercent)
	if disc > 100 {
		disc = 100
	}
	return sub - sub*disc/100
}

// PartyInfo identifies either the issuing business or the receiving client
type PartyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// DocumentTotals holds the computed document-level amounts
type DocumentTotals struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	GrandTotal     float64 `json:"grandTotal"`
	TaxRatePercent float64 `json:"taxRate"`
}

// ComputeTotals sums line totals and applies the tax rate. Arithmetic
// stays full precision; rounding happens only at formatting time.
func ComputeTotals(items []LineItem, taxRatePercent float64) DocumentTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total()
	}

	rate := coerce(taxRatePercent)
	taxAmount := subtotal * rate / 100

	return DocumentTotals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		GrandTotal:     subtotal + taxAmount,
		TaxRatePercent: rate,
	}
}

// DocumentData is an immutable snapshot of everything a renderer needs.
// It is built fresh on every computation and never mutated in place.
type DocumentData struct {
	Type           enum.DocumentType `json:"type"`
	Number         string            `json:"number"`
	IssueDate      string            `json:"date"`
	DueDate        string            `json:"dueDate,omitempty"`
	Business       BusinessProfile   `json:"business"`
	Client         PartyInfo         `json:"client"`
	Items          []LineItem        `json:"items"`
	Totals         DocumentTotals    `json:"totals"`
	CurrencyCode   string            `json:"currency"`
}

// FileName returns the download file name, e.g. "invoice_INV-1000.pdf"
func (d DocumentData) FileName() string {
	return d.Type.String() + "_" + d.Number + ".pdf"
}

func coerce(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
