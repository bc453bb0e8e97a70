package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/pkg/money"
	"github.com/jung-kurt/gofpdf"
)

// Renderer turns a DocumentData snapshot into a single-page A4 PDF.
// Download, embedded preview and print output all go through the same
// layout routine so the three paths are identical.
type Renderer struct {
	style  Style
	client *http.Client
}

// NewRenderer creates a renderer with the given style profile
func NewRenderer(style Style) *Renderer {
	return &Renderer{
		style:  style,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Capacity returns the number of item rows that fit on the page
func (r *Renderer) Capacity() int {
	return r.style.Capacity()
}

// Render produces the PDF bytes for a document
func (r *Renderer) Render(data entity.DocumentData) ([]byte, error) {
	return r.render(data, false)
}

// RenderDataURL produces the PDF as a base64 data URL for embedding
func (r *Renderer) RenderDataURL(data entity.DocumentData) (string, error) {
	raw, err := r.render(data, false)
	if err != nil {
		return "", err
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// RenderForPrint produces PDF bytes that open the print dialog when viewed
func (r *Renderer) RenderForPrint(data entity.DocumentData) ([]byte, error) {
	return r.render(data, true)
}

func (r *Renderer) render(data entity.DocumentData, autoPrint bool) ([]byte, error) {
	if len(data.Items) > r.Capacity() {
		return nil, fmt.Errorf("pdf: %d items exceed the single-page capacity of %d", len(data.Items), r.Capacity())
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	title := data.Type.Title()
	doc.SetTitle(title+" "+data.Number, true)
	doc.SetSubject(title+" for "+data.Client.Name, true)
	author := data.Business.BusinessName
	if author == "" {
		author = "Business Documents Generator"
	}
	doc.SetAuthor(author, true)
	doc.SetCreator("Business Documents Generator", true)
	if autoPrint {
		doc.SetJavascript("print(true);")
	}

	doc.AddPage()

	r.drawHeader(doc, tr, data)
	r.drawDocumentInfo(doc, tr, data)
	r.drawParties(doc, tr, data)
	tableEndY := r.drawItemsTable(doc, tr, data)
	r.drawTotals(doc, tr, data, tableEndY)
	r.drawFooter(doc, tr, data)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(doc *gofpdf.Fpdf, tr func(string) string, data entity.DocumentData) {
	s := r.style
	margin := s.Margin

	var logoWidth float64
	if data.Business.LogoURL != "" {
		if name, ok := r.embedImage(doc, data.Business.LogoURL, "logo"); ok {
			logoWidth = 30
			doc.ImageOptions(name, margin, margin, logoWidth, 20, false,
				gofpdf.ImageOptions{ImageType: "", ReadDpi: false}, 0, "")
		}
	}

	setColor(doc.SetTextColor, s.Palette.Black)
	doc.SetFont(s.FontFamily, "B", 14)
	businessName := data.Business.BusinessName
	if businessName == "" {
		businessName = "Business Name"
	}
	nameX := margin + logoWidth
	if logoWidth > 0 {
		nameX += 5
	}
	doc.Text(nameX, margin+8, tr(businessName))

	doc.SetFont(s.FontFamily, "B", 20)
	textRight(doc, s.PageWidth-margin, margin+10, tr(data.Type.Title()))

	setColor(doc.SetDrawColor, s.Palette.MediumGray)
	doc.SetLineWidth(0.5)
	doc.Line(margin, s.HeaderRuleY, s.PageWidth-margin, s.HeaderRuleY)
}

func (r *Renderer) drawDocumentInfo(doc *gofpdf.Fpdf, tr func(string) string, data entity.DocumentData) {
	s := r.style
	margin := s.Margin
	y := s.InfoY

	setColor(doc.SetTextColor, s.Palette.DarkGray)
	doc.SetFont(s.FontFamily, "B", 10)
	doc.Text(margin, y, tr(data.Type.Title()+" #:"))
	doc.SetFont(s.FontFamily, "", 10)
	doc.Text(margin+35, y, tr(data.Number))

	doc.SetFont(s.FontFamily, "B", 10)
	doc.Text(s.PageWidth-margin-40, y, "Date:")
	doc.SetFont(s.FontFamily, "", 10)
	textRight(doc, s.PageWidth-margin, y, tr(data.IssueDate))

	// Due date only appears on invoices
	if data.Type == enum.DocumentTypeInvoice && data.DueDate != "" {
		doc.SetFont(s.FontFamily, "B", 10)
		doc.Text(s.PageWidth-margin-40, y+8, "Due Date:")
		doc.SetFont(s.FontFamily, "", 10)
		textRight(doc, s.PageWidth-margin, y+8, tr(data.DueDate))
	}
}

func (r *Renderer) drawParties(doc *gofpdf.Fpdf, tr func(string) string, data entity.DocumentData) {
	s := r.style
	margin := s.Margin
	columnWidth := (s.PageWidth - 2*margin - 10) / 2

	business := partyLines{
		name:    data.Business.BusinessName,
		address: data.Business.BusinessAddress,
		phone:   data.Business.BusinessPhone,
		email:   data.Business.BusinessEmail,
	}
	client := partyLines{
		name:    data.Client.Name,
		address: data.Client.Address,
		email:   data.Client.Email,
	}

	r.drawPartySection(doc, tr, "BILL FROM", business, margin, s.PartyY, columnWidth)
	r.drawPartySection(doc, tr, "BILL TO", client, margin+columnWidth+10, s.PartyY, columnWidth)
}

type partyLines struct {
	name    string
	address string
	phone   string
	email   string
}

func (r *Renderer) drawPartySection(doc *gofpdf.Fpdf, tr func(string) string, label string, party partyLines, x, y, width float64) {
	s := r.style

	setColor(doc.SetTextColor, s.Palette.Black)
	doc.SetFont(s.FontFamily, "B", 12)
	doc.Text(x, y, label)

	setColor(doc.SetDrawColor, s.Palette.LightGray)
	doc.SetLineWidth(0.3)
	doc.Line(x, y+2, x+width, y+2)

	setColor(doc.SetTextColor, s.Palette.DarkGray)
	doc.SetFont(s.FontFamily, "", 10)
	currentY := y + 10

	if party.name != "" {
		doc.SetFont(s.FontFamily, "B", 10)
		for _, line := range doc.SplitText(tr(party.name), width) {
			doc.Text(x, currentY, line)
			currentY += 5
		}
		doc.SetFont(s.FontFamily, "", 10)
	}

	if party.address != "" {
		for _, raw := range strings.Split(party.address, "\n") {
			for _, line := range doc.SplitText(tr(raw), width) {
				doc.Text(x, currentY, line)
				currentY += 4
			}
		}
	}

	if party.phone != "" {
		doc.Text(x, currentY, tr("Phone: "+party.phone))
		currentY += 4
	}
	if party.email != "" {
		doc.Text(x, currentY, tr("Email: "+party.email))
	}
}

func (r *Renderer) drawItemsTable(doc *gofpdf.Fpdf, tr func(string) string, data entity.DocumentData) float64 {
	s := r.style
	margin := s.Margin
	startY := s.TableStartY
	tableWidth := s.PageWidth - 2*margin

	colWidths := []float64{
		tableWidth * 0.45, // description
		tableWidth * 0.12, // quantity
		tableWidth * 0.18, // price
		tableWidth * 0.12, // discount
		tableWidth * 0.13, // total
	}

	setColor(doc.SetFillColor, s.Palette.VeryLightGray)
	doc.Rect(margin, startY, tableWidth, s.TableHeaderH, "F")
	setColor(doc.SetDrawColor, s.Palette.MediumGray)
	doc.SetLineWidth(0.3)
	doc.Rect(margin, startY, tableWidth, s.TableHeaderH, "D")

	setColor(doc.SetTextColor, s.Palette.Black)
	doc.SetFont(s.FontFamily, "", 10)

	headers := []string{"DESCRIPTION", "QTY", "PRICE", "DISC%", "TOTAL"}
	currentX := margin + 2
	for i, header := range headers {
		if i == 0 {
			doc.Text(currentX, startY+6, header)
		} else {
			textCenter(doc, currentX+colWidths[i]/2, startY+6, header)
		}
		currentX += colWidths[i]
	}

	setColor(doc.SetTextColor, s.Palette.DarkGray)
	currentY := startY + 15

	for i, item := range data.Items {
		if i%2 == 1 {
			setColor(doc.SetFillColor, s.Palette.VeryLightGray)
			doc.Rect(margin, currentY-4, tableWidth, s.RowHeight, "F")
		}

		setColor(doc.SetDrawColor, s.Palette.LightGray)
		doc.SetLineWidth(0.1)
		doc.Rect(margin, currentY-4, tableWidth, s.RowHeight, "D")

		currentX = margin + 2

		descLines := doc.SplitText(tr(item.Description), colWidths[0]-4)
		if len(descLines) > 0 {
			doc.Text(currentX, currentY+2, descLines[0])
		}
		currentX += colWidths[0]

		textCenter(doc, currentX+colWidths[1]/2, currentY+2, trimZeros(item.Quantity))
		currentX += colWidths[1]

		textRight(doc, currentX+colWidths[2]-2, currentY+2, tr(moneyText(item.UnitPrice, data.CurrencyCode)))
		currentX += colWidths[2]

		textCenter(doc, currentX+colWidths[3]/2, currentY+2, trimZeros(item.DiscountPercent)+"%")
		currentX += colWidths[3]

		textRight(doc, currentX+colWidths[4]-2, currentY+2, tr(moneyText(item.Total(), data.CurrencyCode)))

		currentY += s.RowHeight
	}

	setColor(doc.SetDrawColor, s.Palette.MediumGray)
	doc.SetLineWidth(0.5)
	doc.Line(margin, currentY-4, s.PageWidth-margin, currentY-4)

	// startY + header + 5mm gap + one row height per item
	return startY + s.TableHeaderH + 5 + float64(len(data.Items))*s.RowHeight
}

func (r *Renderer) drawTotals(doc *gofpdf.Fpdf, tr func(string) string, data entity.DocumentData, tableEndY float64) {
	s := r.style
	margin := s.Margin
	totals := data.Totals
	totalsX := s.PageWidth - margin - s.TotalsWidth
	currentY := tableEndY + 10

	setColor(doc.SetTextColor, s.Palette.DarkGray)
	doc.SetFont(s.FontFamily, "", 10)

	doc.Text(totalsX, currentY, "Subtotal:")
	textRight(doc, s.PageWidth-margin, currentY, tr(moneyText(totals.Subtotal, data.CurrencyCode)))
	currentY += 7

	doc.Text(totalsX, currentY, tr(fmt.Sprintf("Tax (%s%%):", trimZeros(totals.TaxRatePercent))))
	textRight(doc, s.PageWidth-margin, currentY, tr(moneyText(totals.TaxAmount, data.CurrencyCode)))
	currentY += 10

	setColor(doc.SetDrawColor, s.Palette.MediumGray)
	doc.SetLineWidth(0.5)
	doc.Line(totalsX, currentY-2, s.PageWidth-margin, currentY-2)

	setColor(doc.SetTextColor, s.Palette.Black)
	doc.SetFont(s.FontFamily, "B", 12)
	doc.Text(totalsX, currentY+5, "TOTAL:")
	textRight(doc, s.PageWidth-margin, currentY+5, tr(moneyText(totals.GrandTotal, data.CurrencyCode)))

	doc.SetLineWidth(0.8)
	doc.Line(totalsX, currentY+8, s.PageWidth-margin, currentY+8)
	doc.Line(totalsX, currentY+10, s.PageWidth-margin, currentY+10)
}

func (r *Renderer) drawFooter(doc *gofpdf.Fpdf, tr func(string) string, data entity.DocumentData) {
	s := r.style
	margin := s.Margin
	footerY := s.PageHeight - s.FooterOffset

	setColor(doc.SetDrawColor, s.Palette.LightGray)
	doc.SetLineWidth(0.3)
	doc.Line(margin, footerY, s.PageWidth-margin, footerY)

	footerY += 10

	if data.Business.SignatureURL != "" {
		if name, ok := r.embedImage(doc, data.Business.SignatureURL, "signature"); ok {
			doc.ImageOptions(name, margin, footerY, 40, 15, false,
				gofpdf.ImageOptions{ImageType: "", ReadDpi: false}, 0, "")

			doc.SetFont(s.FontFamily, "", 8)
			setColor(doc.SetTextColor, s.Palette.MediumGray)
			doc.Text(margin, footerY+20, "Authorized Signature")
		}
	}

	doc.SetFont(s.FontFamily, "I", 10)
	setColor(doc.SetTextColor, s.Palette.DarkGray)
	textCenter(doc, s.PageWidth/2, footerY+10, "Thank you for your business!")

	doc.SetFont(s.FontFamily, "", 8)
	setColor(doc.SetTextColor, s.Palette.MediumGray)
	textRight(doc, s.PageWidth-margin, s.PageHeight-10, "Page 1 of 1")
}

// embedImage fetches an image over HTTP and registers it with the
// document. Failures degrade to an empty region, never abort rendering.
func (r *Renderer) embedImage(doc *gofpdf.Fpdf, url, name string) (string, bool) {
	resp, err := r.client.Get(url)
	if err != nil {
		log.Printf("pdf: could not load %s image: %v", name, err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("pdf: could not load %s image: status %d", name, resp.StatusCode)
		return "", false
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20))
	if err != nil {
		log.Printf("pdf: could not read %s image: %v", name, err)
		return "", false
	}

	imageType := detectImageType(raw)
	if imageType == "" {
		log.Printf("pdf: unsupported %s image format", name)
		return "", false
	}

	doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(raw))
	if doc.Err() {
		log.Printf("pdf: could not decode %s image: %v", name, doc.Error())
		doc.ClearError()
		return "", false
	}
	return name, true
}

func detectImageType(raw []byte) string {
	switch http.DetectContentType(raw) {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	}
	return ""
}

func setColor(set func(int, int, int), c RGB) {
	set(c.R, c.G, c.B)
}

func textRight(doc *gofpdf.Fpdf, xRight, y float64, s string) {
	doc.Text(xRight-doc.GetStringWidth(s), y, s)
}

func textCenter(doc *gofpdf.Fpdf, xCenter, y float64, s string) {
	doc.Text(xCenter-doc.GetStringWidth(s)/2, y, s)
}

// moneyText formats an amount for the cp1252 core fonts. INR falls back
// to a textual prefix like NGN does: U+20B9 has no glyph in those fonts.
func moneyText(amount float64, code string) string {
	if code == "INR" {
		return "INR " + money.FormatAmount(amount)
	}
	return money.Format(amount, code)
}

// trimZeros renders a float without trailing fractional zeros, matching
// how quantities and rates appear on the form.
func trimZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
