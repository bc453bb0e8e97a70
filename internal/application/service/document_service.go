package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/pkg/apperror"
	"github.com/docugen/docugen-api/pkg/pdf"
	"github.com/docugen/docugen-api/pkg/preview"
)

// DocumentInput is the raw document submitted by the client. Rows arrive
// exactly as typed into the form, so they may be partially filled.
type DocumentInput struct {
	Type      enum.DocumentType
	Number    string
	IssueDate string
	DueDate   string
	Client    entity.PartyInfo
	Items     []entity.LineItem
}

// DocumentService assembles document snapshots and drives the preview and
// PDF pipelines
type DocumentService struct {
	settingsService  *SettingsService
	numberingService *NumberingService
	codeService      *CodeService
	renderer         *pdf.Renderer
	exportMu         sync.Mutex
}

// NewDocumentService creates a new document service
func NewDocumentService(
	settingsService *SettingsService,
	numberingService *NumberingService,
	codeService *CodeService,
	renderer *pdf.Renderer,
) *DocumentService {
	return &DocumentService{
		settingsService:  settingsService,
		numberingService: numberingService,
		codeService:      codeService,
		renderer:         renderer,
	}
}

// BuildForPreview assembles a lenient snapshot: rows with no content at
// all are skipped, blank fields on the rest are replaced with placeholders,
// and an all-blank document previews as a single sample row. It never
// fails on document content, unknown types included.
func (s *DocumentService) BuildForPreview(ctx context.Context, input *DocumentInput) (entity.DocumentData, error) {
	business, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return entity.DocumentData{}, err
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Description == "" && item.Quantity <= 0 && item.UnitPrice <= 0 {
			continue
		}
		if item.Description == "" {
			item.Description = "Item description"
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		if item.UnitPrice < 0 {
			item.UnitPrice = 0
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		items = append(items, entity.LineItem{Description: "Sample item", Quantity: 1})
	}

	number := input.Number
	if number == "" {
		if input.Type.Valid() {
			number, err = s.numberingService.Peek(ctx, input.Type)
			if err != nil {
				return entity.DocumentData{}, err
			}
		} else {
			number = fmt.Sprintf("%s-%d", input.Type.Prefix(), input.Type.CounterSeed())
		}
	}

	return s.assemble(input, business, items, number), nil
}

// BuildForExport assembles a strict snapshot. Incomplete rows are dropped;
// the document must name a client and keep at least one complete row, and
// must fit on a single page. An unset number is allocated from the counter.
func (s *DocumentService) BuildForExport(ctx context.Context, input *DocumentInput) (entity.DocumentData, error) {
	return s.buildStrict(ctx, input, true)
}

// buildStrict validates the document; allocate controls whether an unset
// number advances the counter or is only peeked.
func (s *DocumentService) buildStrict(ctx context.Context, input *DocumentInput, allocate bool) (entity.DocumentData, error) {
	if !input.Type.Valid() {
		return entity.DocumentData{}, apperror.NewBadRequestError("Unknown document type")
	}
	if input.Client.Name == "" {
		return entity.DocumentData{}, apperror.NewValidationError("Client name is required")
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Description != "" && item.Quantity > 0 && item.UnitPrice > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return entity.DocumentData{}, apperror.NewValidationError("At least one complete line item is required")
	}
	if capacity := s.renderer.Capacity(); len(items) > capacity {
		return entity.DocumentData{}, apperror.NewValidationError(
			fmt.Sprintf("A document fits at most %d line items on one page", capacity))
	}

	business, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return entity.DocumentData{}, err
	}

	number := input.Number
	if number == "" {
		if allocate {
			number, err = s.numberingService.Next(ctx, input.Type)
		} else {
			number, err = s.numberingService.Peek(ctx, input.Type)
		}
		if err != nil {
			return entity.DocumentData{}, err
		}
	}

	return s.assemble(input, business, items, number), nil
}

// PreviewHTML renders the live HTML preview of a document
func (s *DocumentService) PreviewHTML(ctx context.Context, input *DocumentInput) (string, error) {
	data, err := s.BuildForPreview(ctx, input)
	if err != nil {
		return "", err
	}
	return preview.Render(data)
}

// PDFPreview renders the document as a base64 data URL for in-browser
// display. The document is validated like a real export, but no download
// code is consumed and the counter is not advanced.
func (s *DocumentService) PDFPreview(ctx context.Context, input *DocumentInput) (string, error) {
	data, err := s.buildStrict(ctx, input, false)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderDataURL(data)
}

// PDFOutput carries the rendered document and its download filename
type PDFOutput struct {
	Content  []byte
	Filename string
}

// ExportPDF consumes a download code and renders the final PDF. Exports
// are serialized; a second request while one is in flight is rejected
// before its code is consumed. The document is validated before the code
// check, so a rejected document leaves the code usable for a retry.
func (s *DocumentService) ExportPDF(ctx context.Context, input *DocumentInput, code string) (*PDFOutput, error) {
	if !s.exportMu.TryLock() {
		return nil, apperror.ErrExportInProgress
	}
	defer s.exportMu.Unlock()

	data, err := s.buildStrict(ctx, input, false)
	if err != nil {
		return nil, err
	}

	if err := s.codeService.VerifyCode(ctx, code); err != nil {
		return nil, err
	}

	// allocate the number last so neither a bad document nor a bad code
	// advances the counter
	if input.Number == "" {
		number, err := s.numberingService.Next(ctx, input.Type)
		if err != nil {
			return nil, err
		}
		data.Number = number
	}

	content, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}

	return &PDFOutput{
		Content:  content,
		Filename: data.FileName(),
	}, nil
}

func (s *DocumentService) assemble(input *DocumentInput, business entity.BusinessProfile, items []entity.LineItem, number string) entity.DocumentData {
	issueDate := input.IssueDate
	if issueDate == "" {
		now := time.Now()
		issueDate = fmt.Sprintf("%d/%d/%d", int(now.Month()), now.Day(), now.Year())
	}

	dueDate := input.DueDate
	if input.Type != enum.DocumentTypeInvoice {
		dueDate = ""
	}

	return entity.DocumentData{
		Type:         input.Type,
		Number:       number,
		IssueDate:    issueDate,
		DueDate:      dueDate,
		Business:     business,
		Client:       input.Client,
		Items:        items,
		Totals:       entity.ComputeTotals(items, business.TaxRatePercent),
		CurrencyCode: business.CurrencyCode,
	}
}
