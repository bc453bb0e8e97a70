package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/docugen/docugen-api/internal/config"
	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/pkg/apperror"
	"github.com/docugen/docugen-api/pkg/pagination"
	"github.com/docugen/docugen-api/pkg/pdf"
	"github.com/docugen/docugen-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	row *entity.BusinessSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.BusinessSettings, error) {
	return r.row, nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *entity.BusinessSettings) error {
	settings.ID = 1
	r.row = settings
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.BusinessSettings) error {
	r.row = settings
	return nil
}

type fakeCounterRepo struct {
	counters map[enum.DocumentType]*entity.DocumentCounter
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[enum.DocumentType]*entity.DocumentCounter)}
}

func (r *fakeCounterRepo) Get(ctx context.Context, docType enum.DocumentType) (*entity.DocumentCounter, error) {
	if c, ok := r.counters[docType]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCounterRepo) Save(ctx context.Context, counter *entity.DocumentCounter) error {
	copied := *counter
	r.counters[counter.DocumentType] = &copied
	return nil
}

type fakeCodeRepo struct {
	codes  []*entity.DownloadCode
	nextID uint
}

func (r *fakeCodeRepo) Create(ctx context.Context, code *entity.DownloadCode) error {
	r.nextID++
	code.ID = r.nextID
	code.CreatedAt = time.Now().UTC()
	r.codes = append(r.codes, code)
	return nil
}

func (r *fakeCodeRepo) CreateBatch(ctx context.Context, codes []*entity.DownloadCode) error {
	for _, code := range codes {
		if err := r.Create(ctx, code); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCodeRepo) GetUnused(ctx context.Context, value string) (*entity.DownloadCode, error) {
	for _, code := range r.codes {
		if code.Code == value && !code.Used {
			return code, nil
		}
	}
	return nil, nil
}

func (r *fakeCodeRepo) Update(ctx context.Context, code *entity.DownloadCode) error {
	for i, existing := range r.codes {
		if existing.ID == code.ID {
			r.codes[i] = code
			return nil
		}
	}
	return nil
}

func (r *fakeCodeRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DownloadCode, int64, error) {
	out := make([]entity.DownloadCode, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, *code)
	}
	return out, int64(len(out)), nil
}

func codeConfig() config.CodeConfig {
	return config.CodeConfig{
		SingleExpiry: 24 * time.Hour,
		BulkExpiry:   365 * 24 * time.Hour,
		BulkMax:      100,
	}
}

func TestNumberingSeedsAndAdvances(t *testing.T) {
	svc := NewNumberingService(newFakeCounterRepo())
	ctx := context.Background()

	first, err := svc.Next(ctx, enum.DocumentTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-1000", first)

	second, err := svc.Next(ctx, enum.DocumentTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", second)

	quo, err := svc.Next(ctx, enum.DocumentTypeQuotation)
	require.NoError(t, err)
	assert.Equal(t, "QUO-2000", quo)
}

func TestNumberingPeekDoesNotAdvance(t *testing.T) {
	svc := NewNumberingService(newFakeCounterRepo())
	ctx := context.Background()

	peeked, err := svc.Peek(ctx, enum.DocumentTypeReceipt)
	require.NoError(t, err)
	assert.Equal(t, "REC-4000", peeked)

	again, err := svc.Peek(ctx, enum.DocumentTypeReceipt)
	require.NoError(t, err)
	assert.Equal(t, peeked, again)

	allocated, err := svc.Next(ctx, enum.DocumentTypeReceipt)
	require.NoError(t, err)
	assert.Equal(t, "REC-4000", allocated)
}

func TestNumberingRejectsUnknownType(t *testing.T) {
	svc := NewNumberingService(newFakeCounterRepo())

	_, err := svc.Next(context.Background(), enum.DocumentType("memo"))
	assert.Error(t, err)
}

func TestGenerateCodeShape(t *testing.T) {
	repo := &fakeCodeRepo{}
	svc := NewCodeService(repo, codeConfig())

	code, err := svc.GenerateCode(context.Background())
	require.NoError(t, err)
	assert.Len(t, code.Code, 8)
	for _, r := range code.Code {
		assert.Contains(t, codeAlphabet, string(r))
	}
	assert.False(t, code.Used)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), code.ExpiresAt, time.Minute)
}

func TestGenerateBulkCodesBounds(t *testing.T) {
	repo := &fakeCodeRepo{}
	svc := NewCodeService(repo, codeConfig())
	ctx := context.Background()

	_, err := svc.GenerateBulkCodes(ctx, 0)
	assert.Error(t, err)

	_, err = svc.GenerateBulkCodes(ctx, 101)
	assert.Error(t, err)

	codes, err := svc.GenerateBulkCodes(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, codes, 5)
	assert.WithinDuration(t, time.Now().UTC().Add(365*24*time.Hour), codes[0].ExpiresAt, time.Minute)
}

func TestVerifyCodeConsumesOnce(t *testing.T) {
	repo := &fakeCodeRepo{}
	svc := NewCodeService(repo, codeConfig())
	ctx := context.Background()

	code, err := svc.GenerateCode(ctx)
	require.NoError(t, err)

	// lookup is case-insensitive
	require.NoError(t, svc.VerifyCode(ctx, strings.ToLower(code.Code)))

	err = svc.VerifyCode(ctx, code.Code)
	assert.ErrorIs(t, err, apperror.ErrInvalidCode)
}

func TestVerifyCodeRejectsExpired(t *testing.T) {
	repo := &fakeCodeRepo{}
	svc := NewCodeService(repo, codeConfig())
	ctx := context.Background()

	expired := &entity.DownloadCode{
		Code:      "OLDCODE1",
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, expired))

	err := svc.VerifyCode(ctx, "OLDCODE1")
	assert.ErrorIs(t, err, apperror.ErrCodeExpired)
	assert.False(t, expired.Used)
}

func TestVerifyCodeRejectsUnknown(t *testing.T) {
	svc := NewCodeService(&fakeCodeRepo{}, codeConfig())

	err := svc.VerifyCode(context.Background(), "NOPE1234")
	assert.ErrorIs(t, err, apperror.ErrInvalidCode)

	err = svc.VerifyCode(context.Background(), "   ")
	assert.ErrorIs(t, err, apperror.ErrInvalidCode)
}

func TestSettingsDefaultsBeforeFirstSave(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	profile, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", profile.CurrencyCode)
	assert.Empty(t, profile.BusinessName)
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})
	ctx := context.Background()

	saved, err := svc.SaveSettings(ctx, entity.BusinessProfile{
		BusinessName:   "Acme Ltd",
		TaxRatePercent: 7.5,
		CurrencyCode:   "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", saved.BusinessName)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSettingsRejectsTaxRateOutOfRange(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	_, err := svc.SaveSettings(context.Background(), entity.BusinessProfile{TaxRatePercent: 150})
	assert.True(t, apperror.IsValidationError(err))
}

func TestSettingsExportFilename(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	out, err := svc.ExportSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Filename, "business_settings_"))
	assert.True(t, strings.HasSuffix(out.Filename, ".json"))
	assert.Contains(t, string(out.Payload), "\"currency\": \"USD\"")
}

func TestSettingsImport(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})
	ctx := context.Background()

	_, err := svc.ImportSettings(ctx, []byte("not json"))
	assert.Error(t, err)

	profile, err := svc.ImportSettings(ctx, []byte(`{"businessName":"Acme Ltd","taxRate":5}`))
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", profile.BusinessName)
	assert.Equal(t, "USD", profile.CurrencyCode)

	// the profile may also arrive under a "settings" key
	profile, err = svc.ImportSettings(ctx, []byte(`{"settings":{"businessName":"Wrapped Ltd"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Wrapped Ltd", profile.BusinessName)
}

func newDocumentService(codeRepo *fakeCodeRepo) *DocumentService {
	settings := NewSettingsService(&fakeSettingsRepo{})
	numbering := NewNumberingService(newFakeCounterRepo())
	codes := NewCodeService(codeRepo, codeConfig())
	return NewDocumentService(settings, numbering, codes, pdf.NewRenderer(pdf.CleanStyle()))
}

func TestBuildForPreviewFillsPlaceholders(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	data, err := svc.BuildForPreview(context.Background(), &DocumentInput{
		Type:  enum.DocumentTypeInvoice,
		Items: []entity.LineItem{{Quantity: 0, UnitPrice: 10}},
	})
	require.NoError(t, err)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Item description", data.Items[0].Description)
	assert.Equal(t, float64(1), data.Items[0].Quantity)
	assert.Equal(t, "INV-1000", data.Number)
	assert.NotEmpty(t, data.IssueDate)
}

func TestBuildForPreviewSkipsBlankRows(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	data, err := svc.BuildForPreview(context.Background(), &DocumentInput{
		Type: enum.DocumentTypeInvoice,
		Items: []entity.LineItem{
			{},
			{Description: "Widget", Quantity: 2, UnitPrice: 10},
			{},
		},
	})
	require.NoError(t, err)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Widget", data.Items[0].Description)
}

func TestBuildForPreviewAcceptsUnknownType(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	data, err := svc.BuildForPreview(context.Background(), &DocumentInput{Type: enum.DocumentType("memo")})
	require.NoError(t, err)
	assert.Equal(t, "DOC-9000", data.Number)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Sample item", data.Items[0].Description)
}

func TestBuildForPreviewSynthesizesSampleRow(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	data, err := svc.BuildForPreview(context.Background(), &DocumentInput{Type: enum.DocumentTypeQuotation})
	require.NoError(t, err)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Sample item", data.Items[0].Description)
}

func TestBuildForExportRequiresClientName(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	_, err := svc.BuildForExport(context.Background(), &DocumentInput{
		Type:  enum.DocumentTypeInvoice,
		Items: []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	})
	assert.True(t, apperror.IsValidationError(err))
}

func TestBuildForExportDropsIncompleteRows(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	data, err := svc.BuildForExport(context.Background(), &DocumentInput{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "Jane"},
		Items: []entity.LineItem{
			{Description: "Widget", Quantity: 1, UnitPrice: 5},
			{Description: "", Quantity: 1, UnitPrice: 5},
			{Description: "Gadget", Quantity: 0, UnitPrice: 5},
			{Description: "Gizmo", Quantity: 1, UnitPrice: 0},
		},
	})
	require.NoError(t, err)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Widget", data.Items[0].Description)
}

func TestBuildForExportRejectsEmptyDocument(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	_, err := svc.BuildForExport(context.Background(), &DocumentInput{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "Jane"},
		Items:  []entity.LineItem{{Description: "", Quantity: 0, UnitPrice: 0}},
	})
	assert.True(t, apperror.IsValidationError(err))
}

func TestBuildForExportRejectsOverflowingDocument(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	items := make([]entity.LineItem, 0, 6)
	for i := 0; i < 6; i++ {
		items = append(items, entity.LineItem{Description: "Widget", Quantity: 1, UnitPrice: 5})
	}

	_, err := svc.BuildForExport(context.Background(), &DocumentInput{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "Jane"},
		Items:  items,
	})
	assert.True(t, apperror.IsValidationError(err))
}

func TestBuildForExportClearsDueDateForNonInvoices(t *testing.T) {
	svc := newDocumentService(&fakeCodeRepo{})

	data, err := svc.BuildForExport(context.Background(), &DocumentInput{
		Type:    enum.DocumentTypeQuotation,
		DueDate: "2/1/2026",
		Client:  entity.PartyInfo{Name: "Jane"},
		Items:   []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	})
	require.NoError(t, err)
	assert.Empty(t, data.DueDate)
	assert.Equal(t, "QUO-2000", data.Number)
}

func TestExportPDFConsumesCode(t *testing.T) {
	codeRepo := &fakeCodeRepo{}
	svc := newDocumentService(codeRepo)
	ctx := context.Background()

	code, err := NewCodeService(codeRepo, codeConfig()).GenerateCode(ctx)
	require.NoError(t, err)

	input := &DocumentInput{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "Jane"},
		Items:  []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	}

	out, err := svc.ExportPDF(ctx, input, code.Code)
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-1000.pdf", out.Filename)
	assert.True(t, strings.HasPrefix(string(out.Content), "%PDF-"))

	_, err = svc.ExportPDF(ctx, input, code.Code)
	assert.ErrorIs(t, err, apperror.ErrInvalidCode)
}

func TestExportPDFKeepsCodeOnValidationFailure(t *testing.T) {
	codeRepo := &fakeCodeRepo{}
	svc := newDocumentService(codeRepo)
	ctx := context.Background()

	code, err := NewCodeService(codeRepo, codeConfig()).GenerateCode(ctx)
	require.NoError(t, err)

	// missing client name fails validation before the code is touched
	_, err = svc.ExportPDF(ctx, &DocumentInput{
		Type:  enum.DocumentTypeInvoice,
		Items: []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	}, code.Code)
	assert.True(t, apperror.IsValidationError(err))

	// the same code still completes a corrected export
	out, err := svc.ExportPDF(ctx, &DocumentInput{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "Jane"},
		Items:  []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	}, code.Code)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Content)
}

func TestExportPDFRejectedCodeKeepsCounter(t *testing.T) {
	counterRepo := newFakeCounterRepo()
	numbering := NewNumberingService(counterRepo)
	svc := NewDocumentService(
		NewSettingsService(&fakeSettingsRepo{}),
		numbering,
		NewCodeService(&fakeCodeRepo{}, codeConfig()),
		pdf.NewRenderer(pdf.CleanStyle()),
	)
	ctx := context.Background()

	_, err := svc.ExportPDF(ctx, &DocumentInput{
		Type:   enum.DocumentTypeInvoice,
		Client: entity.PartyInfo{Name: "Jane"},
		Items:  []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	}, "NOPE1234")
	assert.ErrorIs(t, err, apperror.ErrInvalidCode)

	number, err := numbering.Peek(ctx, enum.DocumentTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-1000", number)
}

func TestPDFPreviewReturnsDataURL(t *testing.T) {
	numbering := NewNumberingService(newFakeCounterRepo())
	svc := NewDocumentService(
		NewSettingsService(&fakeSettingsRepo{}),
		numbering,
		NewCodeService(&fakeCodeRepo{}, codeConfig()),
		pdf.NewRenderer(pdf.CleanStyle()),
	)
	ctx := context.Background()

	input := &DocumentInput{
		Type:   enum.DocumentTypeReceipt,
		Client: entity.PartyInfo{Name: "Jane"},
		Items:  []entity.LineItem{{Description: "Widget", Quantity: 1, UnitPrice: 5}},
	}

	url, err := svc.PDFPreview(ctx, input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:application/pdf;base64,"))

	// previewing must not advance the counter
	number, err := numbering.Peek(ctx, enum.DocumentTypeReceipt)
	require.NoError(t, err)
	assert.Equal(t, "REC-4000", number)

	// strict validation applies even without a code
	_, err = svc.PDFPreview(ctx, &DocumentInput{Type: enum.DocumentTypeReceipt})
	assert.True(t, apperror.IsValidationError(err))
}

func TestAdminLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	svc := NewAuthService(config.AdminConfig{
		PasswordHash: hash,
		Secret:       "test-secret",
		TokenExpiry:  time.Hour,
	}, utils.NewJWTManager("test-secret", time.Hour))

	out, err := svc.Login("s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	_, err = svc.Login("wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidAdminLogin)
}

func TestAdminLoginUnconfigured(t *testing.T) {
	svc := NewAuthService(config.AdminConfig{}, utils.NewJWTManager("test-secret", time.Hour))

	_, err := svc.Login("anything")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrInvalidAdminLogin)
}
