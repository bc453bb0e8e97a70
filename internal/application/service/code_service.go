package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/docugen/docugen-api/internal/config"
	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/repository"
	"github.com/docugen/docugen-api/pkg/apperror"
	"github.com/docugen/docugen-api/pkg/pagination"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// CodeService handles download code generation and verification
type CodeService struct {
	codeRepo repository.DownloadCodeRepository
	cfg      config.CodeConfig
}

// NewCodeService creates a new code service
func NewCodeService(codeRepo repository.DownloadCodeRepository, cfg config.CodeConfig) *CodeService {
	return &CodeService{
		codeRepo: codeRepo,
		cfg:      cfg,
	}
}

// GenerateCode creates a single short-lived download code
func (s *CodeService) GenerateCode(ctx context.Context) (*entity.DownloadCode, error) {
	value, err := randomCode()
	if err != nil {
		return nil, err
	}

	code := &entity.DownloadCode{
		Code:      value,
		ExpiresAt: time.Now().UTC().Add(s.cfg.SingleExpiry),
	}
	if err := s.codeRepo.Create(ctx, code); err != nil {
		return nil, err
	}

	return code, nil
}

// GenerateBulkCodes creates a batch of long-lived download codes
func (s *CodeService) GenerateBulkCodes(ctx context.Context, count int) ([]*entity.DownloadCode, error) {
	if count < 1 || count > s.cfg.BulkMax {
		return nil, apperror.NewBadRequestError("Count must be between 1 and 100")
	}

	expiresAt := time.Now().UTC().Add(s.cfg.BulkExpiry)
	codes := make([]*entity.DownloadCode, 0, count)
	for i := 0; i < count; i++ {
		value, err := randomCode()
		if err != nil {
			return nil, err
		}
		codes = append(codes, &entity.DownloadCode{
			Code:      value,
			ExpiresAt: expiresAt,
		})
	}

	if err := s.codeRepo.CreateBatch(ctx, codes); err != nil {
		return nil, err
	}

	return codes, nil
}

// VerifyCode consumes a download code. Lookup is case-insensitive; a code
// can only be consumed once, and expired codes are rejected without being
// marked used.
func (s *CodeService) VerifyCode(ctx context.Context, value string) error {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return apperror.ErrInvalidCode
	}

	code, err := s.codeRepo.GetUnused(ctx, normalized)
	if err != nil {
		return err
	}
	if code == nil {
		return apperror.ErrInvalidCode
	}
	if code.IsExpired() {
		return apperror.ErrCodeExpired
	}

	now := time.Now().UTC()
	code.Used = true
	code.UsedAt = &now
	return s.codeRepo.Update(ctx, code)
}

// ListCodes returns download codes ordered newest first
func (s *CodeService) ListCodes(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DownloadCode], error) {
	params.Validate()

	codes, total, err := s.codeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(codes, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// randomCode draws an 8 character code from the uppercase alphanumeric
// alphabet using crypto/rand
func randomCode() (string, error) {
	var b strings.Builder
	b.Grow(codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
