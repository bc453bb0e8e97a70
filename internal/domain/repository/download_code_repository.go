package repository

import (
	"context"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/pkg/pagination"
)

// DownloadCodeRepository defines the interface for download code data access
type DownloadCodeRepository interface {
	Create(ctx context.Context, code *entity.DownloadCode) error
	CreateBatch(ctx context.Context, codes []*entity.DownloadCode) error
	// GetUnused returns the unused code matching the given value, or nil
	// when no such code exists.
	GetUnused(ctx context.Context, code string) (*entity.DownloadCode, error)
	Update(ctx context.Context, code *entity.DownloadCode) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DownloadCode, int64, error)
}
