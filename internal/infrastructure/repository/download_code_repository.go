package repository

import (
	"context"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/repository"
	"github.com/docugen/docugen-api/pkg/pagination"
	"gorm.io/gorm"
)

type downloadCodeRepository struct {
	db *gorm.DB
}

// NewDownloadCodeRepository creates a new download code repository
func NewDownloadCodeRepository(db *gorm.DB) repository.DownloadCodeRepository {
	return &downloadCodeRepository{db: db}
}

// Create stores a single download code
func (r *downloadCodeRepository) Create(ctx context.Context, code *entity.DownloadCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// CreateBatch stores a batch of download codes in one insert
func (r *downloadCodeRepository) CreateBatch(ctx context.Context, codes []*entity.DownloadCode) error {
	return r.db.WithContext(ctx).Create(codes).Error
}

// GetUnused retrieves an unused code by value
func (r *downloadCodeRepository) GetUnused(ctx context.Context, code string) (*entity.DownloadCode, error) {
	var dc entity.DownloadCode
	err := r.db.WithContext(ctx).Where("code = ? AND used = ?", code, false).First(&dc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &dc, nil
}

// Update persists changes to a download code
func (r *downloadCodeRepository) Update(ctx context.Context, code *entity.DownloadCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

// List returns codes newest first with offset pagination
func (r *downloadCodeRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DownloadCode, int64, error) {
	var codes []entity.DownloadCode
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DownloadCode{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&codes).Error
	if err != nil {
		return nil, 0, err
	}

	return codes, total, nil
}
