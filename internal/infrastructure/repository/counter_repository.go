package repository

import (
	"context"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new document counter repository
func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{db: db}
}

// Get retrieves the counter row for a document type
func (r *counterRepository) Get(ctx context.Context, docType enum.DocumentType) (*entity.DocumentCounter, error) {
	var counter entity.DocumentCounter
	err := r.db.WithContext(ctx).Where("document_type = ?", docType).First(&counter).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &counter, nil
}

// Save upserts the counter row
func (r *counterRepository) Save(ctx context.Context, counter *entity.DocumentCounter) error {
	return r.db.WithContext(ctx).Save(counter).Error
}
