package repository

import (
	"context"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
)

// CounterRepository defines the interface for document counter data access
type CounterRepository interface {
	// Get returns the counter row for the document type, or nil when the
	// type has never been seeded.
	Get(ctx context.Context, docType enum.DocumentType) (*entity.DocumentCounter, error)
	Save(ctx context.Context, counter *entity.DocumentCounter) error
}
