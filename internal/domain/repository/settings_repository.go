package repository

import (
	"context"

	"github.com/docugen/docugen-api/internal/domain/entity"
)

// SettingsRepository defines the interface for business settings data access.
// The store holds at most one settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.BusinessSettings, error)
	Create(ctx context.Context, settings *entity.BusinessSettings) error
	Update(ctx context.Context, settings *entity.BusinessSettings) error
}
