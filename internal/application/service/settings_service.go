package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/repository"
	"github.com/docugen/docugen-api/pkg/apperror"
)

// SettingsService handles business settings logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	exportMu     sync.Mutex
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the business profile, falling back to defaults
// when nothing has been saved yet
func (s *SettingsService) GetSettings(ctx context.Context) (entity.BusinessProfile, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return entity.BusinessProfile{}, err
	}
	if settings == nil {
		return entity.DefaultBusinessProfile(), nil
	}

	return settings.Profile(), nil
}

// SaveSettings persists the business profile, creating the singleton row
// on first save
func (s *SettingsService) SaveSettings(ctx context.Context, profile entity.BusinessProfile) (entity.BusinessProfile, error) {
	if profile.TaxRatePercent < 0 || profile.TaxRatePercent > 100 {
		return entity.BusinessProfile{}, apperror.NewValidationError("Tax rate must be between 0 and 100")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return entity.BusinessProfile{}, err
	}

	if settings == nil {
		settings = &entity.BusinessSettings{}
		settings.ApplyProfile(profile)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return entity.BusinessProfile{}, err
		}
	} else {
		settings.ApplyProfile(profile)
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return entity.BusinessProfile{}, err
		}
	}

	return settings.Profile(), nil
}

// ExportOutput carries the serialized settings and the download filename
type ExportOutput struct {
	Payload  []byte
	Filename string
}

// ExportSettings serializes the current profile for download. Only one
// export may run at a time; a second concurrent request is rejected.
func (s *SettingsService) ExportSettings(ctx context.Context) (*ExportOutput, error) {
	if !s.exportMu.TryLock() {
		return nil, apperror.ErrExportInProgress
	}
	defer s.exportMu.Unlock()

	profile, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// exportDate documents when the file was produced; import ignores it
	payload, err := json.MarshalIndent(struct {
		entity.BusinessProfile
		ExportDate string `json:"exportDate"`
	}{
		BusinessProfile: profile,
		ExportDate:      time.Now().UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Payload:  payload,
		Filename: "business_settings_" + time.Now().Format("20060102_150405") + ".json",
	}, nil
}

// ImportSettings parses a previously exported payload and saves it. The
// profile may arrive bare (the exported file) or under a "settings" key.
func (s *SettingsService) ImportSettings(ctx context.Context, payload []byte) (entity.BusinessProfile, error) {
	var wrapped struct {
		Settings *entity.BusinessProfile `json:"settings"`
	}
	if err := json.Unmarshal(payload, &wrapped); err == nil && wrapped.Settings != nil {
		return s.SaveSettings(ctx, *wrapped.Settings)
	}

	var profile entity.BusinessProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return entity.BusinessProfile{}, apperror.NewBadRequestError("Invalid settings file")
	}

	return s.SaveSettings(ctx, profile)
}
