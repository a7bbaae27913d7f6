package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
)

// SettingsService handles the business profile printed on receipts
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the business settings, creating defaults if none exist
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.BusinessSettings{
			BusinessName: "Duka POS",
			Currency:     "KES",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating the business profile
type UpdateSettingsInput struct {
	BusinessName  string
	Address       *string
	Phone         *string
	Email         *string
	TaxID         *string
	Currency      string
	ReceiptFooter *string
}

// UpdateSettings updates the business settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.BusinessSettings{}
	}

	settings.BusinessName = input.BusinessName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.TaxID = input.TaxID
	settings.Currency = input.Currency
	settings.ReceiptFooter = input.ReceiptFooter

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
