package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for a settings update.
type UpdateSettingsInput struct {
	USDToEGPRate decimal.Decimal
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase handles settings update logic. Changing the global
// rate only affects transactions without a frozen snapshot; stamped expenses
// keep their historical value.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates and saves the new global exchange rate.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.USDToEGPRate.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewCurrencyError(
			domainerror.ErrCodeNonPositiveRate,
			fmt.Sprintf("global exchange rate must be positive: %s", input.USDToEGPRate),
			domainerror.ErrNonPositiveRate,
		)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings.USDToEGPRate = input.USDToEGPRate
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}
