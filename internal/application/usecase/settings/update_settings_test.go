package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

type fakeSettingsRepo struct {
	settings *entity.Settings
	saves    int
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		r.settings = &entity.Settings{
			USDToEGPRate: entity.DefaultUSDToEGPRate,
			UpdatedAt:    time.Now().UTC(),
		}
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *entity.Settings) error {
	r.settings = settings
	r.saves++
	return nil
}

func TestGetSettingsSeedsDefaultRate(t *testing.T) {
	uc := NewGetSettingsUseCase(&fakeSettingsRepo{})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Settings.USDToEGPRate.Equal(entity.DefaultUSDToEGPRate) {
		t.Errorf("expected default rate %s, got %s", entity.DefaultUSDToEGPRate, output.Settings.USDToEGPRate)
	}
}

func TestUpdateSettingsSavesNewRate(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewUpdateSettingsUseCase(repo)

	output, err := uc.Execute(context.Background(), UpdateSettingsInput{
		USDToEGPRate: decimal.NewFromFloat(51.25),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Settings.USDToEGPRate.Equal(decimal.NewFromFloat(51.25)) {
		t.Errorf("expected rate 51.25, got %s", output.Settings.USDToEGPRate)
	}
	if repo.saves != 1 {
		t.Errorf("expected one save, got %d", repo.saves)
	}
}

func TestUpdateSettingsRejectsNonPositiveRate(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewUpdateSettingsUseCase(repo)

	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		_, err := uc.Execute(context.Background(), UpdateSettingsInput{USDToEGPRate: rate})
		if !errors.Is(err, domainerror.ErrNonPositiveRate) {
			t.Fatalf("expected ErrNonPositiveRate for %s, got %v", rate, err)
		}
	}
	if repo.saves != 0 {
		t.Error("expected no save on validation failure")
	}
}
