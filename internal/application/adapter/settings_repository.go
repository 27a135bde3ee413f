// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings singleton.
// Get seeds and returns the default settings when no row exists yet.
type SettingsRepository interface {
	// Get retrieves the settings row.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save replaces the settings row.
	Save(ctx context.Context, settings *entity.Settings) error
}
