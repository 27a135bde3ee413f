package dto

import (
	"github.com/khazna-app/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for a settings update.
type UpdateSettingsRequest struct {
	USDToEGPRate string `json:"usd_to_egp_rate" binding:"required"`
}

// SettingsResponse represents the settings response body.
type SettingsResponse struct {
	USDToEGPRate string `json:"usd_to_egp_rate"`
	UpdatedAt    string `json:"updated_at"`
}

// SettingsToResponse converts a settings entity to its response shape.
func SettingsToResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		USDToEGPRate: settings.USDToEGPRate.String(),
		UpdatedAt:    settings.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
