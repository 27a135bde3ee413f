package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// settingsRowID is the fixed primary key of the settings singleton row.
const settingsRowID = 1

// SettingsModel represents the settings table in the database. The table
// holds a single row.
type SettingsModel struct {
	ID           int             `gorm:"primaryKey"`
	USDToEGPRate decimal.Decimal `gorm:"type:decimal(12,4);not null;column:usd_to_egp_rate"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		USDToEGPRate: m.USDToEGPRate,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SettingsFromEntity creates the singleton SettingsModel from a domain entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:           settingsRowID,
		USDToEGPRate: settings.USDToEGPRate,
		UpdatedAt:    settings.UpdatedAt,
	}
}
