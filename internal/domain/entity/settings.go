// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds the process-wide treasury settings. There is exactly one
// settings row; it is loaded at startup and mutated only through an explicit
// save.
type Settings struct {
	// USDToEGPRate is the current global exchange rate used to normalize EGP
	// amounts into USD whenever a transaction carries no snapshot rate.
	// Always strictly positive.
	USDToEGPRate decimal.Decimal
	UpdatedAt    time.Time
}

// DefaultUSDToEGPRate seeds the settings row on first boot.
var DefaultUSDToEGPRate = decimal.NewFromInt(48)
