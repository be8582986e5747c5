// Package inventory covers the equipment registry: items installed in
// zones and the consumable materials attached to them.
package inventory

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID             int             `json:"id"`
	ZoneID         int             `json:"zone_id"`
	Reference      string          `json:"reference"`
	Serial         string          `json:"serial_number"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	CommissionedAt *time.Time      `json:"commissioned_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type Material struct {
	ID        int       `json:"id"`
	ItemID    int       `json:"item_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Stock     float64   `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ItemDraft struct {
	ZoneID         int             `json:"zone_id" validate:"required"`
	Reference      string          `json:"reference" validate:"required"`
	Serial         string          `json:"serial_number"`
	Name           string          `json:"name" validate:"required"`
	Price          decimal.Decimal `json:"price"`
	CommissionedAt *time.Time      `json:"commissioned_at"`
}

type MaterialDraft struct {
	ItemID int     `json:"item_id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Unit   string  `json:"unit"`
	Stock  float64 `json:"stock"`
}

func (i Item) OptionID() string    { return strconv.Itoa(i.ID) }
func (i Item) OptionLabel() string { return i.Name }
