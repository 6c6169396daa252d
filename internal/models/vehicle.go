// internal/models/vehicle.go
package models

import (
	"fmt"
	"strings"
	"time"
)

type VehicleStatus string

// Canonical status set. Historical data also contained "new", "demo",
// "used" and "Sold"; NormalizeVehicleStatus folds those in at write time.
const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusUsed      VehicleStatus = "Used"
	VehicleStatusSoldOut   VehicleStatus = "Sold Out"
	VehicleStatusReserved  VehicleStatus = "Reserved"
)

type Vehicle struct {
	BaseModel
	Model              string        `json:"model" gorm:"size:100;not null;index"`
	Year               int           `json:"year" gorm:"index"`
	Variant            string        `json:"variant" gorm:"size:100"`
	Price              float64       `json:"price" gorm:"type:decimal(10,2);not null;index;check:price >= 0"`
	OriginalPrice      float64       `json:"original_price" gorm:"type:decimal(10,2)"`
	AfterTaxCredit     float64       `json:"after_tax_credit" gorm:"type:decimal(10,2)"`
	Mileage            int           `json:"mileage"`
	RangeEPA           int           `json:"range_epa" gorm:"column:range_epa"`
	TopSpeed           int           `json:"top_speed"`
	Acceleration       string        `json:"acceleration" gorm:"size:50"`
	ExteriorColor      string        `json:"exterior_color" gorm:"size:50"`
	InteriorColor      string        `json:"interior_color" gorm:"size:50"`
	Wheels             string        `json:"wheels" gorm:"size:50"`
	Autopilot          bool          `json:"autopilot" gorm:"default:false"`
	SeatLayout         string        `json:"seat_layout" gorm:"size:50"`
	AdditionalFeatures string        `json:"additional_features" gorm:"type:text"`
	ImageURL           string        `json:"image_url" gorm:"size:255"`
	Status             VehicleStatus `json:"status" gorm:"size:50;default:'Available';index"`
	InventoryType      InventoryType `json:"inventory_type" gorm:"size:20;default:'cash'"`
	Location           string        `json:"location" gorm:"size:100"`

	// Relationships
	Images []VehicleImage `json:"images,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

type VehicleImage struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleID    uint      `json:"vehicle_id" gorm:"not null;index"`
	ImageURL     string    `json:"image_url" gorm:"size:500;not null"`
	IsPrimary    bool      `json:"is_primary" gorm:"default:false"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeVehicleStatus maps client input onto the canonical status set.
// An empty value defaults to Available; legacy aliases from earlier data
// migrations are accepted; anything else is a validation error.
func NormalizeVehicleStatus(raw string) (VehicleStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "available", "new", "demo":
		return VehicleStatusAvailable, nil
	case "used":
		return VehicleStatusUsed, nil
	case "sold out", "sold":
		return VehicleStatusSoldOut, nil
	case "reserved":
		return VehicleStatusReserved, nil
	}
	return "", fmt.Errorf("invalid status %q: must be one of Available, Used, Sold Out, Reserved", raw)
}
