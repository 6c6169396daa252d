// internal/services/vehicle_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/database"
	"github.com/aryals/dealer-backend/internal/models"
	"github.com/aryals/dealer-backend/internal/utils"
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

// VehicleSearchParams are the optional list filters; every present field is
// combined by AND. Pointer fields distinguish "absent" from zero values.
type VehicleSearchParams struct {
	Model     string
	Status    string
	MinPrice  *float64
	MaxPrice  *float64
	Color     string
	Autopilot *bool
	Wheels    string
	Search    string
	Sort      string
	Order     string
}

// vehicleSortColumns is the allow-list of client sort keys. Anything not in
// this map falls back to created_at; the map value is the only text that
// ever reaches the ORDER BY clause.
var vehicleSortColumns = map[string]string{
	"price":      "price",
	"created_at": "created_at",
	"mileage":    "mileage",
	"range_epa":  "range_epa",
}

type VehicleRequest struct {
	Model              string  `json:"model" validate:"required,max=100"`
	Year               int     `json:"year"`
	Variant            string  `json:"variant" validate:"max=100"`
	Price              float64 `json:"price" validate:"required,gte=0"`
	OriginalPrice      float64 `json:"original_price" validate:"gte=0"`
	AfterTaxCredit     float64 `json:"after_tax_credit" validate:"gte=0"`
	Mileage            int     `json:"mileage" validate:"gte=0"`
	RangeEPA           int     `json:"range_epa" validate:"gte=0"`
	TopSpeed           int     `json:"top_speed" validate:"gte=0"`
	Acceleration       string  `json:"acceleration" validate:"max=50"`
	ExteriorColor      string  `json:"exterior_color" validate:"max=50"`
	InteriorColor      string  `json:"interior_color" validate:"max=50"`
	Wheels             string  `json:"wheels" validate:"max=50"`
	Autopilot          bool    `json:"autopilot"`
	SeatLayout         string  `json:"seat_layout" validate:"max=50"`
	AdditionalFeatures string  `json:"additional_features"`
	ImageURL           string  `json:"image_url" validate:"max=255"`
	Status             string  `json:"status" validate:"vehicle_status"`
	InventoryType      string  `json:"inventory_type" validate:"omitempty,oneof=cash lease"`
	Location           string  `json:"location" validate:"max=100"`
}

type BulkVehicleImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

type BulkVehicleItem struct {
	VehicleRequest
	Images []BulkVehicleImage `json:"images,omitempty"`
}

type VehicleImageInput struct {
	URL          string `json:"url" validate:"required,max=500"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// VehicleDetail is a vehicle row with its ordered image URL list attached.
type VehicleDetail struct {
	models.Vehicle
	ImageURLs []string `json:"image_urls"`
}

type FilterOptions struct {
	Models   []string `json:"models"`
	Colors   []string `json:"colors"`
	Wheels   []string `json:"wheels"`
	Statuses []string `json:"statuses"`
}

type VehicleStats struct {
	TotalVehicles     int64   `json:"totalVehicles"`
	AvailableVehicles int64   `json:"availableVehicles"`
	SoldVehicles      int64   `json:"soldVehicles"`
	TotalValue        float64 `json:"totalValue"`
}

// SearchVehicles runs the filtered, sorted vehicle query. Every predicate
// value is a bound parameter; the sort column goes through the allow-list.
func (s *VehicleService) SearchVehicles(params VehicleSearchParams) ([]models.Vehicle, error) {
	query := s.db.Model(&models.Vehicle{})

	if params.Model != "" {
		query = query.Where("LOWER(model) LIKE ?", "%"+strings.ToLower(params.Model)+"%")
	}

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if params.Color != "" {
		query = query.Where("LOWER(exterior_color) LIKE ?", "%"+strings.ToLower(params.Color)+"%")
	}

	if params.Autopilot != nil {
		query = query.Where("autopilot = ?", *params.Autopilot)
	}

	if params.Wheels != "" {
		query = query.Where("LOWER(wheels) LIKE ?", "%"+strings.ToLower(params.Wheels)+"%")
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(model) LIKE ? OR LOWER(variant) LIKE ? OR LOWER(exterior_color) LIKE ? OR LOWER(location) LIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm,
		)
	}

	query = query.Order(utils.OrderClause(vehicleSortColumns, params.Sort, params.Order, "created_at"))

	vehicles := []models.Vehicle{}
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}

	return vehicles, nil
}

// GetVehicle fetches one vehicle and attaches its image URLs, primary image
// first, then by display order. The list is never nil.
func (s *VehicleService) GetVehicle(id uint) (*VehicleDetail, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("vehicle not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	imageURLs := []string{}
	if err := s.db.Model(&models.VehicleImage{}).
		Where("vehicle_id = ?", id).
		Order("is_primary DESC, display_order ASC").
		Pluck("image_url", &imageURLs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle images: %w", err)
	}

	return &VehicleDetail{Vehicle: vehicle, ImageURLs: imageURLs}, nil
}

func (s *VehicleService) CreateVehicle(req *VehicleRequest) (*models.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vehicle, err := vehicleFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return vehicle, nil
}

// UpdateVehicle overwrites every column from the request; partial patches
// are deliberately not supported here, only on brand updates.
func (s *VehicleService) UpdateVehicle(id uint, req *VehicleRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	vehicle, err := vehicleFromRequest(req)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"model":               vehicle.Model,
		"year":                vehicle.Year,
		"variant":             vehicle.Variant,
		"price":               vehicle.Price,
		"original_price":      vehicle.OriginalPrice,
		"after_tax_credit":    vehicle.AfterTaxCredit,
		"mileage":             vehicle.Mileage,
		"range_epa":           vehicle.RangeEPA,
		"top_speed":           vehicle.TopSpeed,
		"acceleration":        vehicle.Acceleration,
		"exterior_color":      vehicle.ExteriorColor,
		"interior_color":      vehicle.InteriorColor,
		"wheels":              vehicle.Wheels,
		"autopilot":           vehicle.Autopilot,
		"seat_layout":         vehicle.SeatLayout,
		"additional_features": vehicle.AdditionalFeatures,
		"image_url":           vehicle.ImageURL,
		"status":              vehicle.Status,
		"inventory_type":      vehicle.InventoryType,
		"location":            vehicle.Location,
	}

	result := s.db.Model(&models.Vehicle{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("vehicle not found")
	}

	return nil
}

// DeleteVehicle removes the vehicle and its images in one transaction.
func (s *VehicleService) DeleteVehicle(id uint) error {
	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehicleImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete vehicle images: %w", err)
		}

		result := tx.Delete(&models.Vehicle{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete vehicle: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.New("vehicle not found")
		}

		return nil
	})
}

// GetFilterOptions returns the distinct values for the filter dropdowns.
// Recomputed on every call; the lists exclude NULL and empty values.
func (s *VehicleService) GetFilterOptions() (*FilterOptions, error) {
	options := &FilterOptions{
		Models:   []string{},
		Colors:   []string{},
		Wheels:   []string{},
		Statuses: []string{},
	}

	columns := []struct {
		column string
		dest   *[]string
	}{
		{"model", &options.Models},
		{"exterior_color", &options.Colors},
		{"wheels", &options.Wheels},
		{"status", &options.Statuses},
	}

	for _, col := range columns {
		err := s.db.Model(&models.Vehicle{}).
			Distinct().
			Where(col.column+" IS NOT NULL AND "+col.column+" <> ''").
			Order(col.column).
			Pluck(col.column, col.dest).Error
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s options: %w", col.column, err)
		}
	}

	return options, nil
}

// GetStats computes the dashboard aggregates over the whole vehicle table.
func (s *VehicleService) GetStats() (*VehicleStats, error) {
	var stats VehicleStats

	if err := s.db.Model(&models.Vehicle{}).Count(&stats.TotalVehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	if err := s.db.Model(&models.Vehicle{}).
		Where("status = ?", models.VehicleStatusAvailable).
		Count(&stats.AvailableVehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to count available vehicles: %w", err)
	}

	if err := s.db.Model(&models.Vehicle{}).
		Where("status = ?", models.VehicleStatusSoldOut).
		Count(&stats.SoldVehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to count sold vehicles: %w", err)
	}

	if err := s.db.Model(&models.Vehicle{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.TotalValue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum vehicle prices: %w", err)
	}

	return &stats, nil
}

// BulkCreateVehicles inserts every vehicle and its images inside a single
// transaction; any failure rolls back the whole batch. The first image of a
// vehicle becomes primary unless the payload marks one explicitly.
func (s *VehicleService) BulkCreateVehicles(items []BulkVehicleItem) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("no vehicles provided")
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		for i := range items {
			item := &items[i]

			vehicle, err := vehicleFromRequest(&item.VehicleRequest)
			if err != nil {
				return fmt.Errorf("vehicle %d: %w", i+1, err)
			}

			if err := tx.Create(vehicle).Error; err != nil {
				return fmt.Errorf("vehicle %d: %w", i+1, err)
			}

			if len(item.Images) == 0 {
				continue
			}

			hasPrimary := false
			for _, img := range item.Images {
				if img.IsPrimary {
					hasPrimary = true
					break
				}
			}

			images := make([]models.VehicleImage, 0, len(item.Images))
			for idx, img := range item.Images {
				images = append(images, models.VehicleImage{
					VehicleID:    vehicle.ID,
					ImageURL:     img.URL,
					IsPrimary:    img.IsPrimary || (!hasPrimary && idx == 0),
					DisplayOrder: idx,
				})
			}

			if err := tx.Create(&images).Error; err != nil {
				return fmt.Errorf("vehicle %d images: %w", i+1, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

func (s *VehicleService) GetVehicleImages(vehicleID uint) ([]models.VehicleImage, error) {
	images := []models.VehicleImage{}
	err := s.db.Where("vehicle_id = ?", vehicleID).
		Order("is_primary DESC, display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle images: %w", err)
	}

	return images, nil
}

func (s *VehicleService) AddVehicleImages(vehicleID uint, inputs []VehicleImageInput) error {
	if len(inputs) == 0 {
		return errors.New("no images provided")
	}

	var count int64
	if err := s.db.Model(&models.Vehicle{}).Where("id = ?", vehicleID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return errors.New("vehicle not found")
	}

	images := make([]models.VehicleImage, 0, len(inputs))
	for _, input := range inputs {
		images = append(images, models.VehicleImage{
			VehicleID:    vehicleID,
			ImageURL:     input.URL,
			IsPrimary:    input.IsPrimary,
			DisplayOrder: input.DisplayOrder,
		})
	}

	if err := s.db.Create(&images).Error; err != nil {
		return fmt.Errorf("failed to add vehicle images: %w", err)
	}

	return nil
}

func (s *VehicleService) DeleteVehicleImage(id uint) error {
	result := s.db.Delete(&models.VehicleImage{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete image: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("image not found")
	}

	return nil
}

func vehicleFromRequest(req *VehicleRequest) (*models.Vehicle, error) {
	status, err := models.NormalizeVehicleStatus(req.Status)
	if err != nil {
		return nil, err
	}

	inventoryType := models.InventoryType(req.InventoryType)
	if inventoryType == "" {
		inventoryType = models.InventoryTypeCash
	}

	return &models.Vehicle{
		Model:              req.Model,
		Year:               req.Year,
		Variant:            req.Variant,
		Price:              req.Price,
		OriginalPrice:      req.OriginalPrice,
		AfterTaxCredit:     req.AfterTaxCredit,
		Mileage:            req.Mileage,
		RangeEPA:           req.RangeEPA,
		TopSpeed:           req.TopSpeed,
		Acceleration:       req.Acceleration,
		ExteriorColor:      req.ExteriorColor,
		InteriorColor:      req.InteriorColor,
		Wheels:             req.Wheels,
		Autopilot:          req.Autopilot,
		SeatLayout:         req.SeatLayout,
		AdditionalFeatures: req.AdditionalFeatures,
		ImageURL:           req.ImageURL,
		Status:             status,
		InventoryType:      inventoryType,
		Location:           req.Location,
	}, nil
}
