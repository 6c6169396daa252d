// internal/services/brand_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
	"github.com/aryals/dealer-backend/internal/utils"
)

type BrandService struct {
	db *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

type CreateBrandRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	ImageURL     string `json:"image_url" validate:"required,max=500"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsActive     *bool  `json:"is_active"`
}

// UpdateBrandRequest is a partial patch: only non-nil fields are written.
type UpdateBrandRequest struct {
	Name         *string `json:"name"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (s *BrandService) GetBrands(activeOnly bool) ([]models.Brand, error) {
	query := s.db.Model(&models.Brand{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	brands := []models.Brand{}
	if err := query.Order("display_order ASC, name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}

	return brands, nil
}

func (s *BrandService) GetBrand(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &brand, nil
}

func (s *BrandService) CreateBrand(req *CreateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand := &models.Brand{
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

// UpdateBrand builds the update set dynamically from the provided fields
// only; an empty patch is a validation error.
func (s *BrandService) UpdateBrand(id uint, req *UpdateBrandRequest) error {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return errors.New("no fields to update")
	}

	result := s.db.Model(&models.Brand{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("brand not found")
	}

	return nil
}

func (s *BrandService) DeleteBrand(id uint) error {
	result := s.db.Delete(&models.Brand{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("brand not found")
	}

	return nil
}
