// internal/services/banner_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
	"github.com/aryals/dealer-backend/internal/utils"
)

type BannerService struct {
	db *gorm.DB
}

func NewBannerService(db *gorm.DB) *BannerService {
	return &BannerService{db: db}
}

type CreateBannerRequest struct {
	Route        string `json:"route" validate:"required,banner_route"`
	ImageURL     string `json:"image_url" validate:"required,max=500"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type UpdateBannerRequest struct {
	ImageURL     string `json:"image_url" validate:"required,max=500"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type BannerOrderItem struct {
	ID           uint `json:"id" validate:"required"`
	DisplayOrder int  `json:"display_order" validate:"gte=0"`
}

// GetBanners returns the active banners, optionally for a single route,
// ordered for display.
func (s *BannerService) GetBanners(route string) ([]models.BannerImage, error) {
	query := s.db.Model(&models.BannerImage{}).Where("is_active = ?", true)
	if route != "" {
		query = query.Where("route = ?", route)
	}

	banners := []models.BannerImage{}
	if err := query.Order("display_order ASC").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch banner images: %w", err)
	}

	return banners, nil
}

func (s *BannerService) CreateBanner(req *CreateBannerRequest) (*models.BannerImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	banner := &models.BannerImage{
		Route:        req.Route,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}

	if err := s.db.Create(banner).Error; err != nil {
		return nil, fmt.Errorf("failed to create banner image: %w", err)
	}

	return banner, nil
}

func (s *BannerService) UpdateBanner(id uint, req *UpdateBannerRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result := s.db.Model(&models.BannerImage{}).Where("id = ?", id).Updates(map[string]interface{}{
		"image_url":     req.ImageURL,
		"display_order": req.DisplayOrder,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update banner image: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("banner image not found")
	}

	return nil
}

// ReorderBanners applies each {id, display_order} pair as an independent
// update. Two concurrent reorders race last-write-wins; callers accept that.
func (s *BannerService) ReorderBanners(items []BannerOrderItem) error {
	if len(items) == 0 {
		return errors.New("no banner order provided")
	}

	for _, item := range items {
		err := s.db.Model(&models.BannerImage{}).
			Where("id = ?", item.ID).
			Update("display_order", item.DisplayOrder).Error
		if err != nil {
			return fmt.Errorf("failed to update banner %d: %w", item.ID, err)
		}
	}

	return nil
}

func (s *BannerService) DeleteBanner(id uint) error {
	result := s.db.Delete(&models.BannerImage{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete banner image: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("banner image not found")
	}

	return nil
}
