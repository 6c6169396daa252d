// internal/services/test_drive_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
	"github.com/aryals/dealer-backend/internal/utils"
)

type TestDriveService struct {
	db *gorm.DB
}

func NewTestDriveService(db *gorm.DB) *TestDriveService {
	return &TestDriveService{db: db}
}

type SubmitTestDriveRequest struct {
	VehicleID     uint   `json:"vehicle_id" validate:"required"`
	FullName      string `json:"full_name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=100"`
	Phone         string `json:"phone" validate:"required,max=50"`
	Address       string `json:"address" validate:"required,max=255"`
	PreferredDate string `json:"preferred_date" validate:"required,max=20"`
	PreferredTime string `json:"preferred_time" validate:"required,max=20"`
	Message       string `json:"message"`
}

type TestDriveSearchParams struct {
	Status    string
	Sort      string
	StartDate string
	EndDate   string
}

type TestDriveStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// TestDriveRow is a test drive joined with the headline fields of its
// vehicle for the admin list view.
type TestDriveRow struct {
	models.TestDrive
	Model    *string  `json:"model" gorm:"column:model"`
	Variant  *string  `json:"variant" gorm:"column:variant"`
	ImageURL *string  `json:"image_url" gorm:"column:image_url"`
	Price    *float64 `json:"price" gorm:"column:price"`
}

func (s *TestDriveService) SubmitTestDrive(req *SubmitTestDriveRequest) (*models.TestDrive, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	testDrive := &models.TestDrive{
		VehicleID:     req.VehicleID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Status:        models.TestDriveStatusPending,
	}

	if err := s.db.Create(testDrive).Error; err != nil {
		return nil, fmt.Errorf("failed to create test drive request: %w", err)
	}

	return testDrive, nil
}

func (s *TestDriveService) GetTestDrives(params TestDriveSearchParams) ([]TestDriveRow, error) {
	query := s.testDriveQuery()

	if params.Status != "" && params.Status != "all" {
		query = query.Where("test_drives.status = ?", params.Status)
	}

	if params.StartDate != "" && params.EndDate != "" {
		query = query.Where("test_drives.preferred_date BETWEEN ? AND ?", params.StartDate, params.EndDate)
	}

	// Named sort keys the admin UI sends; anything else means newest first.
	switch params.Sort {
	case "oldest":
		query = query.Order("test_drives.created_at ASC")
	case "date_asc":
		query = query.Order("test_drives.preferred_date ASC")
	case "date_desc":
		query = query.Order("test_drives.preferred_date DESC")
	default:
		query = query.Order("test_drives.created_at DESC")
	}

	rows := []TestDriveRow{}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch test drive requests: %w", err)
	}

	return rows, nil
}

func (s *TestDriveService) GetTestDrive(id uint) (*TestDriveRow, error) {
	var row TestDriveRow
	result := s.testDriveQuery().Where("test_drives.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("database error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, errors.New("test drive request not found")
	}

	return &row, nil
}

func (s *TestDriveService) GetTestDriveStats() (*TestDriveStats, error) {
	var stats TestDriveStats
	err := s.db.Model(&models.TestDrive{}).
		Select(
			"COUNT(*) as total, " +
				"COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) as pending, " +
				"COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0) as confirmed, " +
				"COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) as completed, " +
				"COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) as cancelled",
		).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &stats, nil
}

func (s *TestDriveService) UpdateTestDriveStatus(id uint, status string) error {
	if !models.ValidTestDriveStatus(status) {
		return errors.New("invalid status: must be pending, confirmed, completed, or cancelled")
	}

	result := s.db.Model(&models.TestDrive{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update test drive status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("test drive request not found")
	}

	return nil
}

func (s *TestDriveService) DeleteTestDrive(id uint) error {
	result := s.db.Delete(&models.TestDrive{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete test drive request: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("test drive request not found")
	}

	return nil
}

func (s *TestDriveService) testDriveQuery() *gorm.DB {
	return s.db.Table("test_drives").
		Select("test_drives.*, vehicles.model, vehicles.variant, vehicles.image_url, vehicles.price").
		Joins("LEFT JOIN vehicles ON test_drives.vehicle_id = vehicles.id")
}
