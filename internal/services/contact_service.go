// internal/services/contact_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
	"github.com/aryals/dealer-backend/internal/utils"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Phone   string `json:"phone" validate:"max=50"`
	Message string `json:"message" validate:"required"`
}

type ContactSearchParams struct {
	Status    string
	Search    string
	StartDate string
	EndDate   string
	Sort      string
	Order     string
}

type ContactCounts struct {
	Total        int64 `json:"total"`
	NewCount     int64 `json:"new_count"`
	ReadCount    int64 `json:"read_count"`
	RepliedCount int64 `json:"replied_count"`
}

var contactSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"email":      "email",
	"status":     "status",
}

func (s *ContactService) CreateMessage(req *CreateContactRequest) (*models.ContactMessage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return message, nil
}

func (s *ContactService) GetMessages(params ContactSearchParams) ([]models.ContactMessage, *ContactCounts, error) {
	query := s.db.Model(&models.ContactMessage{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}

	if params.StartDate != "" {
		query = query.Where("DATE(created_at) >= ?", params.StartDate)
	}

	if params.EndDate != "" {
		query = query.Where("DATE(created_at) <= ?", params.EndDate)
	}

	query = query.Order(utils.OrderClause(contactSortColumns, params.Sort, params.Order, "created_at"))

	messages := []models.ContactMessage{}
	if err := query.Find(&messages).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}

	// Per-status counts over the whole table, independent of filters
	var counts ContactCounts
	err := s.db.Model(&models.ContactMessage{}).
		Select(
			"COUNT(*) as total, " +
				"COALESCE(SUM(CASE WHEN status = 'new' THEN 1 ELSE 0 END), 0) as new_count, " +
				"COALESCE(SUM(CASE WHEN status = 'read' THEN 1 ELSE 0 END), 0) as read_count, " +
				"COALESCE(SUM(CASE WHEN status = 'replied' THEN 1 ELSE 0 END), 0) as replied_count",
		).
		Scan(&counts).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return messages, &counts, nil
}

func (s *ContactService) GetMessage(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("message not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &message, nil
}

func (s *ContactService) UpdateMessageStatus(id uint, status string) error {
	if !models.ValidContactStatus(status) {
		return errors.New("invalid status: must be new, read, or replied")
	}

	result := s.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update message status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("message not found")
	}

	return nil
}

func (s *ContactService) DeleteMessage(id uint) error {
	result := s.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("message not found")
	}

	return nil
}
