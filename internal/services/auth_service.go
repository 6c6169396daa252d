// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/config"
	"github.com/aryals/dealer-backend/internal/models"
	"github.com/aryals/dealer-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  *models.AdminUser `json:"user"`
}

// Login verifies the admin credentials against the stored bcrypt hash and
// issues a signed session token. Lookup and comparison failures report the
// same message so usernames cannot be probed.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var admin models.AdminUser
	if err := s.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !admin.CheckPassword(req.Password) {
		return nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Username, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: &admin}, nil
}
