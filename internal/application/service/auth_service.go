package service

import (
	"net/http"

	"github.com/docugen/docugen-api/internal/config"
	"github.com/docugen/docugen-api/pkg/apperror"
	"github.com/docugen/docugen-api/pkg/utils"
)

// AuthService handles administrator authentication
type AuthService struct {
	cfg        config.AdminConfig
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AdminConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		cfg:        cfg,
		jwtManager: jwtManager,
	}
}

// LoginOutput represents the admin login output
type LoginOutput struct {
	AccessToken string
}

// Login checks the admin password against the configured hash and issues
// a signed token for the code administration endpoints
func (s *AuthService) Login(password string) (*LoginOutput, error) {
	if s.cfg.PasswordHash == "" {
		return nil, apperror.NewAppError(http.StatusServiceUnavailable, "Admin access is not configured")
	}
	if !utils.CheckPasswordHash(password, s.cfg.PasswordHash) {
		return nil, apperror.ErrInvalidAdminLogin
	}

	token, err := s.jwtManager.GenerateAdminToken()
	if err != nil {
		return nil, err
	}

	return &LoginOutput{AccessToken: token}, nil
}
