package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/kambeshwar/creditnote_backend/internal/platform/config"
	"github.com/kambeshwar/creditnote_backend/internal/utils"
)

// AuthService validates the single admin credential pair and issues JWTs.
// The console has exactly one operator account, configured via environment.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1

	var passwordOK bool
	switch {
	case s.cfg.AdminPasswordHash != "":
		passwordOK = utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash)
	case s.cfg.AdminPassword != "":
		passwordOK = subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPassword)) == 1
	}

	if !usernameOK || !passwordOK {
		logger.Warn("Failed admin login attempt")
		return nil, apperrors.NewAppError(401, "invalid credentials", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign JWT in service: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.JWTExpiryDuration),
	}, nil
}
