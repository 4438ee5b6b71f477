package services

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

// AuthSvcFacade validates admin credentials and issues JWTs.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
