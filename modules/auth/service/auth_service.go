package service

import (
	"context"

	"eventmap-api/core/errors"
	"eventmap-api/core/logger"
	"eventmap-api/core/utils"
	"eventmap-api/modules/auth/dto"
	"eventmap-api/modules/auth/repository"
)

// invalidCredentialsMessage is shared by the missing-admin and wrong-password
// paths so the response never reveals which check failed.
const invalidCredentialsMessage = "invalid credentials"

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type AuthService struct {
	repo repository.AuthRepositoryInterface
}

func NewAuthService(repo repository.AuthRepositoryInterface) *AuthService {
	return &AuthService{repo: repo}
}

// Login verifies the credentials and issues a signed admin token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetAdminByEmail:Error:", err)
		return "", errors.NewAppError(errors.ErrDatabase, "failed to look up admin", err)
	}

	if admin == nil || !utils.ComparePassword(admin.Password, req.Password) {
		return "", errors.NewAppError(errors.ErrUnauthorized, invalidCredentialsMessage, nil)
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error:", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return token, nil
}
