package repository

import (
	"context"
	"database/sql"
	"errors"

	"eventmap-api/core/database"
	"eventmap-api/core/logger"
	"eventmap-api/modules/auth/entity"
)

type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

type AuthRepositoryInterface interface {
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	SeedAdmin(ctx context.Context, admin *entity.Admin) error
}

// GetAdminByEmail returns (nil, nil) when no admin matches; the service
// folds that case into the generic credentials failure.
func (r *AuthRepository) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password, created_at
		FROM admins
		WHERE email = $1
	`
	var admin entity.Admin
	err := r.DB.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("AuthRepository:GetAdminByEmail:Error:", err)
		return nil, err
	}
	return &admin, nil
}

// SeedAdmin upserts the configured admin at startup, keyed by email.
func (r *AuthRepository) SeedAdmin(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password
	`
	if err := r.DB.ExecContext(ctx, query, admin.ID, admin.Email, admin.Password); err != nil {
		logger.Error("AuthRepository:SeedAdmin:Error:", err)
		return err
	}
	return nil
}
