package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/till_reconciliation_app/internal/models"
	"github.com/SscSPs/till_reconciliation_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	BaseRepository
}

func newGormUserRepository(db *gorm.DB) portsrepo.UserRepositoryFacade {
	return &GormUserRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*GormUserRepository)(nil)

func (r *GormUserRepository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m models.User
	if err := r.DB.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		return nil, notFoundOr(err, "failed to find user")
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *GormUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *GormUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *GormUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "auth_provider = ? AND provider_user_id = ?", string(provider), providerUserID)
}

func (r *GormUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	result := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"password_hash":   passwordHash,
			"last_updated_at": now,
			"last_updated_by": userID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes the user's submissions and then the user in one transaction.
func (r *GormUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Submission{}).Error; err != nil {
			return fmt.Errorf("failed to delete submissions of user %s: %w", userID, err)
		}
		result := tx.Where("user_id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete user %s: %w", userID, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
