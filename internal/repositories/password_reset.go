package repositories

import (
	"errors"
	"time"

	"mynunny/internal/models"

	"gorm.io/gorm"
)

// PasswordResetRepository manages hashed reset tokens.
type PasswordResetRepository interface {
	// Create stores a new token hash.
	Create(token *models.PasswordResetToken) error

	// LatestValid returns the most recent unused, unexpired token for a user.
	LatestValid(userID uint) (*models.PasswordResetToken, error)

	// ConsumeAndResetPassword updates the user's password hash, marks the
	// token used and purges stale tokens as one atomic unit.
	ConsumeAndResetPassword(userID, tokenID uint, hashedPassword string) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(token *models.PasswordResetToken) error {
	if err := r.db.Create(token).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *passwordResetRepository) LatestValid(userID uint) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := r.db.Where("user_id = ? AND used = ? AND expires_at > ?", userID, false, time.Now()).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &token, nil
}

func (r *passwordResetRepository) ConsumeAndResetPassword(userID, tokenID uint, hashedPassword string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("password", hashedPassword).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PasswordResetToken{}).Where("id = ?", tokenID).
			Update("used", true).Error; err != nil {
			return err
		}
		// Purge stale unused tokens that already expired.
		return tx.Where("user_id = ? AND id <> ? AND used = ? AND expires_at <= ?",
			userID, tokenID, false, time.Now()).
			Delete(&models.PasswordResetToken{}).Error
	})
}
