package repositories

import (
	"errors"
	"time"

	"mynunny/internal/models"

	"gorm.io/gorm"
)

// OTPRepository manages transient email-verification codes.
type OTPRepository interface {
	// Create stores a freshly generated code.
	Create(otp *models.OTP) error

	// FindValid returns the unexpired row matching email and code.
	FindValid(email, code string) (*models.OTP, error)

	// DeleteExpired removes codes past their expiry.
	DeleteExpired() error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(otp *models.OTP) error {
	if err := r.db.Create(otp).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *otpRepository) FindValid(email, code string) (*models.OTP, error) {
	var otp models.OTP
	err := r.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &otp, nil
}

func (r *otpRepository) DeleteExpired() error {
	return r.db.Where("expires_at <= ?", time.Now()).Delete(&models.OTP{}).Error
}
