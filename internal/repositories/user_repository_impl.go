package repositories

import (
	"context"
	"errors"
	"log"

	"mynunny/internal/models"
	"mynunny/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	if r.cache != nil {
		if user, err := r.cache.GetUser(context.Background(), id); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(context.Background(), &user); err != nil {
			log.Printf("failed to cache user %d: %v", user.ID, err)
		}
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) GetByIdentifier(email, username string) (*models.User, error) {
	query := r.db.Preload("NunnyProfile").Preload("ClientProfile")
	if email != "" {
		query = query.Where("email = ?", email)
	} else {
		query = query.Where("username = ?", username)
	}

	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByIDNumber(idNumber string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id_number = ?", idNumber).Count(&count).Error; err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}

// CreateWithProfile runs the phase-2 commit: user row, role profile and OTP
// deletion either all succeed or none do.
func (r *userRepository) CreateWithProfile(user *models.User, nunny *models.NunnyProfile, client *models.ClientProfile, otpID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if nunny != nil {
			nunny.UserID = user.ID
			if err := tx.Create(nunny).Error; err != nil {
				return err
			}
		}
		if client != nil {
			client.UserID = user.ID
			if err := tx.Create(client).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.OTP{}, otpID).Error
	})
	return translateUniqueViolation(err)
}

// editableUserColumns are the columns a profile edit may write. The
// password column is deliberately absent: a user served from the cache
// comes back without its hash (the JSON tag strips it), so a full-row
// save here would blank the stored credential. Only the password-reset
// flow writes that column.
func editableUserColumns(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"full_name":           user.FullName,
		"phone":               user.Phone,
		"county":              user.County,
		"constituency":        user.Constituency,
		"profile_picture_url": user.ProfilePictureURL,
	}
}

func (r *userRepository) Update(user *models.User) error {
	err := r.db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(editableUserColumns(user)).Error
	if err != nil {
		return translateUniqueViolation(err)
	}
	if r.cache != nil {
		if err := r.cache.InvalidateUser(context.Background(), user.ID); err != nil {
			log.Printf("failed to invalidate user cache %d: %v", user.ID, err)
		}
	}
	return nil
}
