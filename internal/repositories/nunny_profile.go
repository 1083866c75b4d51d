package repositories

import (
	"errors"

	"mynunny/internal/models"

	"gorm.io/gorm"
)

// NunnyProfileRepository manages provider profiles and their status rows.
type NunnyProfileRepository interface {
	// GetByID retrieves a profile with its owning user preloaded.
	GetByID(id uint) (*models.NunnyProfile, error)

	// GetByUserID retrieves the profile owned by a user.
	GetByUserID(userID uint) (*models.NunnyProfile, error)

	// UpdateStatus persists a status transition and returns the fresh row.
	UpdateStatus(id uint, status string) (*models.NunnyProfile, error)

	// ListAll returns every profile, newest first (admin view).
	ListAll() ([]models.NunnyProfile, error)

	// ListApproved returns APPROVED profiles, newest first (public view).
	ListApproved() ([]models.NunnyProfile, error)

	// AppendService adds a service term to the owner's offered list.
	AppendService(userID uint, term string) error
}

type nunnyProfileRepository struct {
	db *gorm.DB
}

func NewNunnyProfileRepository(db *gorm.DB) NunnyProfileRepository {
	return &nunnyProfileRepository{db: db}
}

func (r *nunnyProfileRepository) GetByID(id uint) (*models.NunnyProfile, error) {
	var profile models.NunnyProfile
	if err := r.db.Preload("User").First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &profile, nil
}

func (r *nunnyProfileRepository) GetByUserID(userID uint) (*models.NunnyProfile, error) {
	var profile models.NunnyProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &profile, nil
}

func (r *nunnyProfileRepository) UpdateStatus(id uint, status string) (*models.NunnyProfile, error) {
	if err := r.db.Model(&models.NunnyProfile{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return r.GetByID(id)
}

func (r *nunnyProfileRepository) ListAll() ([]models.NunnyProfile, error) {
	var profiles []models.NunnyProfile
	if err := r.db.Preload("User").Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return profiles, nil
}

func (r *nunnyProfileRepository) ListApproved() ([]models.NunnyProfile, error) {
	var profiles []models.NunnyProfile
	err := r.db.Preload("User").
		Where("status = ?", models.StatusApproved).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return profiles, nil
}

func (r *nunnyProfileRepository) AppendService(userID uint, term string) error {
	profile, err := r.GetByUserID(userID)
	if err != nil {
		return err
	}
	for _, s := range profile.Services {
		if s == term {
			return nil
		}
	}
	profile.Services = append(profile.Services, term)
	if err := r.db.Model(&models.NunnyProfile{}).Where("id = ?", profile.ID).
		Update("services", profile.Services).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
