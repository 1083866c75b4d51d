package repositories

import (
	"errors"

	"mynunny/internal/models"

	"gorm.io/gorm"
)

// RequestRepository manages client service requests.
type RequestRepository interface {
	Create(request *models.Request) error
	GetByID(id uint) (*models.Request, error)

	// ListActive returns active requests, newest first. When hideAssigned
	// is set, ASSIGNED rows are excluded from the feed.
	ListActive(hideAssigned bool) ([]models.Request, error)

	// ListByUser returns the requests owned by a user, newest first.
	ListByUser(userID uint) ([]models.Request, error)

	// UpdateStatus persists a status flip and returns the fresh row.
	UpdateStatus(id uint, status string) (*models.Request, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(request *models.Request) error {
	if err := r.db.Create(request).Error; err != nil {
		return ErrDatabaseOperation
	}
	return r.db.Preload("User").First(request, request.ID).Error
}

func (r *requestRepository) GetByID(id uint) (*models.Request, error) {
	var request models.Request
	if err := r.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &request, nil
}

func (r *requestRepository) ListActive(hideAssigned bool) ([]models.Request, error) {
	query := r.db.Preload("User").Where("is_active = ?", true)
	if hideAssigned {
		query = query.Where("status <> ?", models.RequestAssigned)
	}

	var requests []models.Request
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}

func (r *requestRepository) ListByUser(userID uint) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}

func (r *requestRepository) UpdateStatus(id uint, status string) (*models.Request, error) {
	if err := r.db.Model(&models.Request{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return r.GetByID(id)
}
