package repositories

import (
	"mynunny/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository manages client reviews of nunnies.
type RatingRepository interface {
	// Upsert inserts the rating or overwrites the existing row for the
	// same (client, nunny) pair.
	Upsert(rating *models.Rating) error

	// ListByNunny returns all ratings for a nunny, newest first, with the
	// rating client preloaded.
	ListByNunny(nunnyUserID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(rating *models.Rating) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "nunny_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(rating).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	return r.db.Preload("Client").
		Where("client_id = ? AND nunny_user_id = ?", rating.ClientID, rating.NunnyUserID).
		First(rating).Error
}

func (r *ratingRepository) ListByNunny(nunnyUserID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Preload("Client").
		Where("nunny_user_id = ?", nunnyUserID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return ratings, nil
}
