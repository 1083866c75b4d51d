// Package rating handles client reviews of approved nunnies.
package rating

import (
	"errors"
	"math"

	"mynunny/internal/models"
	"mynunny/internal/repositories"
)

var (
	ErrNunnyNotFound    = errors.New("nunny not found")
	ErrNunnyNotApproved = errors.New("can only rate approved nunnies")
)

// Summary is the read-side aggregate for a nunny's ratings. The average is
// computed on read, never stored.
type Summary struct {
	Ratings       []models.Rating `json:"ratings"`
	AverageRating float64         `json:"averageRating"`
	TotalRatings  int             `json:"totalRatings"`
}

type Service interface {
	// Submit upserts the caller's rating of a nunny. The target must be a
	// NUNNY user with an APPROVED profile.
	Submit(clientID uint, input *models.RatingInput) (*models.Rating, error)

	// SummaryFor returns all ratings for a nunny with the running average.
	SummaryFor(nunnyUserID uint) (*Summary, error)
}

type service struct {
	ratingRepo  repositories.RatingRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.NunnyProfileRepository
}

func NewService(
	ratingRepo repositories.RatingRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.NunnyProfileRepository,
) Service {
	return &service{
		ratingRepo:  ratingRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *service) Submit(clientID uint, input *models.RatingInput) (*models.Rating, error) {
	target, err := s.userRepo.GetByID(input.NunnyUserID)
	if err != nil || target.Role != models.RoleNunny {
		return nil, ErrNunnyNotFound
	}

	profile, err := s.profileRepo.GetByUserID(target.ID)
	if err != nil || profile.Status != models.StatusApproved {
		return nil, ErrNunnyNotApproved
	}

	rating := &models.Rating{
		ClientID:    clientID,
		NunnyUserID: input.NunnyUserID,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *service) SummaryFor(nunnyUserID uint) (*Summary, error) {
	ratings, err := s.ratingRepo.ListByNunny(nunnyUserID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Ratings:       ratings,
		AverageRating: Average(ratings),
		TotalRatings:  len(ratings),
	}, nil
}

// Average is the arithmetic mean rounded to one decimal, 0 when empty.
func Average(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}
