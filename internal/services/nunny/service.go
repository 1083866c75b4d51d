// Package nunny governs provider profiles and their status lifecycle:
// PENDING -> APPROVED | REJECTED, APPROVED <-> SUSPENDED. REJECTED is
// terminal.
package nunny

import (
	"context"
	"errors"
	"log"

	"mynunny/internal/config"
	"mynunny/internal/models"
	"mynunny/internal/repositories"
	"mynunny/internal/repositories/cache"
	"mynunny/internal/services/mailer"
)

var (
	ErrNotFound     = repositories.ErrProfileNotFound
	ErrNotPending   = errors.New("nunny is not pending review")
	ErrNotApproved  = errors.New("nunny is not approved")
	ErrNotSuspended = errors.New("nunny is not suspended")
)

// Service exposes the admin transitions and the listings.
type Service interface {
	Approve(id uint) (*models.NunnyProfile, error)
	Reject(id uint) (*models.NunnyProfile, error)
	Suspend(id uint) (*models.NunnyProfile, error)
	Unsuspend(id uint) (*models.NunnyProfile, error)

	// ListAll returns every profile for the admin dashboard.
	ListAll() ([]models.NunnyProfile, error)

	// ListApproved returns the public feed, served through the cache.
	ListApproved() ([]models.NunnyProfile, error)
}

type service struct {
	profileRepo repositories.NunnyProfileRepository
	cache       *cache.CacheService
	mailer      mailer.Mailer
	cfg         *config.Config
}

func NewService(
	profileRepo repositories.NunnyProfileRepository,
	cacheSvc *cache.CacheService,
	m mailer.Mailer,
	cfg *config.Config,
) Service {
	return &service{
		profileRepo: profileRepo,
		cache:       cacheSvc,
		mailer:      m,
		cfg:         cfg,
	}
}

func (s *service) Approve(id uint) (*models.NunnyProfile, error) {
	return s.transition(id, models.StatusApproved, "APPROVED", func(current string) error {
		if current != models.StatusPending {
			return ErrNotPending
		}
		return nil
	})
}

func (s *service) Reject(id uint) (*models.NunnyProfile, error) {
	return s.transition(id, models.StatusRejected, "REJECTED", func(current string) error {
		if current != models.StatusPending {
			return ErrNotPending
		}
		return nil
	})
}

func (s *service) Suspend(id uint) (*models.NunnyProfile, error) {
	return s.transition(id, models.StatusSuspended, "SUSPENDED", func(current string) error {
		if current != models.StatusApproved {
			return ErrNotApproved
		}
		return nil
	})
}

func (s *service) Unsuspend(id uint) (*models.NunnyProfile, error) {
	return s.transition(id, models.StatusApproved, "REINSTATED", func(current string) error {
		if current != models.StatusSuspended {
			return ErrNotSuspended
		}
		return nil
	})
}

// transition re-checks the current status, persists the change, then
// best-effort notifies the owner. Notification failure never rolls back
// the persisted change.
func (s *service) transition(id uint, next, notification string, allowed func(current string) error) (*models.NunnyProfile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := allowed(profile.Status); err != nil {
		return nil, err
	}

	updated, err := s.profileRepo.UpdateStatus(id, next)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateNunnyListing(context.Background()); err != nil {
			log.Printf("failed to invalidate nunny listing cache: %v", err)
		}
	}

	if updated.User != nil && updated.User.Email != "" {
		email, fullName := updated.User.Email, updated.User.FullName
		mailer.SendBounded(s.cfg.EmailTimeout, "status email", func(ctx context.Context) error {
			return s.mailer.SendStatusChange(ctx, email, fullName, notification)
		})
	}

	return updated, nil
}

func (s *service) ListAll() ([]models.NunnyProfile, error) {
	return s.profileRepo.ListAll()
}

func (s *service) ListApproved() ([]models.NunnyProfile, error) {
	if s.cache != nil {
		if profiles, found, err := s.cache.GetNunnyListing(context.Background()); err == nil && found {
			return profiles, nil
		}
	}

	profiles, err := s.profileRepo.ListApproved()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheNunnyListing(context.Background(), profiles); err != nil {
			log.Printf("failed to cache nunny listing: %v", err)
		}
	}
	return profiles, nil
}
