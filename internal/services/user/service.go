// Package user handles profile edits for the authenticated user.
package user

import (
	"context"
	"errors"
	"io"
	"log"

	"mynunny/internal/models"
	"mynunny/internal/repositories"
	"mynunny/internal/services/uploader"
)

var ErrPictureUpload = errors.New("unable to update profile picture")

// UpdateProfileInput carries the optional multipart fields of a profile
// edit. Nil/empty fields are left untouched.
type UpdateProfileInput struct {
	FullName             string
	LocationCounty       string
	LocationConstituency string
	NewServiceTerm       string
	Picture              io.Reader
	PictureURL           string
}

type Service interface {
	// UpdateProfile applies the edit and returns the refreshed user.
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error)
}

type service struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.NunnyProfileRepository
	uploads     uploader.Uploader
}

func NewService(
	userRepo repositories.UserRepository,
	profileRepo repositories.NunnyProfileRepository,
	uploads uploader.Uploader,
) Service {
	return &service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uploads:     uploads,
	}
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		u.FullName = input.FullName
	}
	if input.LocationCounty != "" {
		u.County = input.LocationCounty
	}
	if input.LocationConstituency != "" {
		u.Constituency = input.LocationConstituency
	}

	if input.Picture != nil {
		if s.uploads == nil {
			return nil, ErrPictureUpload
		}
		url, err := s.uploads.UploadProfilePicture(ctx, input.Picture)
		if err != nil {
			// Degrades to a picture-only failure; the rest of the edit is
			// not applied either, the caller is told to retry.
			return nil, ErrPictureUpload
		}
		u.ProfilePictureURL = &url
	} else if input.PictureURL != "" {
		url := input.PictureURL
		u.ProfilePictureURL = &url
	}

	if err := s.userRepo.Update(u); err != nil {
		return nil, err
	}

	if input.NewServiceTerm != "" && u.Role == models.RoleNunny {
		if err := s.profileRepo.AppendService(userID, input.NewServiceTerm); err != nil {
			log.Printf("failed to append service term for user %d: %v", userID, err)
		}
	}

	return u, nil
}
