// Package uploader stores profile pictures in Cloudinary.
package uploader

import (
	"context"
	"errors"
	"io"

	"mynunny/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// MaxImageSize caps profile pictures at 5MB, enforced before upload.
const MaxImageSize = 5 * 1024 * 1024

// profilePictureFolder is the object-store folder convention.
const profilePictureFolder = "profile_pictures"

var ErrUploadFailed = errors.New("image upload failed")

// Uploader stores an image and returns its public URL.
type Uploader interface {
	UploadProfilePicture(ctx context.Context, file io.Reader) (string, error)
}

type cloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg *config.Config) (Uploader, error) {
	client, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, err
	}
	return &cloudinaryUploader{client: client}, nil
}

func (u *cloudinaryUploader) UploadProfilePicture(ctx context.Context, file io.Reader) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   profilePictureFolder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", ErrUploadFailed
	}
	return resp.SecureURL, nil
}
