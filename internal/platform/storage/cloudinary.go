package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
)

const avatarFolder = "contacts_app/avatars"

// CloudinaryStorage uploads avatar images to Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a Cloudinary-backed avatar storage.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

var _ portssvc.AvatarStorage = (*CloudinaryStorage)(nil)

// UploadAvatar stores the uploaded file under a public id derived from the
// user id, so a re-upload overwrites the previous avatar instead of piling
// up orphans.
func (s *CloudinaryStorage) UploadAvatar(ctx context.Context, fileHeader *multipart.FileHeader, userID string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    avatarFolder,
		PublicID:  userID,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to Cloudinary: %w", err)
	}

	return result.SecureURL, nil
}
