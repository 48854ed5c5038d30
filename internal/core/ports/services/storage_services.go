package services

import (
	"context"
	"mime/multipart"
)

// AvatarStorage uploads avatar images to external object storage and
// returns a public URL.
type AvatarStorage interface {
	// UploadAvatar stores the uploaded file under a deterministic id derived
	// from userID so re-uploads overwrite the previous avatar.
	UploadAvatar(ctx context.Context, fileHeader *multipart.FileHeader, userID string) (string, error)
}
