package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// cloudinaryStorage implements StorageService on top of Cloudinary.
// Uploaded media lands under per-bucket folders (savora/videos and the
// like); the public ID Cloudinary assigns is the permanent handle the
// rest of the system stores.
type cloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewStorageService wraps a Cloudinary client as a StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &cloudinaryStorage{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}

// UploadFile pushes a staged local file into destFolder and returns the
// assigned public ID.
func (s *cloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("storage: upload failed: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: upload returned no public ID")
	}
	return result.PublicID, nil
}

// DeleteFile removes a stored asset by its public ID.
func (s *cloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: delete of %s failed: %w", publicID, err)
	}
	return nil
}

func (s *cloudinaryStorage) assetFor(resourceType, publicID string) (*asset.Asset, error) {
	switch resourceType {
	case "image":
		return s.cld.Image(publicID)
	case "video":
		return s.cld.Video(publicID)
	default:
		return s.cld.Media(publicID)
	}
}

// GetDownloadURL builds the public delivery URL for an asset. The
// expires argument is ignored for public assets.
func (s *cloudinaryStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	a, err := s.assetFor(resourceType, publicID)
	if err != nil {
		return "", fmt.Errorf("storage: could not resolve asset %s: %w", publicID, err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("storage: could not build URL for %s: %w", publicID, err)
	}
	return url, nil
}

// GetSecureDownloadURL builds a signed, expiring URL for an
// authenticated asset. The signature is SHA-1 over the expiry and
// public ID concatenated with the API secret, in the order Cloudinary
// verifies them.
func (s *cloudinaryStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	payload := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := sha1Hex(payload)
	url := fmt.Sprintf("https://res.cloudinary.com/%s/%s/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, resourceType, signature, expiresAt, publicID)
	return url, nil
}

func sha1Hex(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
