package storage

import (
	"context"
	"time"
)

// StorageService covers the media store: uploads from staged local
// files, deletion by public ID, and URL construction. Binary blobs pass
// through unmodified; the store serves whatever the device produced.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
