package device

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tijarati/tijarati_host/internal/apperrors"
)

// BlobStore is the opaque cloud backup seam: one snapshot blob per user
// identity, last write wins.
type BlobStore interface {
	Upload(ctx context.Context, userID, content string) error
	Download(ctx context.Context, userID string) (string, error)
}

// LocalBlobStore keeps backup blobs in a local directory, one file per user.
type LocalBlobStore struct {
	dir string
}

var _ BlobStore = (*LocalBlobStore)(nil)

func NewLocalBlobStore(dir string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob store dir: %w", err)
	}
	return &LocalBlobStore{dir: dir}, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func (s *LocalBlobStore) blobPath(userID string) string {
	key := unsafeKeyChars.ReplaceAllString(userID, "_")
	if key == "" {
		key = "anonymous"
	}
	return filepath.Join(s.dir, key+".json")
}

func (s *LocalBlobStore) Upload(ctx context.Context, userID, content string) error {
	if err := os.WriteFile(s.blobPath(userID), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to upload backup: %w", err)
	}
	return nil
}

func (s *LocalBlobStore) Download(ctx context.Context, userID string) (string, error) {
	b, err := os.ReadFile(s.blobPath(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no backup for user: %w", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to download backup: %w", err)
	}
	return string(b), nil
}
