package device

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
)

// Service implements the device-capability passthroughs against the local
// filesystem. Capability failures are reported with a human-readable reason
// and never crash the process.
type Service struct {
	docDir     string
	inboxDir   string
	unlockPath string
	cloud      BlobStore
	log        *slog.Logger

	// Opener handles allow-listed external links. Defaults to logging the
	// url; a host shell can hook the platform browser here.
	Opener func(url string) error
	// Sharer hands a written file to the platform share sheet. When nil,
	// sharing degrades to "file saved".
	Sharer func(path string) error

	mu sync.Mutex
}

var _ portssvc.DeviceSvcFacade = (*Service)(nil)

func NewService(dataDir string, logger *slog.Logger) (*Service, error) {
	docDir := filepath.Join(dataDir, "documents")
	inboxDir := filepath.Join(dataDir, "inbox")
	for _, dir := range []string{docDir, inboxDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create device dir %s: %w", dir, err)
		}
	}
	cloud, err := NewLocalBlobStore(filepath.Join(dataDir, "cloud"))
	if err != nil {
		return nil, err
	}
	s := &Service{
		docDir:     docDir,
		inboxDir:   inboxDir,
		unlockPath: filepath.Join(dataDir, "unlock_state"),
		cloud:      cloud,
		log:        logger,
	}
	s.Opener = func(url string) error {
		logger.Info("Opening external url", slog.String("url", url))
		return nil
	}
	return s, nil
}

func (s *Service) SaveFile(ctx context.Context, fileName, mimeType, content string) (string, error) {
	if fileName == "" {
		fileName = "tijarati_backup.json"
	}
	// Base strips any directory components a hostile payload could carry.
	target := filepath.Join(s.docDir, filepath.Base(fileName))
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to save file: %w: %v", apperrors.ErrCapability, err)
	}
	s.log.Info("File saved", slog.String("path", target))
	return "File saved", nil
}

// PickFile returns the most recently modified JSON file from the inbox
// directory, standing in for the platform document picker.
func (s *Service) PickFile(ctx context.Context) (string, bool, error) {
	entries, err := os.ReadDir(s.inboxDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to read inbox: %w: %v", apperrors.ErrCapability, err)
	}

	var (
		newest     string
		newestTime time.Time
	)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = e.Name()
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return "", false, nil
	}

	b, err := os.ReadFile(filepath.Join(s.inboxDir, newest))
	if err != nil {
		return "", false, fmt.Errorf("failed to read picked file: %w: %v", apperrors.ErrCapability, err)
	}
	return string(b), true, nil
}

var slugChars = regexp.MustCompile(`[^a-z0-9]+`)

func (s *Service) ShareText(ctx context.Context, title, text string) (string, error) {
	if title == "" {
		title = "Receipt"
	}
	slug := strings.Trim(slugChars.ReplaceAllString(strings.ToLower(title), "_"), "_")
	if slug == "" {
		slug = "receipt"
	}
	fileName := fmt.Sprintf("%s_%d.txt", slug, time.Now().UnixMilli())
	target := filepath.Join(s.docDir, fileName)
	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write share file: %w: %v", apperrors.ErrCapability, err)
	}

	if s.Sharer == nil {
		return "File saved", nil
	}
	if err := s.Sharer(target); err != nil {
		return "", fmt.Errorf("sharing is not available on this device: %w", apperrors.ErrCapability)
	}
	return "Shared", nil
}

func (s *Service) OpenExternal(ctx context.Context, rawURL string) error {
	url := strings.TrimSpace(rawURL)
	safe := strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "mailto:") ||
		strings.HasPrefix(url, "tel:")
	if url == "" || !safe {
		s.log.Warn("Blocked external url", slog.String("url", url))
		return fmt.Errorf("blocked external url %q: %w", url, apperrors.ErrCapability)
	}
	return s.Opener(url)
}

func (s *Service) CloudBackup(ctx context.Context, userID, content string) error {
	return s.cloud.Upload(ctx, userID, content)
}

func (s *Service) CloudRestore(ctx context.Context, userID string) (string, error) {
	return s.cloud.Download(ctx, userID)
}

func (s *Service) UnlockState(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.unlockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read unlock state: %w: %v", apperrors.ErrCapability, err)
	}
	return strings.TrimSpace(string(b)) == "unlocked", nil
}

func (s *Service) SetUnlockState(ctx context.Context, unlocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := "locked"
	if unlocked {
		state = "unlocked"
	}
	if err := os.WriteFile(s.unlockPath, []byte(state), 0o600); err != nil {
		return fmt.Errorf("failed to persist unlock state: %w: %v", apperrors.ErrCapability, err)
	}
	return nil
}
