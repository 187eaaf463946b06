package avatars

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var allowedExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true,
}

// Store writes avatar images to disk under {userID}/avatar.{ext} and hands
// back the public URL path they are served from. Writes are upserts: a new
// upload replaces whatever was there.
type Store struct {
	dir     string
	baseURL string
}

func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir returns the filesystem root the store writes under.
func (s *Store) Dir() string { return s.dir }

// Save streams the uploaded file into place and returns its public URL.
func (s *Store) Save(userID int, ext string, r io.Reader) (string, error) {
	ext = strings.ToLower(ext)
	if !allowedExts[ext] {
		return "", fmt.Errorf("unsupported avatar format %q", ext)
	}
	userDir := filepath.Join(s.dir, fmt.Sprintf("%d", userID))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", err
	}
	// Drop stale avatars with a different extension so the latest upload is
	// the only file present.
	if stale, err := filepath.Glob(filepath.Join(userDir, "avatar.*")); err == nil {
		for _, f := range stale {
			_ = os.Remove(f)
		}
	}
	path := filepath.Join(userDir, "avatar"+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/avatar%s", s.baseURL, userID, ext), nil
}
