package photos

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Store keeps project display photos on local disk under a single directory.
// Stored names are uuid-based so uploads never collide or traverse paths.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Filename picks a fresh stored name for an upload, validating the extension
// against the image allow-list.
func (s *Store) Filename(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	return uuid.New().String() + ext, nil
}

// Path resolves a stored name to its on-disk location.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Sweep deletes files in the upload dir that no project references. It
// returns the number of files removed.
func (s *Store) Sweep(ctx context.Context, referenced []string) (int, error) {
	keep := make(map[string]bool, len(referenced))
	for _, p := range referenced {
		keep[filepath.Base(p)] = true
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if e.IsDir() || keep[e.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}
