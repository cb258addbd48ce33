// Package storage writes rendered images to the local filesystem. The HTTP
// service keeps nothing on disk; only the command line renderer saves files.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a directory that rendered images are saved into. Existing files are
// never overwritten; colliding names get a numeric suffix.
type Dir struct {
	basePath string
}

// NewDir ensures the directory exists and returns a store rooted at it.
func NewDir(basePath string) (*Dir, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure directory: %w", err)
	}
	return &Dir{basePath: basePath}, nil
}

// Save writes data under the given file name and returns the path actually
// written. Names are restricted to a single path element so a derived name
// can never escape the directory.
func (d *Dir) Save(name string, data []byte) (string, error) {
	if d == nil {
		return "", errors.New("storage: no directory configured")
	}
	clean, err := sanitizeName(name)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(clean)
	stem := strings.TrimSuffix(clean, ext)
	path := filepath.Join(d.basePath, clean)
	for i := 2; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			break
		}
		path = filepath.Join(d.basePath, fmt.Sprintf("%s-%d%s", stem, i, ext))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return path, nil
}

func sanitizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("storage: file name is required")
	}
	name = strings.ReplaceAll(name, "\\", "/")
	if base := filepath.Base(filepath.Clean(name)); base != "." && base != ".." && base != "/" {
		name = base
	} else {
		return "", errors.New("storage: invalid file name")
	}
	return name, nil
}
