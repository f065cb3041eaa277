package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var (
	// ErrNotAnImage is returned when an upload can't be decoded as an image.
	ErrNotAnImage = errors.New("payload is not a valid image")
	// ErrTooLarge is returned when an upload exceeds the configured size limit.
	ErrTooLarge = errors.New("image exceeds maximum upload size")
)

// ImageStore persists uploaded recipe images on disk. Every stored file
// gets a freshly generated UUID name with the upload's original extension,
// so a stored path never collides and never leaks the client filename.
type ImageStore struct {
	dir      string
	maxBytes int64
}

// NewImageStore creates the storage directory if needed.
func NewImageStore(dir string, maxBytes int64) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &ImageStore{
		dir:      dir,
		maxBytes: maxBytes,
	}, nil
}

// Dir returns the storage directory.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save validates the payload by decoding it and writes it to disk.
// It returns the stored filename.
func (s *ImageStore) Save(originalName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image payload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || len(ext) > 10 {
		ext = ".jpg"
	}
	name := uuid.New().String() + ext

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil { //nolint:gosec
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return name, nil
}

// Remove deletes a stored image. Missing files are not an error.
func (s *ImageStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}
