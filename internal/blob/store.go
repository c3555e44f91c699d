package blob

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxImageSize caps uploads at 5 MiB, same as the deployed service.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrFileTooLarge = errors.New("file too large")
	ErrNotImage     = errors.New("only image files are allowed")
)

// Store keeps uploaded image bytes on local disk under a single directory.
// Filenames are opaque generated strings; there is no content hashing, no
// dedup, and no locking — distinct generated names are what keeps concurrent
// writes apart.
type Store struct {
	dir string
}

// NewStore creates the directory if absent and returns the store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory, for static file mounts.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated name
// <field>-<epoch ms>-<random 0..1e9><original ext> and returns that name.
// The MIME type is sniffed from the first 512 bytes and must be image/*;
// oversized and non-image files are rejected before anything touches disk.
func (s *Store) Save(field string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxImageSize {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrNotImage
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	name := s.generateName(field, filepath.Ext(fh.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("write blob: %w", err)
	}

	return name, nil
}

// Exists reports whether a blob of that name is on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Remove deletes a blob. A missing file is a silent no-op: deletion may race
// another delete, or the owning insert may have failed after cleanup.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.path(name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// generateName combines wall-clock time with a random integer. Best-effort
// uniqueness: on the off chance the name is taken, reroll the random part
// once and take whatever comes out.
func (s *Store) generateName(field, ext string) string {
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	if s.Exists(name) {
		name = fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	}
	return name
}

// path confines name to the store directory; uploads never carry separators
// but the static mount shares this directory, so keep lookups flat.
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
