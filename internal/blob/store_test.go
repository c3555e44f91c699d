package blob

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, pngHeader)
	return b
}

func TestStoreSave(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "school.png", pngBytes(2048))
	name, err := store.Save("image", fh)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^image-\d+-\d+\.png$`), name)
	assert.True(t, store.Exists(name))

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Len(t, data, 2048)
}

func TestStoreSaveKeepsOriginalExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "photo.jpeg", append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, 100)...))
	name, err := store.Save("image", fh)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^image-\d+-\d+\.jpeg$`), name)
}

func TestStoreSaveRejectsOversized(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "big.png", pngBytes(MaxImageSize+1))
	_, err = store.Save("image", fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not touch disk")
}

func TestStoreSaveRejectsNonImage(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "notes.txt", []byte("plain text, not an image"))
	_, err = store.Save("image", fh)
	assert.ErrorIs(t, err, ErrNotImage)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreRemoveMissingIsNoop(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove("image-123-456.png"))
}

func TestStoreRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "school.png", pngBytes(64))
	name, err := store.Save("image", fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	assert.False(t, store.Exists(name))
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "schoolImages")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
