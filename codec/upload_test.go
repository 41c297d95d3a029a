package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logotint/model"
)

func TestCheckUpload(t *testing.T) {
	assert.NoError(t, CheckUpload("scheme.json", "", 10))
	assert.NoError(t, CheckUpload("upload", "application/json", 10))
	assert.NoError(t, CheckUpload("upload", "application/json; charset=utf-8", 10))
	assert.NoError(t, CheckUpload("scheme.json", "text/plain", MaxUploadSize))

	assert.ErrorIs(t, CheckUpload("scheme.txt", "text/plain", 10), ErrUnsupportedMediaType)
	assert.ErrorIs(t, CheckUpload("scheme.JSON", "", 10), ErrUnsupportedMediaType)
	assert.ErrorIs(t, CheckUpload("scheme.json", "", MaxUploadSize+1), ErrFileTooLarge)
}

func TestCheckUploadMediaTypeComesFirst(t *testing.T) {
	err := CheckUpload("logo.svg", "image/svg+xml", MaxUploadSize*4)
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

// failReader fails the test if anything reads from it.
type failReader struct{ t *testing.T }

func (f failReader) Read([]byte) (int, error) {
	f.t.Fatal("upload was read before the size check")
	return 0, nil
}

func TestImportRejectsLargeFileBeforeReading(t *testing.T) {
	_, err := Import(failReader{t}, "big.json", "application/json", 2<<20)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestImportEnforcesLimitWhenSizeUnknown(t *testing.T) {
	big := `{"name":"` + strings.Repeat("a", MaxUploadSize) + `","colors":{}}`
	_, err := Import(strings.NewReader(big), "big.json", "", -1)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestImportDefaultsNameFromFilename(t *testing.T) {
	imp, err := Import(strings.NewReader(`{"colors":{"primary":"#123"}}`), "my-brand.json", "", -1)
	require.NoError(t, err)
	assert.Equal(t, "my-brand", imp.Name)
	assert.Equal(t, "#123", imp.Colors.Primary)
}

func TestImportIsAllOrNothing(t *testing.T) {
	imp, err := Import(strings.NewReader(`{"colors":{"primary":"#123","accent":"nope"}}`), "x.json", "", -1)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.True(t, imp.Colors.IsEmpty())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	data, err := Marshal(Serialize(model.DefaultPalette(), "saved", time.Now()))
	require.NoError(t, err)

	path := filepath.Join(dir, "saved.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	imp, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPalette(), imp.Colors)

	txt := filepath.Join(dir, "saved.txt")
	require.NoError(t, os.WriteFile(txt, data, 0o644))
	_, err = ReadFile(txt)
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	big := filepath.Join(dir, "big.json")
	require.NoError(t, os.WriteFile(big, bytes.Repeat([]byte(" "), MaxUploadSize+1), 0o644))
	_, err = ReadFile(big)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
