package codec

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the largest envelope accepted for import.
const MaxUploadSize = 1 << 20

var (
	// ErrUnsupportedMediaType is returned for uploads that are not JSON.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrFileTooLarge is returned for uploads above MaxUploadSize.
	ErrFileTooLarge = errors.New("file too large")
)

// CheckUpload gates an upload on its name, media type and size before any of
// it is read. A negative size means unknown and is enforced while reading.
func CheckUpload(filename, mediaType string, size int64) error {
	if !isJSON(filename, mediaType) {
		return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mediaType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, size, MaxUploadSize)
	}
	return nil
}

func isJSON(filename, mediaType string) bool {
	if strings.HasSuffix(filename, ".json") {
		return true
	}
	mt, _, err := mime.ParseMediaType(mediaType)
	return err == nil && mt == "application/json"
}

// Import checks an upload and parses it.
func Import(r io.Reader, filename, mediaType string, size int64) (Imported, error) {
	if err := CheckUpload(filename, mediaType, size); err != nil {
		return Imported{}, err
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return Imported{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return Imported{}, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, MaxUploadSize)
	}

	imp, err := Parse(data)
	if err != nil {
		return Imported{}, err
	}
	if imp.Name == "" {
		imp.Name = SchemeName(filepath.Base(filename))
	}
	return imp, nil
}

// ReadFile imports an envelope from disk.
func ReadFile(path string) (Imported, error) {
	f, err := os.Open(path)
	if err != nil {
		return Imported{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Imported{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Import(f, filepath.Base(path), "", info.Size())
}
