package codec

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned for export formats other than svg and json.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an export target.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

// ParseFormat validates an export format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG, FormatJSON:
		return Format(s), nil
	case "":
		return "", fmt.Errorf("%w: no format given", ErrUnsupportedFormat)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DefaultLogoFilename is the download name of a recolored logo.
func DefaultLogoFilename(now time.Time) string {
	return fmt.Sprintf("logo-%d.svg", now.UnixMilli())
}

// DefaultSchemeFilename is the download name of an exported envelope.
func DefaultSchemeFilename(now time.Time) string {
	return fmt.Sprintf("color-scheme-%d.json", now.UnixMilli())
}

// DefaultFilename returns the download name for format.
func DefaultFilename(format Format, now time.Time) string {
	if format == FormatJSON {
		return DefaultSchemeFilename(now)
	}
	return DefaultLogoFilename(now)
}

// SchemeName derives an envelope name from its file name.
func SchemeName(filename string) string {
	return strings.TrimSuffix(filename, ".json")
}
