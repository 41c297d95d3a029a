// Package hexcolor validates and normalizes hexadecimal color tokens.
package hexcolor

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a token is not "#" followed by 3 or 6 hex digits.
var ErrInvalidColor = errors.New("invalid color")

var (
	tokenRe = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
	anyRe   = regexp.MustCompile(`#[0-9A-Fa-f]+`)
)

// IsValid reports whether s is a 3 or 6 digit hex color token.
func IsValid(s string) bool {
	return tokenRe.MatchString(s)
}

// Normalize returns the canonical (uppercase) form of s.
func Normalize(s string) (string, error) {
	if !IsValid(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return strings.ToUpper(s), nil
}

// Extract returns every distinct color token found in doc, normalized,
// in first-seen order. Runs of hex digits that are not 3 or 6 long are skipped.
func Extract(doc string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range anyRe.FindAllString(doc, -1) {
		if !IsValid(m) {
			continue
		}
		n := strings.ToUpper(m)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ToRGB returns the 8-bit channels of a token. 3-digit tokens are expanded.
func ToRGB(s string) (r, g, b uint8, err error) {
	c, err := parse(s)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// FromRGB formats channels as an uppercase 6-digit token.
func FromRGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Luminance returns the WCAG relative luminance of a token.
func Luminance(s string) (float64, error) {
	c, err := parse(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Contrast returns the WCAG contrast ratio between two tokens, from 1 to 21.
func Contrast(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// Distance returns the CIE Lab distance between two tokens.
func Distance(a, b string) (float64, error) {
	ca, err := parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := parse(b)
	if err != nil {
		return 0, err
	}
	return ca.DistanceLab(cb), nil
}

// Random returns a random uppercase 6-digit token. A nil rng uses the global source.
func Random(rng *rand.Rand) string {
	var n int
	if rng == nil {
		n = rand.IntN(1 << 24)
	} else {
		n = rng.IntN(1 << 24)
	}
	return fmt.Sprintf("#%06X", n)
}

func parse(s string) (colorful.Color, error) {
	if !IsValid(s) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}
