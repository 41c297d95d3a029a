// Package codec reads and writes the JSON envelope a palette is exported in.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"logotint/hexcolor"
	"logotint/model"
)

// Version is written into every exported envelope.
const Version = "1.0.0"

// TimestampLayout is RFC 3339 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrMalformedEnvelope is returned when a document is not a usable envelope.
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrInvalidColor is returned when an envelope carries an invalid color.
	// It wraps hexcolor.ErrInvalidColor.
	ErrInvalidColor = fmt.Errorf("envelope: %w", hexcolor.ErrInvalidColor)
)

var supportedVersions = mustConstraint("1.x")

func mustConstraint(c string) *semver.Constraints {
	out, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return out
}

// Envelope is the exported form of a palette.
type Envelope struct {
	Name      string        `json:"name"`
	Colors    model.Palette `json:"colors"`
	Timestamp string        `json:"timestamp"`
	Version   string        `json:"version"`
}

// Imported is a parsed envelope. Colors may be partial; every slot that was
// absent is listed in Warnings.
type Imported struct {
	Name      string        `json:"name"`
	Colors    model.Palette `json:"colors"`
	Warnings  []string      `json:"warnings"`
	Timestamp time.Time     `json:"timestamp,omitzero"`
	Version   string        `json:"version,omitempty"`
}

// Serialize wraps p in an envelope stamped with now.
func Serialize(p model.Palette, name string, now time.Time) Envelope {
	return Envelope{
		Name:      name,
		Colors:    p,
		Timestamp: now.UTC().Format(TimestampLayout),
		Version:   Version,
	}
}

// Marshal encodes env as two-space indented JSON.
func Marshal(env Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}

// stringField decodes an optional top-level string. Keys match exactly, like
// slot names do.
func stringField(top map[string]json.RawMessage, key string) (string, error) {
	raw, ok := top[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedEnvelope, key)
	}
	return v, nil
}

// Parse decodes and validates an envelope. It either returns the palette or
// an error; nothing is partially applied.
func Parse(raw []byte) (Imported, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Imported{}, fmt.Errorf("%w: not a JSON object", ErrMalformedEnvelope)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return Imported{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	name, err := stringField(top, "name")
	if err != nil {
		return Imported{}, err
	}
	timestamp, err := stringField(top, "timestamp")
	if err != nil {
		return Imported{}, err
	}
	version, err := stringField(top, "version")
	if err != nil {
		return Imported{}, err
	}

	colors := bytes.TrimSpace(top["colors"])
	if len(colors) == 0 || bytes.Equal(colors, []byte("null")) {
		return Imported{}, fmt.Errorf("%w: no colors", ErrMalformedEnvelope)
	}
	var fields map[string]json.RawMessage
	if colors[0] != '{' || json.Unmarshal(colors, &fields) != nil {
		return Imported{}, fmt.Errorf("%w: colors is not an object", ErrMalformedEnvelope)
	}

	if version != "" {
		v, err := semver.NewVersion(version)
		if err != nil {
			return Imported{}, fmt.Errorf("%w: version %q: %v", ErrMalformedEnvelope, version, err)
		}
		if !supportedVersions.Check(v) {
			return Imported{}, fmt.Errorf("%w: unsupported version %s", ErrMalformedEnvelope, version)
		}
	}

	out := Imported{
		Name:     name,
		Version:  version,
		Warnings: []string{},
	}

	var invalid []string
	for _, s := range model.Slots() {
		rawColor, ok := fields[string(s)]
		if !ok || bytes.Equal(bytes.TrimSpace(rawColor), []byte("null")) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("missing color: %s", s))
			continue
		}
		var color string
		if err := json.Unmarshal(rawColor, &color); err != nil {
			invalid = append(invalid, string(s))
			continue
		}
		if color == "" {
			out.Warnings = append(out.Warnings, fmt.Sprintf("missing color: %s", s))
			continue
		}
		if !hexcolor.IsValid(color) {
			invalid = append(invalid, string(s))
			continue
		}
		out.Colors.Set(s, color)
	}
	if len(invalid) > 0 {
		return Imported{}, fmt.Errorf("%w: %s", ErrInvalidColor, strings.Join(invalid, ", "))
	}

	var unknown []string
	for key := range fields {
		if _, ok := model.ParseSlot(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		out.Warnings = append(out.Warnings, fmt.Sprintf("unknown color key: %s", key))
	}

	if timestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("unreadable timestamp: %s", timestamp))
		} else {
			out.Timestamp = ts
		}
	}

	return out, nil
}
