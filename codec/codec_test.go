package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logotint/hexcolor"
	"logotint/model"
)

var exportTime = time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.FixedZone("CET", 3600))

func TestSerialize(t *testing.T) {
	env := Serialize(model.DefaultPalette(), "color-scheme-1", exportTime)

	assert.Equal(t, "color-scheme-1", env.Name)
	assert.Equal(t, "1.0.0", env.Version)
	assert.Equal(t, "2024-03-09T13:05:07.123Z", env.Timestamp)
	assert.Equal(t, model.DefaultPalette(), env.Colors)
}

func TestMarshalLayout(t *testing.T) {
	data, err := Marshal(Serialize(model.Palette{Primary: "#112233"}, "x", exportTime))
	require.NoError(t, err)

	assert.Equal(t, `{
  "name": "x",
  "colors": {
    "primary": "#112233"
  },
  "timestamp": "2024-03-09T13:05:07.123Z",
  "version": "1.0.0"
}`, string(data))
}

func TestRoundTrip(t *testing.T) {
	palettes := []model.Palette{
		model.DefaultPalette(),
		{
			Primary: "#2c3e50", Secondary: "#3498DB", Accent: "#1ABC9C", Neutral: "#ECF0F1",
			Special: "#3498db", GradientStart: "#345", GradientEnd: "#2C3E50", BackgroundColor: "#f8f9fa",
		},
	}
	for _, p := range palettes {
		data, err := Marshal(Serialize(p, "scheme", exportTime))
		require.NoError(t, err)

		imp, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, p, imp.Colors)
		assert.Equal(t, "scheme", imp.Name)
		assert.Empty(t, imp.Warnings)
		assert.True(t, exportTime.Equal(imp.Timestamp))
	}
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"colors":`,
		"array":             `[1,2]`,
		"string":            `"hello"`,
		"null":              `null`,
		"empty":             ``,
		"no colors":         `{"name":"x"}`,
		"null colors":       `{"colors":null}`,
		"colors is array":   `{"colors":["#fff"]}`,
		"colors is string":  `{"colors":"#fff"}`,
		"name not a string": `{"name":3,"colors":{}}`,
		"bad version":       `{"colors":{},"version":"one"}`,
		"future version":    `{"colors":{},"version":"2.0.0"}`,
		"uppercase colors":  `{"COLORS":{"primary":"#fff"}}`,
		"version not text":  `{"colors":{},"version":1}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}

func TestParseAcceptsMinorVersions(t *testing.T) {
	_, err := Parse([]byte(`{"colors":{"primary":"#fff"},"version":"1.4.2"}`))
	assert.NoError(t, err)
}

func TestParseInvalidColorsNamesEverySlot(t *testing.T) {
	_, err := Parse([]byte(`{"colors":{"gradientEnd":"red","primary":"#12","accent":"#123456","neutral":7}}`))
	require.ErrorIs(t, err, ErrInvalidColor)
	assert.ErrorIs(t, err, hexcolor.ErrInvalidColor)
	assert.Contains(t, err.Error(), "primary, neutral, gradientEnd")
	assert.NotContains(t, err.Error(), "accent")
}

func TestParsePartialWarns(t *testing.T) {
	imp, err := Parse([]byte(`{"colors":{"primary":"#112233","special":"","sparkle":"#fff","glow":"#000"}}`))
	require.NoError(t, err)

	assert.Equal(t, model.Palette{Primary: "#112233"}, imp.Colors)
	assert.Contains(t, imp.Warnings, "missing color: secondary")
	assert.Contains(t, imp.Warnings, "missing color: special")
	assert.Contains(t, imp.Warnings, "missing color: backgroundColor")
	assert.NotContains(t, imp.Warnings, "missing color: primary")

	n := len(imp.Warnings)
	assert.Equal(t, []string{"unknown color key: glow", "unknown color key: sparkle"}, imp.Warnings[n-2:])
	assert.Zero(t, imp.Timestamp)
}

func TestParseKeysMatchExactly(t *testing.T) {
	imp, err := Parse([]byte(`{"Name":"upper","colors":{"Primary":"#fff"}}`))
	require.NoError(t, err)

	assert.Empty(t, imp.Name)
	assert.True(t, imp.Colors.IsEmpty())
	assert.Contains(t, imp.Warnings, "missing color: primary")
	assert.Contains(t, imp.Warnings, "unknown color key: Primary")
}

func TestParseUnreadableTimestampIsWarning(t *testing.T) {
	imp, err := Parse([]byte(`{"colors":{"primary":"#fff"},"timestamp":"yesterday"}`))
	require.NoError(t, err)
	assert.Contains(t, imp.Warnings, "unreadable timestamp: yesterday")
}

func TestImportedJSON(t *testing.T) {
	imp, err := Parse([]byte(`{"name":"n","colors":{"primary":"#fff"}}`))
	require.NoError(t, err)

	data, err := json.Marshal(imp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "timestamp")
}
