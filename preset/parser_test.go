package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brandYAML = `presets:
  - name: brand
    display: Brand Colors
    colors:
      primary: "#112233"
      secondary: "#223344"
      accent: "#334455"
      neutral: "#445566"
      special: "#556677"
      gradientStart: "#667788"
      gradientEnd: "#778899"
      backgroundColor: "#ffffff"
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brandYAML), 0o644))

	presets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, "brand", presets[0].Name)
	assert.Equal(t, "Brand Colors", presets[0].Display)
	assert.Equal(t, "#778899", presets[0].Colors.GradientEnd)

	c, err := New(presets...)
	require.NoError(t, err)
	got, err := c.Get("brand")
	require.NoError(t, err)
	assert.Equal(t, "#112233", got.Primary)
}

func TestLoadFileEmptyPath(t *testing.T) {
	presets, err := LoadFile("")
	require.NoError(t, err)
	assert.Nil(t, presets)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePresetsRejectsDuplicates(t *testing.T) {
	_, err := parsePresets([]byte("presets:\n  - name: a\n  - name: a\n"))
	assert.ErrorIs(t, err, ErrInvalidPreset)

	_, err = parsePresets([]byte("presets:\n  - display: nameless\n"))
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestParsePresetsBadYAML(t *testing.T) {
	_, err := parsePresets([]byte("presets: [unclosed"))
	assert.Error(t, err)
}
