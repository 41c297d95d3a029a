package main

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logotint/codec"
	"logotint/hexcolor"
	"logotint/logo"
	"logotint/model"
)

func TestParseSets(t *testing.T) {
	p, err := parseSets([]string{"primary=#112233", " accent = #abc "})
	require.NoError(t, err)
	assert.Equal(t, model.Palette{Primary: "#112233", Accent: "#abc"}, p)

	_, err = parseSets([]string{"primary"})
	assert.Error(t, err)

	_, err = parseSets([]string{"Primary=#000000"})
	assert.ErrorContains(t, err, "unknown slot")
}

func TestSchemeExportImportRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "brand.json")

	rootCmd.SetArgs([]string{"scheme", "export", "--preset", "arctic", "--set", "accent=#000000", "--out", out})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	imp, err := codec.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "brand", imp.Name)
	assert.Equal(t, "#000000", imp.Colors.Accent)
	assert.True(t, imp.Colors.IsComplete())

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"scheme", "import", out})
	rootCmd.SetOut(&stdout)
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stdout.String(), "name: brand")
	assert.Contains(t, stdout.String(), "#000000")
}

func TestRandomSlots(t *testing.T) {
	p, err := randomSlots([]string{"primary", "gradientEnd"}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.True(t, hexcolor.IsValid(p.Primary))
	assert.True(t, hexcolor.IsValid(p.GradientEnd))
	assert.Empty(t, p.Secondary)

	all, err := randomSlots([]string{"all"}, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	assert.True(t, all.IsComplete())

	_, err = randomSlots([]string{"glow"}, nil)
	assert.ErrorContains(t, err, "unknown slot")
}

func TestColorsCommand(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"colors"})
	rootCmd.SetOut(&stdout)
	require.NoError(t, rootCmd.Execute())

	for _, tok := range hexcolor.Extract(logo.Template()) {
		assert.Contains(t, stdout.String(), tok)
	}

	svg := filepath.Join(t.TempDir(), "mini.svg")
	require.NoError(t, os.WriteFile(svg, []byte(`<svg><rect fill="#abc"/></svg>`), 0o644))
	stdout.Reset()
	rootCmd.SetArgs([]string{"colors", svg})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stdout.String(), "#ABC")
	assert.NotContains(t, stdout.String(), "#DA5038")
}
