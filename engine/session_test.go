package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logotint/logo"
	"logotint/model"
)

func TestSessionStartsOnDefaults(t *testing.T) {
	s := NewSession(logo.Template(), Options{})
	assert.Equal(t, model.DefaultPalette(), s.Palette())

	res, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, logo.Template(), res.Document)
}

func TestSessionUpdatesChain(t *testing.T) {
	s := NewSession(logo.Template(), Options{})

	_, err := s.Update(model.Palette{Primary: "#111111"})
	require.NoError(t, err)
	res, err := s.Update(model.Palette{Primary: "#222222"})
	require.NoError(t, err)

	assert.Contains(t, res.Document, `fill="#222222"`)
	assert.NotContains(t, res.Document, "#111111")

	direct, err := Apply(logo.Template(), model.DefaultPalette().Merge(model.Palette{Primary: "#222222"}), Options{})
	require.NoError(t, err)
	assert.Equal(t, direct.Document, res.Document)
}

func TestSessionInvalidUpdateKeepsPalette(t *testing.T) {
	s := NewSession(logo.Template(), Options{})
	_, err := s.Update(model.Palette{Accent: "#abcdef"})
	require.NoError(t, err)

	res, err := s.Update(model.Palette{Accent: "teal", Neutral: "#000000"})
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "accent")
	assert.Equal(t, "#abcdef", s.Palette().Accent)
	assert.Equal(t, "#000000", s.Palette().Neutral)
}

func TestSessionReplaceAndReset(t *testing.T) {
	s := NewSession(logo.Template(), Options{})
	_, err := s.Update(model.Palette{Primary: "#111111", Accent: "#222222"})
	require.NoError(t, err)

	_, err = s.Replace(model.Palette{Accent: "#333333"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPalette().Primary, s.Palette().Primary)
	assert.Equal(t, "#333333", s.Palette().Accent)

	res, err := s.Reset()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPalette(), s.Palette())
	assert.Equal(t, logo.Template(), res.Document)
}

func TestSessionWithoutTemplate(t *testing.T) {
	_, err := NewSession("", Options{}).Render()
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestSessionMatchesPartialApply(t *testing.T) {
	s := NewSession(logo.Template(), Options{})
	res, err := s.Update(model.Palette{Secondary: "#111111"})
	require.NoError(t, err)

	direct, err := Apply(logo.Template(), model.Palette{Secondary: "#111111"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, direct.Document, res.Document)
	assert.Equal(t, direct.Replacements, res.Replacements)
}

func TestSessionSetBackToDefaultIsPristine(t *testing.T) {
	s := NewSession(logo.Template(), Options{})
	_, err := s.Update(model.Palette{Neutral: "#000000"})
	require.NoError(t, err)

	res, err := s.Update(model.Palette{Neutral: "#F2EAD8"})
	require.NoError(t, err)
	assert.Equal(t, logo.Template(), res.Document)
}
