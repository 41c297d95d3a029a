package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsOrder(t *testing.T) {
	names := make([]string, 0, 8)
	for _, s := range Slots() {
		names = append(names, string(s))
	}
	assert.Equal(t, []string{
		"primary", "secondary", "accent", "neutral",
		"special", "gradientStart", "gradientEnd", "backgroundColor",
	}, names)
}

func TestParseSlot(t *testing.T) {
	s, ok := ParseSlot("gradientEnd")
	assert.True(t, ok)
	assert.Equal(t, SlotGradientEnd, s)

	_, ok = ParseSlot("GradientEnd")
	assert.False(t, ok)
}

func TestDefaultPaletteIsComplete(t *testing.T) {
	p := DefaultPalette()
	assert.True(t, p.IsComplete())
	assert.Empty(t, p.Missing())
	assert.Equal(t, "#DA5038", p.Get(SlotPrimary))
	assert.Equal(t, "#fafafa", p.Get(SlotBackgroundColor))
}

func TestGetSetUnknownSlot(t *testing.T) {
	var p Palette
	p.Set("bogus", "#000000")
	assert.True(t, p.IsEmpty())
	assert.Equal(t, "", p.Get("bogus"))

	p.Set(SlotAccent, "#123456")
	assert.Equal(t, "#123456", p.Accent)
	assert.False(t, p.IsEmpty())
	assert.False(t, p.IsComplete())
}

func TestMerge(t *testing.T) {
	base := DefaultPalette()
	merged := base.Merge(Palette{Primary: "#112233", GradientEnd: "#445566"})

	assert.Equal(t, "#112233", merged.Primary)
	assert.Equal(t, "#445566", merged.GradientEnd)
	assert.Equal(t, base.Secondary, merged.Secondary)
	// receiver is not modified
	assert.Equal(t, "#DA5038", base.Primary)
}

func TestMissing(t *testing.T) {
	p := Palette{Primary: "#111111", Special: "#222222"}
	assert.Equal(t, []Slot{
		SlotSecondary, SlotAccent, SlotNeutral,
		SlotGradientStart, SlotGradientEnd, SlotBackgroundColor,
	}, p.Missing())
}

func TestPaletteJSONUsesSlotNames(t *testing.T) {
	data, err := json.Marshal(Palette{Primary: "#111111", BackgroundColor: "#fff"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"primary":"#111111","backgroundColor":"#fff"}`, string(data))

	var p Palette
	require.NoError(t, json.Unmarshal([]byte(`{"gradientStart":"#abc"}`), &p))
	assert.Equal(t, "#abc", p.GradientStart)
	assert.Equal(t, map[string]string{"gradientStart": "#abc"}, p.Map())
}
