package model

import (
	"time"
)

// Slot names one of the eight color roles of the logo.
type Slot string

const (
	SlotPrimary         Slot = "primary"
	SlotSecondary       Slot = "secondary"
	SlotAccent          Slot = "accent"
	SlotNeutral         Slot = "neutral"
	SlotSpecial         Slot = "special"
	SlotGradientStart   Slot = "gradientStart"
	SlotGradientEnd     Slot = "gradientEnd"
	SlotBackgroundColor Slot = "backgroundColor"
)

// Slots returns every slot in declaration order.
func Slots() []Slot {
	return []Slot{
		SlotPrimary,
		SlotSecondary,
		SlotAccent,
		SlotNeutral,
		SlotSpecial,
		SlotGradientStart,
		SlotGradientEnd,
		SlotBackgroundColor,
	}
}

// ParseSlot returns the slot with the given name.
func ParseSlot(name string) (Slot, bool) {
	for _, s := range Slots() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// Palette maps each slot to a color token. An empty field means the slot is
// unset, which makes the palette partial.
type Palette struct {
	Primary         string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary       string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent          string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Neutral         string `json:"neutral,omitempty" yaml:"neutral,omitempty"`
	Special         string `json:"special,omitempty" yaml:"special,omitempty"`
	GradientStart   string `json:"gradientStart,omitempty" yaml:"gradientStart,omitempty"`
	GradientEnd     string `json:"gradientEnd,omitempty" yaml:"gradientEnd,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
}

// DefaultPalette is the palette the logo template is drawn with. Its values
// are the tokens the engine searches for, exactly as written in the template.
func DefaultPalette() Palette {
	return Palette{
		Primary:         "#DA5038",
		Secondary:       "#219BC3",
		Accent:          "#1a7a93",
		Neutral:         "#f2ead8",
		Special:         "#219bc3",
		GradientStart:   "#E66A49",
		GradientEnd:     "#B97467",
		BackgroundColor: "#fafafa",
	}
}

func (p *Palette) field(s Slot) *string {
	switch s {
	case SlotPrimary:
		return &p.Primary
	case SlotSecondary:
		return &p.Secondary
	case SlotAccent:
		return &p.Accent
	case SlotNeutral:
		return &p.Neutral
	case SlotSpecial:
		return &p.Special
	case SlotGradientStart:
		return &p.GradientStart
	case SlotGradientEnd:
		return &p.GradientEnd
	case SlotBackgroundColor:
		return &p.BackgroundColor
	}
	return nil
}

// Get returns the color of a slot, or "" when unset or unknown.
func (p Palette) Get(s Slot) string {
	if f := p.field(s); f != nil {
		return *f
	}
	return ""
}

// Set assigns a color to a slot. Unknown slots are ignored.
func (p *Palette) Set(s Slot, color string) {
	if f := p.field(s); f != nil {
		*f = color
	}
}

// Merge returns p with every set slot of delta applied over it.
func (p Palette) Merge(delta Palette) Palette {
	out := p
	for _, s := range Slots() {
		if v := delta.Get(s); v != "" {
			out.Set(s, v)
		}
	}
	return out
}

// Missing lists the unset slots in declaration order.
func (p Palette) Missing() []Slot {
	var out []Slot
	for _, s := range Slots() {
		if p.Get(s) == "" {
			out = append(out, s)
		}
	}
	return out
}

// IsComplete reports whether every slot is set.
func (p Palette) IsComplete() bool {
	return len(p.Missing()) == 0
}

// IsEmpty reports whether no slot is set.
func (p Palette) IsEmpty() bool {
	return len(p.Missing()) == len(Slots())
}

// Map returns the set slots keyed by slot name.
func (p Palette) Map() map[string]string {
	out := make(map[string]string, len(Slots()))
	for _, s := range Slots() {
		if v := p.Get(s); v != "" {
			out[string(s)] = v
		}
	}
	return out
}

type ScheduleType string

const (
	ScheduleInterval ScheduleType = "interval"
	ScheduleDaily    ScheduleType = "daily"
)

// Schedule describes when a maintenance job runs.
type Schedule struct {
	ID        string       `json:"id" mapstructure:"id"`
	Name      string       `json:"name" mapstructure:"name"`
	Enabled   bool         `json:"enabled" mapstructure:"enabled"`
	Type      ScheduleType `json:"type" mapstructure:"type"`
	Every     string       `json:"every,omitempty" mapstructure:"every"`             // Go duration, e.g. "24h"
	TimeOfDay string       `json:"time_of_day,omitempty" mapstructure:"time_of_day"` // "HH:MM" local time
}

// UsageStats is the persisted usage counter of the editor.
type UsageStats struct {
	ID            string     `gorm:"primaryKey;size:64" json:"-"`
	ColorsChanged int64      `json:"colors_changed"`
	Sessions      int64      `json:"sessions"`
	LastModified  *time.Time `json:"last_modified,omitempty"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM.
func (UsageStats) TableName() string {
	return "usage_stats"
}

// SavedScheme is an exported color scheme kept in the history.
type SavedScheme struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;index" json:"name"`
	Envelope  string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (SavedScheme) TableName() string {
	return "saved_schemes"
}
