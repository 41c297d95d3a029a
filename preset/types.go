package preset

import "logotint/model"

// Preset is a named palette offered in the scheme menu.
type Preset struct {
	Name    string        `json:"name" yaml:"name"`
	Display string        `json:"display" yaml:"display"`
	Colors  model.Palette `json:"colors" yaml:"colors"`
}

// Swatch is the color shown next to the preset in menus.
func (p Preset) Swatch() string {
	return p.Colors.Primary
}
