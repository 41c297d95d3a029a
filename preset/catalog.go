// Package preset holds the catalog of named color schemes.
package preset

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"logotint/hexcolor"
	"logotint/model"
)

var (
	// ErrUnknownScheme is returned when a scheme name is not in the catalog.
	ErrUnknownScheme = errors.New("unknown scheme")
	// ErrInvalidPreset is returned when a catalog entry is incomplete, holds an
	// invalid color, or reuses a name.
	ErrInvalidPreset = errors.New("invalid preset")
)

// Catalog is an immutable, ordered set of presets.
type Catalog struct {
	byName map[string]Preset
	names  []string
}

// New builds a catalog of the built-in presets followed by extra, validating
// every entry.
func New(extra ...Preset) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]Preset, len(builtins)+len(extra)),
		names:  make([]string, 0, len(builtins)+len(extra)),
	}

	for _, p := range append(append([]Preset{}, builtins...), extra...) {
		if err := c.add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	if _, dup := c.byName[p.Name]; dup {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, p.Name)
	}
	if missing := p.Colors.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s is missing %v", ErrInvalidPreset, p.Name, missing)
	}
	for _, s := range model.Slots() {
		if v := p.Colors.Get(s); !hexcolor.IsValid(v) {
			return fmt.Errorf("%w: %s.%s: %q", ErrInvalidPreset, p.Name, s, v)
		}
	}
	if p.Display == "" {
		p.Display = displayName(p.Name)
	}

	c.byName[p.Name] = p
	c.names = append(c.names, p.Name)
	return nil
}

// Names returns the preset names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// List returns every preset in catalog order.
func (c *Catalog) List() []Preset {
	out := make([]Preset, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

// Lookup returns the preset called name.
func (c *Catalog) Lookup(name string) (Preset, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Get returns the palette of the preset called name.
func (c *Catalog) Get(name string) (model.Palette, error) {
	p, ok := c.byName[name]
	if !ok {
		return model.Palette{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return p.Colors, nil
}

// Nearest returns the preset whose primary color is perceptually closest to
// color, along with the distance.
func (c *Catalog) Nearest(color string) (Preset, float64, error) {
	if !hexcolor.IsValid(color) {
		return Preset{}, 0, fmt.Errorf("%w: %q", hexcolor.ErrInvalidColor, color)
	}

	var best Preset
	bestDist := math.Inf(1)
	for _, name := range c.names {
		p := c.byName[name]
		d, err := hexcolor.Distance(color, p.Colors.Primary)
		if err != nil {
			continue
		}
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist, nil
}

// displayName turns "deepSea" or "deep-sea" into "Deep Sea".
func displayName(name string) string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for i, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ':
			flush()
			continue
		case i > 0 && r >= 'A' && r <= 'Z':
			flush()
		}
		cur.WriteRune(r)
	}
	flush()

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the catalog of built-in presets only.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(err)
		}
		builtinCatalog = c
	})
	return builtinCatalog
}

// Names returns the built-in preset names in catalog order.
func Names() []string {
	return Builtin().Names()
}

// Get returns the palette of a built-in preset.
func Get(name string) (model.Palette, error) {
	return Builtin().Get(name)
}
