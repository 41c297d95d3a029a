package engine

import (
	"fmt"
	"strings"
	"sync"

	"logotint/hexcolor"
	"logotint/model"
)

// Session holds the palette of one editing session. Every render starts
// again from the pristine template with the merged palette, so edits can be
// chained without feeding recolored output back into Apply.
type Session struct {
	mu       sync.Mutex
	template string
	palette  model.Palette
	opts     Options
}

// NewSession starts a session on template with the default palette.
func NewSession(template string, opts Options) *Session {
	return &Session{
		template: template,
		palette:  model.DefaultPalette(),
		opts:     opts,
	}
}

// Palette returns a snapshot of the current palette.
func (s *Session) Palette() model.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette
}

// Render recomputes the document for the current palette.
func (s *Session) Render() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

// render applies only the slots that differ from the default palette, so a
// session edit and the same partial Apply produce the same document.
func (s *Session) render() (Result, error) {
	return Apply(s.template, changed(s.palette), s.opts)
}

func changed(p model.Palette) model.Palette {
	defaults := model.DefaultPalette()
	var delta model.Palette
	for _, slot := range model.Slots() {
		if v := p.Get(slot); !strings.EqualFold(v, defaults.Get(slot)) {
			delta.Set(slot, v)
		}
	}
	return delta
}

// Update merges the valid slots of delta into the session palette and
// renders. Invalid slots are reported in the result and leave the previous
// color in place.
func (s *Session) Update(delta model.Palette) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(delta)
}

func (s *Session) update(delta model.Palette) (Result, error) {
	var rejected []string
	valid := model.Palette{}
	for _, slot := range model.Slots() {
		v := delta.Get(slot)
		if v == "" {
			continue
		}
		if !hexcolor.IsValid(v) {
			rejected = append(rejected, fmt.Sprintf("%s: %v: %q", slot, hexcolor.ErrInvalidColor, v))
			continue
		}
		valid.Set(slot, v)
	}
	s.palette = s.palette.Merge(valid)

	res, err := s.render()
	if len(rejected) > 0 {
		res.Errors = append(rejected, res.Errors...)
	}
	return res, err
}

// Replace swaps in p merged over the default palette, as when a preset is chosen.
func (s *Session) Replace(p model.Palette) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palette = model.DefaultPalette()
	return s.update(p)
}

// Reset restores the default palette.
func (s *Session) Reset() (Result, error) {
	return s.Replace(model.Palette{})
}
