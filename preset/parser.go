package preset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadFile reads user presets from a YAML file of the form
//
//	presets:
//	  - name: brand
//	    display: Brand
//	    colors: {primary: "#112233", ...}
//
// An empty path yields no presets. Entries are validated when handed to New.
func LoadFile(path string) ([]Preset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}

	presets, err := parsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	return presets, nil
}

func parsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(f.Presets))
	for i := range f.Presets {
		f.Presets[i].Name = strings.TrimSpace(f.Presets[i].Name)
		name := f.Presets[i].Name
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidPreset, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, name)
		}
		seen[name] = struct{}{}
	}
	return f.Presets, nil
}
