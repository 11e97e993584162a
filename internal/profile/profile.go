// Package profile loads named generation settings from a YAML file.
//
//	profiles:
//	  - name: wifi
//	    length: 24
//	    numbers: true
//	    symbols: false
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

// File is the on-disk layout.
type File struct {
	Profiles []model.Preset `yaml:"profiles"`
}

// Load reads and validates a profiles file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses profiles from r. Missing numbers/symbols default to true.
func Decode(r io.Reader) (*File, error) {
	var raw struct {
		Profiles []struct {
			Name    string `yaml:"name"`
			Length  int    `yaml:"length"`
			Numbers *bool  `yaml:"numbers"`
			Symbols *bool  `yaml:"symbols"`
		} `yaml:"profiles"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}

	file := &File{}
	seen := make(map[string]bool)
	for i, p := range raw.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile %d: name is required", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("profile %q: duplicate name", p.Name)
		}
		seen[p.Name] = true

		preset := model.Preset{
			Name:    p.Name,
			Length:  p.Length,
			Numbers: p.Numbers == nil || *p.Numbers,
			Symbols: p.Symbols == nil || *p.Symbols,
		}
		if preset.Length == 0 {
			preset.Length = crypto.DefaultLength
		}
		if err := Config(preset).Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		file.Profiles = append(file.Profiles, preset)
	}

	return file, nil
}

// Find returns the named profile.
func (f *File) Find(name string) (model.Preset, error) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Preset{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

// Config converts a profile into generator settings.
func Config(p model.Preset) crypto.Config {
	return crypto.Config{
		Length:         p.Length,
		IncludeDigits:  p.Numbers,
		IncludeSymbols: p.Symbols,
	}
}
