package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresets []byte

var ErrUnknownPreset = errors.New("unknown board size")

// DefaultPreset is used when a player's choice can't be matched
const DefaultPreset = "medium"

// DefaultMaxCells caps the size of boards created over the network
const DefaultMaxCells = 250000

var ErrBoardTooLarge = errors.New("board is too large")

// CheckSize rejects boards with more than maxCells cells
func (p Preset) CheckSize(maxCells int) error {
	if p.Width > 0 && p.Height > 0 && p.Width > maxCells/p.Height {
		return fmt.Errorf("%w: %dx%d is more than %d cells", ErrBoardTooLarge, p.Width, p.Height, maxCells)
	}
	return nil
}

// Preset is a named board size
type Preset struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	Mines  int `yaml:"mines" json:"mines"`
}

// Presets maps lower-case names to board sizes
type Presets map[string]Preset

// ParsePresets reads presets from YAML
func ParsePresets(data []byte) (Presets, error) {
	raw := map[string]Preset{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("parse presets: no presets defined")
	}

	presets := Presets{}
	for name, p := range raw {
		presets[strings.ToLower(strings.TrimSpace(name))] = p
	}

	return presets, nil
}

// LoadPresets reads presets from path, or the built-in ones if path is empty
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return ParsePresets(defaultPresets)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	return ParsePresets(data)
}

// Lookup finds a preset by name, ignoring case.
// A single letter matches the one preset starting with it.
func (p Presets) Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if preset, ok := p[key]; ok {
		return preset, nil
	}

	if len(key) == 1 {
		var (
			found Preset
			hits  int
		)
		for n, preset := range p {
			if strings.HasPrefix(n, key) {
				found = preset
				hits++
			}
		}
		if hits == 1 {
			return found, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names lists preset names in alphabetical order
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
