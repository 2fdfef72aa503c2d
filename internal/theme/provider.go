package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Palette modes
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// Provider supplies palette tokens per mode. A zero Provider supplies none,
// which makes every lookup fall back.
type Provider struct {
	modes map[string]Tokens
}

// LoadProvider reads a palette file whose top-level tables are modes:
//
//	[dark.redAccent]
//	500 = "#db4f4a"
//
// A missing file is not an error and yields an empty provider.
func LoadProvider(path string) (*Provider, error) {
	p := &Provider{modes: map[string]Tokens{}}
	if path == "" {
		return p, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return p, nil
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("parsing palette file: %w", err)
	}

	for mode, v := range raw {
		if m, ok := v.(map[string]any); ok {
			p.modes[mode] = Tokens(m)
		}
	}
	return p, nil
}

// NewProvider builds a provider from in-memory palettes
func NewProvider(modes map[string]Tokens) *Provider {
	return &Provider{modes: modes}
}

// Tokens returns the palette for mode, or nil when there is none
func (p *Provider) Tokens(mode string) Tokens {
	if p == nil {
		return nil
	}
	return p.modes[mode]
}

// Modes returns the number of palettes loaded
func (p *Provider) Modes() int {
	if p == nil {
		return 0
	}
	return len(p.modes)
}

// ToggleMode flips between dark and light
func ToggleMode(mode string) string {
	if mode == ModeDark {
		return ModeLight
	}
	return ModeDark
}
