package service

import (
	_ "embed"
	"os"

	perr "podium/internal/platform/errors"
	"podium/internal/services/api/covers/domain"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresets []byte

// LoadPresets reads the styler presets from path, falling back to the
// embedded defaults when path is empty
func LoadPresets(path string) (domain.Presets, error) {
	raw := defaultPresets
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return domain.Presets{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "reading presets %q", path)
		}
		raw = b
	}

	var p domain.Presets
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return domain.Presets{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "parsing presets")
	}
	if len(p.Palettes) == 0 {
		return domain.Presets{}, perr.Unavailablef("presets define no palettes")
	}
	return p, nil
}
