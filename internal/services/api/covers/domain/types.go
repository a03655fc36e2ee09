// Package domain holds cover styling types and contracts
package domain

import "time"

// StyleInput is the cover composition request
type StyleInput struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Speaker string `json:"speaker" validate:"required,max=100"`
	Date    string `json:"date"    validate:"required,datetime=2006-01-02"`
	Venue   string `json:"venue"   validate:"required,max=100"`
	Palette string `json:"palette" validate:"required,max=50"`
}

// Palette is a named color scheme for rendered covers
type Palette struct {
	Name       string `json:"name"       yaml:"name"`
	Background string `json:"background" yaml:"background"`
	Accent     string `json:"accent"     yaml:"accent"`
	Text       string `json:"text"       yaml:"text"`
}

// Venue is a known meetup location offered in the styler
type Venue struct {
	Name    string `json:"name"    yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// Presets is the YAML-backed styler configuration
type Presets struct {
	Venues   []Venue   `json:"venues"   yaml:"venues"`
	Palettes []Palette `json:"palettes" yaml:"palettes"`
}

// PaletteByName returns the palette with the given name
func (p Presets) PaletteByName(name string) (Palette, bool) {
	for _, pal := range p.Palettes {
		if pal.Name == name {
			return pal, true
		}
	}
	return Palette{}, false
}

// Asset is a stored cover image, either uploaded or rendered
type Asset struct {
	Ref         string    `json:"ref"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a deep copy so store snapshots cannot alias live state
func (a Asset) Clone() Asset {
	out := a
	out.Data = append([]byte(nil), a.Data...)
	return out
}

// RenderOutput carries the rendered PNG and its stored ref
type RenderOutput struct {
	Ref string
	PNG []byte
}
