package theme

import (
	"errors"
	"fmt"
)

// Registry holds loaded theme definitions keyed by id.
type Registry struct {
	themes map[string]*Def
	all    []Def
}

// NewRegistry creates a registry from loaded theme definitions.
func NewRegistry(themes []Def) *Registry {
	registry := &Registry{
		themes: make(map[string]*Def),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(themes), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.themes[id]
}

// Resolve looks up a theme and validates its glyphs.
func (r *Registry) Resolve(id string) (Glyphs, error) {
	def := r.GetByID(id)
	if def == nil {
		return Glyphs{}, fmt.Errorf("unknown theme %q", id)
	}
	return def.Glyphs()
}

// IDs returns theme ids in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, t := range r.all {
		ids = append(ids, t.ID)
	}
	return ids
}

// Default returns the validated default theme. The embedded data is part of
// the binary, so a failure here is a build defect.
func Default() Glyphs {
	g, err := MustLoadRegistry().Resolve(DefaultID)
	if err != nil {
		panic(err)
	}
	return g
}
