package beautify

import (
	"fmt"
	"sort"
)

// Theme is a named set of five color tokens applied to a style template.
// All five tokens are always populated for themes held in a registry.
type Theme struct {
	Primary   string // headings, links
	Secondary string // section accents
	Tertiary  string // deep accents (table headers, rules)
	Accent    string // highlights, inline emphasis
	Light     string // backgrounds, stripes
}

// complete reports whether all five tokens are set.
func (t Theme) complete() bool {
	return t.Primary != "" && t.Secondary != "" && t.Tertiary != "" &&
		t.Accent != "" && t.Light != ""
}

// DefaultThemeName is the registry fallback for unknown theme names.
const DefaultThemeName = "blue"

// ThemeRegistry maps theme names to themes. It is immutable after
// construction: Resolve is a pure lookup with a total fallback, so it never
// fails. Construct with NewRegistry or DefaultRegistry and pass the value
// into the generator; there is no mutable process-wide registry.
type ThemeRegistry struct {
	themes      map[string]Theme
	defaultName string
}

// NewRegistry creates a ThemeRegistry with the given themes and default name.
// The default must exist in the map and every theme must carry all five
// tokens. The map is copied, so later mutation by the caller has no effect.
func NewRegistry(defaultName string, themes map[string]Theme) (ThemeRegistry, error) {
	if _, ok := themes[defaultName]; !ok {
		return ThemeRegistry{}, fmt.Errorf("%w: default theme %q not in registry", ErrConfiguration, defaultName)
	}
	copied := make(map[string]Theme, len(themes))
	for name, theme := range themes {
		if !theme.complete() {
			return ThemeRegistry{}, fmt.Errorf("%w: theme %q is missing color tokens", ErrConfiguration, name)
		}
		copied[name] = theme
	}
	return ThemeRegistry{themes: copied, defaultName: defaultName}, nil
}

// DefaultRegistry returns the built-in registry: blue, green, purple, red,
// and orange, with blue as the fallback.
func DefaultRegistry() ThemeRegistry {
	reg, err := NewRegistry(DefaultThemeName, map[string]Theme{
		"blue": {
			Primary:   "#2563eb",
			Secondary: "#1e40af",
			Tertiary:  "#1e3a8a",
			Accent:    "#3b82f6",
			Light:     "#dbeafe",
		},
		"green": {
			Primary:   "#059669",
			Secondary: "#047857",
			Tertiary:  "#065f46",
			Accent:    "#10b981",
			Light:     "#d1fae5",
		},
		"purple": {
			Primary:   "#7c3aed",
			Secondary: "#6d28d9",
			Tertiary:  "#5b21b6",
			Accent:    "#8b5cf6",
			Light:     "#ede9fe",
		},
		"red": {
			Primary:   "#dc2626",
			Secondary: "#b91c1c",
			Tertiary:  "#991b1b",
			Accent:    "#ef4444",
			Light:     "#fee2e2",
		},
		"orange": {
			Primary:   "#ea580c",
			Secondary: "#c2410c",
			Tertiary:  "#9a3412",
			Accent:    "#f97316",
			Light:     "#fed7aa",
		},
	})
	if err != nil {
		// The built-in table is validated by tests; a failure here is a
		// programmer error.
		panic("beautify: invalid built-in theme registry: " + err.Error())
	}
	return reg
}

// Resolve returns the theme for name, or the registry default when the name
// is unknown. It always returns a complete theme.
func (r ThemeRegistry) Resolve(name string) Theme {
	if theme, ok := r.themes[name]; ok {
		return theme
	}
	return r.themes[r.defaultName]
}

// Has reports whether name is a registered theme.
func (r ThemeRegistry) Has(name string) bool {
	_, ok := r.themes[name]
	return ok
}

// Names returns all registered theme names, sorted.
func (r ThemeRegistry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
