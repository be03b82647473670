package beautify

import (
	"fmt"
	"time"

	"github.com/haeun-lee/go-beautify/internal/assets"
)

// DefaultTimeout bounds a single render when the caller's context carries no
// deadline.
const DefaultTimeout = 2 * time.Minute

// Option configures a Generator.
type Option func(*Generator) error

// WithThemeRegistry replaces the built-in theme registry.
func WithThemeRegistry(registry ThemeRegistry) Option {
	return func(g *Generator) error {
		if len(registry.themes) == 0 {
			return fmt.Errorf("%w: empty theme registry", ErrConfiguration)
		}
		g.registry = registry
		return nil
	}
}

// WithTemplateDir loads style templates from dir, falling back to the
// embedded templates for names not present there.
func WithTemplateDir(dir string) Option {
	return func(g *Generator) error {
		resolver, err := assets.NewResolver(dir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		g.loader = resolver
		return nil
	}
}

// WithStyleLoader replaces the style template loader entirely.
func WithStyleLoader(loader StyleLoader) Option {
	return func(g *Generator) error {
		if loader == nil {
			return fmt.Errorf("%w: nil style loader", ErrConfiguration)
		}
		g.loader = loader
		return nil
	}
}

// WithTimeout sets the per-render timeout used when the context has no
// deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Generator) error {
		if timeout <= 0 {
			return fmt.Errorf("%w: timeout must be positive", ErrConfiguration)
		}
		g.timeout = timeout
		return nil
	}
}

// WithNow overrides the clock used for the document creation timestamp.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) error {
		if now == nil {
			return fmt.Errorf("%w: nil clock", ErrConfiguration)
		}
		g.now = now
		return nil
	}
}

// withRenderer swaps the PDF renderer, used by tests to avoid a browser.
func withRenderer(r pdfRenderer) Option {
	return func(g *Generator) error {
		g.renderer = r
		return nil
	}
}
