package assets

import "errors"

// Resolver combines a custom template directory with the embedded defaults.
// When a directory is configured it is tried first, falling back to embedded
// assets only when the style is not found there.
type Resolver struct {
	custom   Loader // nil if no template directory configured
	embedded Loader
}

// NewResolver creates a Resolver. If templateDir is empty, only embedded
// assets are used. Returns an error if templateDir is set but invalid.
func NewResolver(templateDir string) (*Resolver, error) {
	resolver := &Resolver{embedded: NewEmbeddedLoader()}

	if templateDir != "" {
		fsLoader, err := NewFilesystemLoader(templateDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a style, trying the template directory first if one is
// configured. Falls back to embedded only for "not found" errors; validation
// and I/O errors propagate.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
