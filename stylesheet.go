package beautify

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/haeun-lee/go-beautify/internal/assets"
)

// Canonical anchor colors. Style templates are authored with these literal
// hex values for every themeable element; materialization replaces them with
// the resolved theme's tokens. The anchors equal the "blue" theme, so the
// default theme is a no-op substitution.
const (
	AnchorPrimary   = "#2563eb"
	AnchorSecondary = "#1e40af"
	AnchorTertiary  = "#1e3a8a"
	AnchorAccent    = "#3b82f6"
	AnchorLight     = "#dbeafe"
)

// StyleLoader loads CSS style templates by name (without the .css
// extension). Implementations may load from the filesystem, embedded
// assets, or elsewhere; NewGenerator wires a filesystem loader with embedded
// fallback when WithTemplateDir is used.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// materializeStylesheet loads the named style template and substitutes the
// five anchor colors with the theme's tokens. A missing named template falls
// back to the default template; if the default is also missing the error
// wraps ErrConfiguration and names what could not be loaded.
//
// Substitution is a single atomic pass over the anchor table, so a theme
// token that happens to equal another anchor cannot cascade into a second
// replacement.
func materializeStylesheet(loader StyleLoader, styleName string, theme Theme) (string, error) {
	css, err := loader.LoadStyle(styleName)
	if err != nil {
		if !errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("%w: loading style %q: %v", ErrConfiguration, styleName, err)
		}
		if styleName == DefaultStyle {
			return "", fmt.Errorf("%w: default style %q not found: %v", ErrConfiguration, DefaultStyle, err)
		}
		css, err = loader.LoadStyle(DefaultStyle)
		if err != nil {
			return "", fmt.Errorf("%w: style %q not found and default %q failed: %v", ErrConfiguration, styleName, DefaultStyle, err)
		}
	}

	return substituteTheme(css, theme) + highlightCSS(), nil
}

// substituteTheme replaces the five anchor colors with the theme tokens in
// one pass.
func substituteTheme(css string, theme Theme) string {
	replacer := strings.NewReplacer(
		AnchorPrimary, theme.Primary,
		AnchorSecondary, theme.Secondary,
		AnchorTertiary, theme.Tertiary,
		AnchorAccent, theme.Accent,
		AnchorLight, theme.Light,
	)
	return replacer.Replace(css)
}

// highlightStyle is the chroma style used for fenced code blocks. It pairs
// with the light backgrounds of the built-in templates.
const highlightStyle = "github"

var (
	highlightOnce sync.Once
	highlightRule string
)

// highlightCSS returns the chroma class rules for syntax-highlighted code
// blocks. The converter emits classed tokens (no inline styles), so the
// rules ship with every materialized stylesheet. Generated once per process.
func highlightCSS() string {
	highlightOnce.Do(func() {
		var buf strings.Builder
		buf.WriteString("\n/* Syntax highlighting (chroma) */\n")
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		if err := formatter.WriteCSS(&buf, chromastyles.Get(highlightStyle)); err != nil {
			// WriteCSS on a strings.Builder cannot fail for I/O reasons;
			// an error here means a broken style registration.
			highlightRule = ""
			return
		}
		highlightRule = buf.String()
	})
	return highlightRule
}
