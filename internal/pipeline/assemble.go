package pipeline

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"time"
)

// DocumentParts holds everything needed to assemble a complete HTML
// document. The body fragment and TOC come from the converter, the CSS from
// stylesheet materialization.
type DocumentParts struct {
	Title    string
	Meta     map[string]string // name -> content meta tags (author, description, ...)
	CSS      string
	TOC      string // rendered TOC block, empty when disabled or no headings
	Body     string
	Created  time.Time
	Language string // html lang attribute, defaults to "en"
}

// styleCloser matches a premature </style> closer inside CSS, with optional
// whitespace before the closing bracket.
var styleCloser = regexp.MustCompile(`(?i)</style\s*>`)

// sanitizeCSS neutralizes </style> sequences so user-supplied templates
// cannot break out of the style element.
func sanitizeCSS(css string) string {
	return styleCloser.ReplaceAllString(css, `<\/style>`)
}

// AssembleDocument builds a complete HTML document from the parts. Assembly
// is positional: each section is written in order, so already-escaped
// content can never be mistaken for an injection marker.
//
// When a TOC block is present it is followed by a page break, putting the
// body content on a fresh page.
func AssembleDocument(p DocumentParts) string {
	lang := p.Language
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	b.Grow(len(p.CSS) + len(p.Body) + len(p.TOC) + 512)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + html.EscapeString(lang) + `">` + "\n")
	b.WriteString("<head>\n")
	b.WriteString(`<meta charset="utf-8" />` + "\n")
	b.WriteString("<title>" + html.EscapeString(p.Title) + "</title>\n")

	for _, name := range sortedMetaNames(p.Meta) {
		content := p.Meta[name]
		if content == "" {
			continue
		}
		b.WriteString(`<meta name="` + html.EscapeString(name) + `" content="` + html.EscapeString(content) + `" />` + "\n")
	}
	if !p.Created.IsZero() {
		b.WriteString(`<meta name="created" content="` + p.Created.UTC().Format(time.RFC3339) + `" />` + "\n")
	}

	b.WriteString("<style>\n")
	b.WriteString(sanitizeCSS(p.CSS))
	b.WriteString("\n</style>\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")

	if p.TOC != "" {
		b.WriteString(p.TOC)
		b.WriteString("\n")
		b.WriteString(`<div class="page-break"></div>` + "\n")
	}

	b.WriteString(p.Body)
	b.WriteString("\n</body>\n")
	b.WriteString("</html>\n")

	return b.String()
}

// sortedMetaNames returns the meta tag names in deterministic order.
func sortedMetaNames(meta map[string]string) []string {
	names := make([]string, 0, len(meta))
	for name := range meta {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
