package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// Heading is one heading extracted from a rendered HTML fragment.
type Heading struct {
	Level int    // 1..6
	ID    string // anchor id generated by the converter
	Text  string // visible text with inner tags stripped
}

// headingPattern matches rendered headings carrying an id attribute. The
// converter generates ids for every heading, so headings without one are
// not linkable and are skipped.
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// tagStripper removes inner tags from heading text (e.g. <code> or <em>).
var tagStripper = regexp.MustCompile(`<[^>]*>`)

// ExtractHeadings scans a rendered HTML fragment for headings in document
// order.
func ExtractHeadings(fragment string) []Heading {
	matches := headingPattern.FindAllStringSubmatch(fragment, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		level := int(m[1][0] - '0')
		text := strings.TrimSpace(tagStripper.ReplaceAllString(m[3], ""))
		headings = append(headings, Heading{
			Level: level,
			ID:    m[2],
			Text:  html.UnescapeString(text),
		})
	}
	return headings
}

// BuildTOC renders a nested table of contents for the headings whose level
// falls within [minDepth, maxDepth]. Returns "" when no heading qualifies,
// so callers can skip the TOC block entirely.
//
// Nesting follows the filtered levels: a level-3 heading under a level-2
// heading opens a sub-list. Level jumps (e.g. h2 straight to h4 when depth
// 2-4 is requested) open one list per skipped level so the markup stays
// balanced.
func BuildTOC(headings []Heading, minDepth, maxDepth int, title string) string {
	var filtered []Heading
	for _, h := range headings {
		if h.Level >= minDepth && h.Level <= maxDepth {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="table-of-contents">` + "\n")
	// The title is an h2 so the templates' .table-of-contents h2 rule
	// styles it.
	b.WriteString("<h2>" + html.EscapeString(title) + "</h2>\n")

	depth := minDepth - 1
	for _, h := range filtered {
		if h.Level > depth {
			for depth < h.Level {
				b.WriteString(`<ul class="toc-list">` + "\n")
				depth++
			}
		} else {
			b.WriteString("</li>\n")
			for depth > h.Level {
				b.WriteString("</ul>\n</li>\n")
				depth--
			}
		}
		b.WriteString(`<li><a href="#` + h.ID + `">` + html.EscapeString(h.Text) + `</a>` + "\n")
	}
	b.WriteString("</li>\n")
	for depth >= minDepth {
		b.WriteString("</ul>\n")
		depth--
		if depth >= minDepth {
			b.WriteString("</li>\n")
		}
	}

	b.WriteString("</div>")
	return b.String()
}
