package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// Callout kinds recognized in blockquote markers, mapped to display labels.
var calloutLabels = map[string]string{
	"NOTE":      "Note",
	"TIP":       "Tip",
	"IMPORTANT": "Important",
	"WARNING":   "Warning",
	"CAUTION":   "Caution",
}

// calloutPattern matches a rendered blockquote whose first paragraph starts
// with a [!KIND] marker, capturing the kind and any trailing break.
var calloutPattern = regexp.MustCompile(`(?s)<blockquote>\s*<p>\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]\s*(?:<br />\s*)?`)

// ApplyCallouts rewrites [!KIND]-marked blockquotes into classed callout
// blocks with a visible label. Blockquotes without a marker pass through
// unchanged.
func ApplyCallouts(fragment string) string {
	return calloutPattern.ReplaceAllStringFunc(fragment, func(match string) string {
		groups := calloutPattern.FindStringSubmatch(match)
		kind := groups[1]
		class := "callout callout-" + strings.ToLower(kind)
		label := calloutLabels[kind]
		return `<blockquote class="` + class + `">` + "\n" +
			`<p><span class="callout-label">` + label + `</span>`
	})
}

// htmlTagSplit matches HTML tags, used to process only text segments.
var htmlTagSplit = regexp.MustCompile(`<[^>]*>`)

// abbrPattern is one abbreviation compiled into a word-boundary matcher.
type abbrPattern struct {
	pattern *regexp.Regexp
	title   string
}

// ApplyAbbreviations wraps occurrences of each defined term in <abbr> tags
// carrying the expansion as the title attribute. Only text outside HTML tags
// is rewritten, so attribute values and tag names are never touched.
func ApplyAbbreviations(fragment string, abbrs []Abbreviation) string {
	if len(abbrs) == 0 {
		return fragment
	}

	patterns := make([]abbrPattern, 0, len(abbrs))
	for _, a := range abbrs {
		patterns = append(patterns, abbrPattern{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(a.Term) + `\b`),
			title:   a.Title,
		})
	}

	var out strings.Builder
	out.Grow(len(fragment))

	last := 0
	for _, loc := range htmlTagSplit.FindAllStringIndex(fragment, -1) {
		out.WriteString(replaceAbbrInText(fragment[last:loc[0]], patterns))
		out.WriteString(fragment[loc[0]:loc[1]]) // the tag itself, untouched
		last = loc[1]
	}
	out.WriteString(replaceAbbrInText(fragment[last:], patterns))

	return out.String()
}

func replaceAbbrInText(text string, patterns []abbrPattern) string {
	for _, p := range patterns {
		text = p.pattern.ReplaceAllStringFunc(text, func(term string) string {
			return `<abbr title="` + html.EscapeString(p.title) + `">` + term + `</abbr>`
		})
	}
	return text
}
