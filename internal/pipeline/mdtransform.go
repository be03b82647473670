package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Wiki-style links: [[Target]] or [[Target|Label]]
	wikiLinkPattern = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]+))?\]\]`)

	// Abbreviation definitions: *[ABBR]: expansion
	abbrDefPattern = regexp.MustCompile(`(?m)^\*\[([^\[\]]+)\]:[ \t]*(.+)$`)
)

// Abbreviation is a term collected from a *[TERM]: expansion definition
// line. Definitions are stripped before conversion and applied to the
// rendered fragment afterwards.
type Abbreviation struct {
	Term  string
	Title string
}

// Preprocessed is the output of markdown preprocessing.
type Preprocessed struct {
	Markdown      string
	Abbreviations []Abbreviation
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) Preprocessed
}

// CommonMarkPreprocessor applies transformations before CommonMark
// conversion: line-ending normalization, wiki-link rewriting, abbreviation
// collection, and blank-line compression.
type CommonMarkPreprocessor struct{}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)

// PreprocessMarkdown applies all transformations to prepare markdown for
// conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) Preprocessed {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return Preprocessed{Markdown: content}
	}

	content = normalizeLineEndings(content)
	content, abbrs := extractAbbreviations(content)
	content = convertWikiLinks(content)
	content = compressBlankLines(content)
	return Preprocessed{Markdown: content, Abbreviations: abbrs}
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertWikiLinks rewrites [[Target]] and [[Target|Label]] to standard
// markdown links. The destination is the target with spaces replaced by
// hyphens, mirroring common wiki slug behavior.
func convertWikiLinks(content string) string {
	return wikiLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := wikiLinkPattern.FindStringSubmatch(match)
		target := strings.TrimSpace(groups[1])
		label := target
		if groups[2] != "" {
			label = strings.TrimSpace(groups[2])
		}
		dest := strings.ReplaceAll(target, " ", "-")
		return "[" + label + "](" + dest + ")"
	})
}

// extractAbbreviations collects *[TERM]: expansion definitions and removes
// the definition lines from the markdown. Later definitions for the same
// term win.
func extractAbbreviations(content string) (string, []Abbreviation) {
	matches := abbrDefPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	seen := make(map[string]int)
	var abbrs []Abbreviation
	for _, m := range matches {
		term := strings.TrimSpace(m[1])
		title := strings.TrimSpace(m[2])
		if term == "" || title == "" {
			continue
		}
		if idx, ok := seen[term]; ok {
			abbrs[idx].Title = title
			continue
		}
		seen[term] = len(abbrs)
		abbrs = append(abbrs, Abbreviation{Term: term, Title: title})
	}

	stripped := abbrDefPattern.ReplaceAllString(content, "")
	return stripped, abbrs
}
