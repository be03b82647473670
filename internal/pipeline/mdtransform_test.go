package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestPreprocessMarkdown_NormalizesLineEndings(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"crlf", "line1\r\nline2", "line1\nline2"},
		{"cr only", "line1\rline2", "line1\nline2"},
		{"already lf", "line1\nline2", "line1\nline2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PreprocessMarkdown(context.Background(), tt.content)
			if got.Markdown != tt.want {
				t.Errorf("got %q, want %q", got.Markdown, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown_CompressesBlankLines(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	got := p.PreprocessMarkdown(context.Background(), "a\n\n\n\n\nb")
	want := "a\n\nb"
	if got.Markdown != want {
		t.Errorf("got %q, want %q", got.Markdown, want)
	}
}

func TestPreprocessMarkdown_WikiLinks(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "see [[Design Doc]]", "see [Design Doc](Design-Doc)"},
		{"labeled", "see [[Design Doc|the doc]]", "see [the doc](Design-Doc)"},
		{"no wiki link", "see [normal](link)", "see [normal](link)"},
		{"multiple", "[[A]] and [[B]]", "[A](A) and [B](B)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PreprocessMarkdown(context.Background(), tt.content)
			if got.Markdown != tt.want {
				t.Errorf("got %q, want %q", got.Markdown, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown_ExtractsAbbreviations(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	content := "*[HTML]: HyperText Markup Language\n\nHTML is everywhere."
	got := p.PreprocessMarkdown(context.Background(), content)

	if len(got.Abbreviations) != 1 {
		t.Fatalf("got %d abbreviations, want 1", len(got.Abbreviations))
	}
	if got.Abbreviations[0].Term != "HTML" || got.Abbreviations[0].Title != "HyperText Markup Language" {
		t.Errorf("got %+v", got.Abbreviations[0])
	}
	if strings.Contains(got.Markdown, "*[HTML]:") {
		t.Errorf("definition line not stripped: %q", got.Markdown)
	}
	if !strings.Contains(got.Markdown, "HTML is everywhere.") {
		t.Errorf("body text lost: %q", got.Markdown)
	}
}

func TestPreprocessMarkdown_LastAbbreviationWins(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	content := "*[API]: first\n*[API]: second\n\nAPI"
	got := p.PreprocessMarkdown(context.Background(), content)

	if len(got.Abbreviations) != 1 {
		t.Fatalf("got %d abbreviations, want 1", len(got.Abbreviations))
	}
	if got.Abbreviations[0].Title != "second" {
		t.Errorf("got title %q, want %q", got.Abbreviations[0].Title, "second")
	}
}

func TestPreprocessMarkdown_CancelledContext(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	content := "a\r\nb"
	got := p.PreprocessMarkdown(ctx, content)
	if got.Markdown != content {
		t.Errorf("cancelled context should return content unchanged, got %q", got.Markdown)
	}
}
