package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestToHTML_BasicElements(t *testing.T) {
	c := NewGoldmarkConverter()

	tests := []struct {
		name     string
		markdown string
		want     []string
	}{
		{
			name:     "heading with id",
			markdown: "## Getting Started",
			want:     []string{"<h2", `id="getting-started"`, "Getting Started</h2>"},
		},
		{
			name:     "paragraph",
			markdown: "hello world",
			want:     []string{"<p>hello world</p>"},
		},
		{
			name:     "table",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:     []string{"<table>", "<th>a</th>", "<td>1</td>"},
		},
		{
			name:     "strikethrough",
			markdown: "~~gone~~",
			want:     []string{"<del>gone</del>"},
		},
		{
			name:     "task list",
			markdown: "- [x] done\n- [ ] todo",
			want:     []string{`type="checkbox"`, "checked"},
		},
		{
			name:     "footnote",
			markdown: "text[^1]\n\n[^1]: the note",
			want:     []string{"footnote", "the note"},
		},
		{
			name:     "definition list",
			markdown: "Term\n: definition",
			want:     []string{"<dt>Term</dt>", "<dd>definition</dd>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestToHTML_CodeBlockWrapped(t *testing.T) {
	c := NewGoldmarkConverter()

	got, err := c.ToHTML(context.Background(), "```go\nfmt.Println(\"hi\")\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<div class="highlight">`) {
		t.Errorf("code block not wrapped in highlight div:\n%s", got)
	}
	if strings.Contains(got, "style=") {
		t.Errorf("expected classed output, found inline styles:\n%s", got)
	}
}

func TestToHTML_RawHTMLEscaped(t *testing.T) {
	c := NewGoldmarkConverter()

	got, err := c.ToHTML(context.Background(), "before\n\n<script>alert(1)</script>\n\nafter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through:\n%s", got)
	}
}

func TestToHTML_FragmentOnly(t *testing.T) {
	c := NewGoldmarkConverter()

	got, err := c.ToHTML(context.Background(), "# Title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, forbidden := range []string{"<html", "<head", "<body"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("fragment contains document skeleton tag %q", forbidden)
		}
	}
}

func TestToHTML_CancelledContext(t *testing.T) {
	c := NewGoldmarkConverter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ToHTML(ctx, "# Title")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestToHTML_HeadingCountPreserved(t *testing.T) {
	c := NewGoldmarkConverter()

	markdown := "# One\n\n## Two\n\n## Three\n\n### Four"
	got, err := c.ToHTML(context.Background(), markdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := map[string]int{"<h1": 1, "<h2": 2, "<h3": 1}
	for tag, want := range counts {
		if n := strings.Count(got, tag); n != want {
			t.Errorf("got %d %s headings, want %d", n, tag, want)
		}
	}
}
