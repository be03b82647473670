package pipeline

import (
	"strings"
	"testing"
)

func TestApplyCallouts(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     []string
		absent   []string
	}{
		{
			name:     "note callout",
			fragment: "<blockquote>\n<p>[!NOTE]<br />\nRemember this.</p>\n</blockquote>",
			want: []string{
				`<blockquote class="callout callout-note">`,
				`<span class="callout-label">Note</span>`,
				"Remember this.",
			},
			absent: []string{"[!NOTE]"},
		},
		{
			name:     "warning callout",
			fragment: "<blockquote>\n<p>[!WARNING]<br />\nCareful.</p>\n</blockquote>",
			want: []string{
				`callout-warning`,
				`<span class="callout-label">Warning</span>`,
			},
			absent: []string{"[!WARNING]"},
		},
		{
			name:     "plain blockquote untouched",
			fragment: "<blockquote>\n<p>just a quote</p>\n</blockquote>",
			want:     []string{"<blockquote>\n<p>just a quote</p>\n</blockquote>"},
			absent:   []string{"callout"},
		},
		{
			name:     "unknown marker untouched",
			fragment: "<blockquote>\n<p>[!CUSTOM]<br />\ntext</p>\n</blockquote>",
			want:     []string{"[!CUSTOM]"},
			absent:   []string{"callout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyCallouts(tt.fragment)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.absent {
				if strings.Contains(got, absent) {
					t.Errorf("unexpected %q:\n%s", absent, got)
				}
			}
		})
	}
}

func TestApplyAbbreviations(t *testing.T) {
	abbrs := []Abbreviation{{Term: "HTML", Title: "HyperText Markup Language"}}

	got := ApplyAbbreviations("<p>HTML is markup.</p>", abbrs)

	want := `<p><abbr title="HyperText Markup Language">HTML</abbr> is markup.</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyAbbreviations_MultipleTerms(t *testing.T) {
	abbrs := []Abbreviation{
		{Term: "CSS", Title: "Cascading Style Sheets"},
		{Term: "TOC", Title: "Table of Contents"},
	}

	got := ApplyAbbreviations("<p>CSS styles the TOC.</p>trailing TOC", abbrs)

	want := `<p><abbr title="Cascading Style Sheets">CSS</abbr> styles the ` +
		`<abbr title="Table of Contents">TOC</abbr>.</p>trailing ` +
		`<abbr title="Table of Contents">TOC</abbr>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyAbbreviations_SkipsTagsAndAttributes(t *testing.T) {
	abbrs := []Abbreviation{{Term: "title", Title: "should not match in tags"}}

	fragment := `<p title="title">the title of it</p>`
	got := ApplyAbbreviations(fragment, abbrs)

	if !strings.Contains(got, `<p title="title">`) {
		t.Errorf("attribute was rewritten:\n%s", got)
	}
	if !strings.Contains(got, `<abbr title="should not match in tags">title</abbr> of it`) {
		t.Errorf("text occurrence not wrapped:\n%s", got)
	}
}

func TestApplyAbbreviations_WordBoundary(t *testing.T) {
	abbrs := []Abbreviation{{Term: "API", Title: "Application Programming Interface"}}

	got := ApplyAbbreviations("<p>APIs and API and RAPID</p>", abbrs)

	if strings.Contains(got, "<abbr") && !strings.Contains(got, ">API</abbr> and") {
		t.Errorf("unexpected wrapping:\n%s", got)
	}
	if strings.Contains(got, "R<abbr") || strings.Contains(got, "RAPID</abbr>") {
		t.Errorf("matched inside a larger word:\n%s", got)
	}
	if n := strings.Count(got, "<abbr"); n != 1 {
		t.Errorf("got %d abbr tags, want 1 (boundary excludes APIs and RAPID):\n%s", n, got)
	}
}

func TestApplyAbbreviations_EscapesTitle(t *testing.T) {
	abbrs := []Abbreviation{{Term: "X", Title: `a "quoted" <value>`}}

	got := ApplyAbbreviations("<p>X marks it</p>", abbrs)

	if !strings.Contains(got, `title="a &#34;quoted&#34; &lt;value&gt;"`) {
		t.Errorf("title not escaped:\n%s", got)
	}
}

func TestApplyAbbreviations_Empty(t *testing.T) {
	fragment := "<p>unchanged</p>"
	if got := ApplyAbbreviations(fragment, nil); got != fragment {
		t.Errorf("got %q, want %q", got, fragment)
	}
}
