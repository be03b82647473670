package beautify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeRenderer returns fixed PDF bytes without a browser.
type fakeRenderer struct {
	pdf    []byte
	err    error
	html   string // last rendered document
	closed bool
}

func (f *fakeRenderer) RenderHTML(_ context.Context, htmlContent string) ([]byte, error) {
	f.html = htmlContent
	return f.pdf, f.err
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
}

func newTestGenerator(t *testing.T, renderer pdfRenderer, opts ...Option) *Generator {
	t.Helper()
	opts = append(opts, withRenderer(renderer), WithNow(fixedNow))
	g, err := NewGenerator(opts...)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func TestPreviewHTML_EndToEnd(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{})
	output := filepath.Join(t.TempDir(), "result.html")

	res := g.PreviewHTML(context.Background(), Input{
		Markdown:   "# Title\n\nHello **world**.",
		OutputPath: output,
		Style:      "business_report",
		Theme:      "blue",
		TOC:        &TOCOptions{Disabled: true},
	})

	if !res.Success {
		t.Fatalf("failure: %s (%v)", res.Message, res.Err)
	}
	if !strings.HasSuffix(res.Path, "result.html") {
		t.Errorf("path = %q", res.Path)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, "<title>Title</title>") {
		t.Error("missing document title")
	}
	if !strings.Contains(html, "<strong>world</strong>") {
		t.Error("missing rendered body")
	}
	// Match the markup, not the bare name, which also appears in the
	// inlined stylesheet's selectors.
	if strings.Contains(html, `class="table-of-contents"`) {
		t.Error("TOC present despite being disabled")
	}
	if !strings.Contains(html, `<meta name="description" content="Title - Generated Report" />`) {
		t.Error("missing description meta tag")
	}
	if res.Metadata.Title != "Title" {
		t.Errorf("metadata title = %q", res.Metadata.Title)
	}
}

func TestPreviewHTML_TOCToggle(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{})
	markdown := "# Doc\n\n## First\n\ntext\n\n## Second\n\ntext"

	t.Run("enabled by default", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "toc.html")
		res := g.PreviewHTML(context.Background(), Input{Markdown: markdown, OutputPath: output})
		if !res.Success {
			t.Fatalf("failure: %s", res.Message)
		}
		data, _ := os.ReadFile(res.Path)
		if !strings.Contains(string(data), `class="table-of-contents"`) {
			t.Error("TOC missing with default options")
		}
		if !strings.Contains(string(data), `href="#first"`) {
			t.Error("TOC entry for level 2 heading missing")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "notoc.html")
		res := g.PreviewHTML(context.Background(), Input{
			Markdown:   markdown,
			OutputPath: output,
			TOC:        &TOCOptions{Disabled: true},
		})
		if !res.Success {
			t.Fatalf("failure: %s", res.Message)
		}
		data, _ := os.ReadFile(res.Path)
		if strings.Contains(string(data), `class="table-of-contents"`) {
			t.Error("TOC present despite being disabled")
		}
	})
}

func TestPreviewHTML_GreenThemeReplacesAnchors(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{})
	output := filepath.Join(t.TempDir(), "green.html")

	res := g.PreviewHTML(context.Background(), Input{
		Markdown:   "# Green Doc",
		OutputPath: output,
		Theme:      "green",
	})
	if !res.Success {
		t.Fatalf("failure: %s", res.Message)
	}

	data, _ := os.ReadFile(res.Path)
	html := string(data)
	for _, anchor := range []string{AnchorPrimary, AnchorSecondary, AnchorTertiary, AnchorAccent, AnchorLight} {
		if strings.Contains(html, anchor) {
			t.Errorf("anchor %s present in green-themed output", anchor)
		}
	}
}

func TestGeneratePDF(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4\nfake")}
	g := newTestGenerator(t, renderer)
	output := filepath.Join(t.TempDir(), "doc.pdf")

	res := g.GeneratePDF(context.Background(), Input{
		Markdown:   "# Report\n\ncontent",
		OutputPath: output,
	})

	if !res.Success {
		t.Fatalf("failure: %s (%v)", res.Message, res.Err)
	}
	if !filepath.IsAbs(res.Path) {
		t.Errorf("path %q not absolute", res.Path)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	// The fake PDF has no trailer, so metadata stamping degrades to the
	// renderer's bytes unchanged.
	if string(data) != "%PDF-1.4\nfake" {
		t.Errorf("output = %q", data)
	}

	if !strings.Contains(renderer.html, "<h1") {
		t.Error("renderer did not receive the assembled document")
	}
}

func TestGeneratePDF_ValidationFailure(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{})

	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"empty markdown", Input{OutputPath: "o.pdf"}, ErrEmptyMarkdown},
		{"empty output", Input{Markdown: "# T"}, ErrEmptyOutputPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.GeneratePDF(context.Background(), tt.in)
			if res.Success {
				t.Fatal("expected failure")
			}
			if !errors.Is(res.Err, tt.want) {
				t.Errorf("err = %v, want %v", res.Err, tt.want)
			}
			if res.Path != "" {
				t.Errorf("path = %q, want empty on failure", res.Path)
			}
		})
	}
}

func TestGeneratePDF_RenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("browser crashed")}
	g := newTestGenerator(t, renderer)

	res := g.GeneratePDF(context.Background(), Input{
		Markdown:   "# T",
		OutputPath: filepath.Join(t.TempDir(), "doc.pdf"),
	})

	if res.Success {
		t.Fatal("expected failure")
	}
	if !errors.Is(res.Err, ErrRender) {
		t.Errorf("err = %v, want ErrRender in chain", res.Err)
	}
}

func TestGeneratePDF_StyleFallback(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{pdf: []byte("%PDF-1.4\nx")})

	res := g.GeneratePDF(context.Background(), Input{
		Markdown:   "# T",
		OutputPath: filepath.Join(t.TempDir(), "doc.pdf"),
		Style:      "no_such_style",
	})

	if !res.Success {
		t.Fatalf("missing style should fall back to default: %s", res.Message)
	}
}

func TestGeneratePDF_MissingDefaultStyle(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{}, WithStyleLoader(mapLoader{}))

	res := g.GeneratePDF(context.Background(), Input{
		Markdown:   "# T",
		OutputPath: filepath.Join(t.TempDir(), "doc.pdf"),
	})

	if res.Success {
		t.Fatal("expected failure")
	}
	if !errors.Is(res.Err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", res.Err)
	}
}

func TestGeneratePDF_CreatesParentDirs(t *testing.T) {
	g := newTestGenerator(t, &fakeRenderer{pdf: []byte("%PDF-1.4\nx")})
	output := filepath.Join(t.TempDir(), "nested", "deep", "doc.pdf")

	res := g.GeneratePDF(context.Background(), Input{Markdown: "# T", OutputPath: output})
	if !res.Success {
		t.Fatalf("failure: %s", res.Message)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestGeneratePDF_StampsMetadata(t *testing.T) {
	// A structurally valid PDF gets the Info dictionary appended.
	pdf := "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\nxref\n0 2\ntrailer\n<< /Size 2 /Root 1 0 R >>\nstartxref\n40\n%%EOF\n"
	g := newTestGenerator(t, &fakeRenderer{pdf: []byte(pdf)})
	output := filepath.Join(t.TempDir(), "doc.pdf")

	res := g.GeneratePDF(context.Background(), Input{
		Markdown:   "# Annual Review",
		OutputPath: output,
		Author:     "Jamie",
	})
	if !res.Success {
		t.Fatalf("failure: %s", res.Message)
	}

	data, _ := os.ReadFile(res.Path)
	if !strings.Contains(string(data), "/Title (Annual Review)") {
		t.Error("Info dictionary not stamped")
	}
	if !strings.Contains(string(data), "/Author (Jamie)") {
		t.Error("author not stamped")
	}
}

func TestClose(t *testing.T) {
	renderer := &fakeRenderer{}
	g := newTestGenerator(t, renderer)

	if err := g.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !renderer.closed {
		t.Error("renderer not closed")
	}
}
