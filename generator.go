package beautify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haeun-lee/go-beautify/internal/assets"
	"github.com/haeun-lee/go-beautify/internal/pdfmeta"
	"github.com/haeun-lee/go-beautify/internal/pipeline"
)

// Generator turns markdown into styled PDF or HTML documents. Construct with
// NewGenerator, reuse across calls, and Close when done to release the
// browser.
//
// A Generator is not safe for concurrent use; create one per goroutine or
// serialize calls.
type Generator struct {
	registry ThemeRegistry
	loader   StyleLoader
	pre      pipeline.MarkdownPreprocessor
	conv     pipeline.HTMLConverter
	renderer pdfRenderer
	timeout  time.Duration
	now      func() time.Time
}

// NewGenerator creates a Generator with the built-in themes and embedded
// style templates. Options override individual pieces.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		registry: DefaultRegistry(),
		loader:   assets.NewEmbeddedLoader(),
		pre:      &pipeline.CommonMarkPreprocessor{},
		conv:     pipeline.NewGoldmarkConverter(),
		timeout:  DefaultTimeout,
		now:      time.Now,
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	if g.renderer == nil {
		g.renderer = newRodRenderer(g.timeout)
	}

	return g, nil
}

// Close releases the rendering browser. Safe to call multiple times.
func (g *Generator) Close() error {
	return g.renderer.Close()
}

// GeneratePDF converts markdown to a styled PDF at in.OutputPath. The
// returned Result always has Success set; on failure Err wraps one of the
// error-kind sentinels.
func (g *Generator) GeneratePDF(ctx context.Context, in Input) Result {
	doc, meta, res := g.buildDocument(ctx, in)
	if !res.Success {
		return res
	}

	pdf, err := g.renderer.RenderHTML(ctx, doc)
	if err != nil {
		if !errors.Is(err, ErrRender) {
			err = fmt.Errorf("%w: %v", ErrRender, err)
		}
		return failure("rendering PDF", err)
	}

	// Stamp document information. Stamping is best-effort: a PDF whose
	// trailer cannot be parsed ships without the Info dictionary rather
	// than failing the whole run.
	if stamped, err := pdfmeta.Apply(pdf, pdfmeta.Info{
		Title:    meta.Title,
		Author:   meta.Author,
		Subject:  meta.Subject,
		Keywords: meta.Keywords,
		Creator:  meta.Creator,
		Producer: "go-beautify with headless Chrome",
		Created:  g.now(),
	}); err == nil {
		pdf = stamped
	}

	path, err := emit(in.OutputPath, pdf)
	if err != nil {
		return failure("writing output", err)
	}

	return success(path, meta, "PDF generated successfully")
}

// PreviewHTML assembles the complete styled HTML document and writes it to
// in.OutputPath instead of rendering a PDF. No browser is involved.
func (g *Generator) PreviewHTML(ctx context.Context, in Input) Result {
	doc, meta, res := g.buildDocument(ctx, in)
	if !res.Success {
		return res
	}

	path, err := emit(in.OutputPath, []byte(doc))
	if err != nil {
		return failure("writing output", err)
	}

	return success(path, meta, "HTML generated successfully")
}

// buildDocument runs the shared pipeline stages: validation, metadata,
// stylesheet materialization, markdown conversion, post-processing, TOC, and
// document assembly. On failure the returned Result carries the error and
// the other return values are zero.
func (g *Generator) buildDocument(ctx context.Context, in Input) (string, Metadata, Result) {
	if err := in.validate(); err != nil {
		return "", Metadata{}, failure("validating input", err)
	}

	meta := buildMetadata(in)
	theme := g.registry.Resolve(in.Theme)

	css, err := materializeStylesheet(g.loader, in.style(), theme)
	if err != nil {
		return "", Metadata{}, failure("materializing stylesheet", err)
	}

	pre := g.pre.PreprocessMarkdown(ctx, in.Markdown)

	fragment, err := g.conv.ToHTML(ctx, pre.Markdown)
	if err != nil {
		if !errors.Is(err, ErrConversion) {
			err = fmt.Errorf("%w: %v", ErrConversion, err)
		}
		return "", Metadata{}, failure("converting markdown", err)
	}

	fragment = pipeline.ApplyCallouts(fragment)
	fragment = pipeline.ApplyAbbreviations(fragment, pre.Abbreviations)

	var toc string
	if in.TOC.enabled() {
		minDepth, maxDepth := in.TOC.depthRange()
		toc = pipeline.BuildTOC(pipeline.ExtractHeadings(fragment), minDepth, maxDepth, in.TOC.title())
	}

	doc := pipeline.AssembleDocument(pipeline.DocumentParts{
		Title: meta.Title,
		Meta: map[string]string{
			"author":      meta.Author,
			"description": meta.Subject,
			"keywords":    meta.Keywords,
			"generator":   meta.Creator,
		},
		CSS:     css,
		TOC:     toc,
		Body:    fragment,
		Created: g.now(),
	})

	return doc, meta, Result{Success: true}
}

// emit writes data to outputPath, creating parent directories as needed, and
// returns the absolute path.
func emit(outputPath string, data []byte) (string, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("%w: creating directory %q: %v", ErrOutputWrite, dir, err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil { // #nosec G306 -- documents are world-readable artifacts
		return "", fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil
	}
	return abs, nil
}
