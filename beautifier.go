package beautify

import (
	"context"

	"github.com/haeun-lee/go-beautify/llm"
)

// styleTemplates maps writing styles to the style template rendered for
// them. Unknown writing styles use the default template.
var styleTemplates = map[string]string{
	StyleBusiness: "business_report",
	StyleAcademic: "academic_paper",
	StyleCasual:   "casual_note",
}

// BeautifyInput contains the parameters for one text beautification call.
type BeautifyInput struct {
	Text       string      // raw unstructured text (required)
	OutputPath string      // output file path (required)
	Title      string      // document title; empty lets the model choose
	Style      string      // writing style: business, academic, or casual
	Theme      string      // color theme name
	Author     string      // document author
	TOC        *TOCOptions // nil = TOC enabled with defaults
}

// Beautifier is the front door for unstructured text: it structures the text
// into markdown with a language model, then renders it through a Generator.
type Beautifier struct {
	structurer *Structurer
	generator  *Generator
}

// NewBeautifier creates a Beautifier backed by the given model. Options are
// forwarded to the underlying Generator.
func NewBeautifier(model llm.Model, opts ...Option) (*Beautifier, error) {
	structurer, err := NewStructurer(model)
	if err != nil {
		return nil, err
	}

	generator, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}

	return &Beautifier{structurer: structurer, generator: generator}, nil
}

// Close releases the underlying Generator's resources.
func (b *Beautifier) Close() error {
	return b.generator.Close()
}

// Generator exposes the underlying Generator for direct markdown input.
func (b *Beautifier) Generator() *Generator {
	return b.generator
}

// Beautify structures raw text into markdown and renders it to a PDF at
// in.OutputPath. Result.Markdown carries the structured markdown whenever
// structuring succeeded, including when the later render fails, so callers
// can keep the intermediate document.
func (b *Beautifier) Beautify(ctx context.Context, in BeautifyInput) Result {
	markdown, res := b.structure(ctx, in)
	if !res.Success {
		return res
	}

	result := b.generator.GeneratePDF(ctx, b.generatorInput(in, markdown))
	result.Markdown = markdown
	return result
}

// PreviewHTML structures raw text into markdown and writes the styled HTML
// document instead of rendering a PDF.
func (b *Beautifier) PreviewHTML(ctx context.Context, in BeautifyInput) Result {
	markdown, res := b.structure(ctx, in)
	if !res.Success {
		return res
	}

	result := b.generator.PreviewHTML(ctx, b.generatorInput(in, markdown))
	result.Markdown = markdown
	return result
}

// structure runs the language model stage.
func (b *Beautifier) structure(ctx context.Context, in BeautifyInput) (string, Result) {
	markdown, err := b.structurer.Structure(ctx, in.Text, in.Title, in.Style)
	if err != nil {
		return "", failure("structuring text", err)
	}
	return markdown, Result{Success: true}
}

// generatorInput maps a BeautifyInput plus structured markdown onto the
// Generator's Input.
func (b *Beautifier) generatorInput(in BeautifyInput, markdown string) Input {
	template, ok := styleTemplates[in.Style]
	if !ok {
		template = DefaultStyle
	}

	return Input{
		Markdown:   markdown,
		OutputPath: in.OutputPath,
		Style:      template,
		Theme:      in.Theme,
		Title:      in.Title,
		Author:     in.Author,
		TOC:        in.TOC,
	}
}
