// Package beautify turns Markdown (or raw text, via an LLM structurer) into
// styled HTML and PDF documents.
//
// # Quick Start
//
// Create a generator, render markdown, and close when done:
//
//	gen, err := beautify.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	res := gen.GeneratePDF(ctx, beautify.Input{
//	    Markdown:   "# Quarterly Report\n\nHello **world**.",
//	    OutputPath: "out/report.pdf",
//	    Style:      "business_report",
//	    Theme:      "blue",
//	})
//	if !res.Success {
//	    log.Fatal(res.Message)
//	}
//
// Generation never returns a raised error: both GeneratePDF and PreviewHTML
// report success or failure through a Result. Result.Err carries a wrapped
// sentinel (ErrConfiguration, ErrConversion, ErrRender, ErrOutputWrite) so
// integration code can still branch on the error kind with errors.Is.
//
// # Rendering Pipeline
//
// The document pipeline follows these stages:
//
//  1. Markdown preprocessing (line normalization, [[wiki links]], callouts)
//  2. Markdown to HTML conversion via Goldmark (GFM superset, highlighting)
//  3. Table of contents extraction from rendered headings (depth 2-3)
//  4. Stylesheet materialization (style template + theme color substitution)
//  5. Document assembly (skeleton, metadata tags, TOC block)
//  6. Emission: self-contained HTML file, or PDF via headless Chrome with
//     document metadata attached
//
// # Themes and Styles
//
// A style is a CSS template; a theme is a named set of five color tokens
// substituted into the template. Unknown theme names fall back to the
// registry default. Style templates are resolved from a template directory
// when configured, falling back to the embedded business_report template.
//
//	gen, err := beautify.NewGenerator(
//	    beautify.WithTemplateDir("/path/to/templates"),
//	    beautify.WithThemeRegistry(beautify.DefaultRegistry()),
//	    beautify.WithTimeout(2 * time.Minute),
//	)
//
// # Text Structuring
//
// Beautifier chains an LLM-backed Structurer in front of the generator so
// free-form text becomes structured markdown before rendering:
//
//	bea, err := beautify.NewBeautifier(model)
//	res := bea.Beautify(ctx, beautify.BeautifyInput{
//	    Text:       rawNotes,
//	    OutputPath: "out/report.pdf",
//	    Style:      "business",
//	})
//
// The LLM itself stays behind the llm.Model interface; see the llm/gemini
// and llm/anthropic packages for concrete clients.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. For containers and CI,
// set ROD_NO_SANDBOX=1; use ROD_BROWSER_BIN to point at a custom binary.
package beautify
