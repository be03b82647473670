package main

import (
	"strings"

	flag "github.com/spf13/pflag"

	beautify "github.com/haeun-lee/go-beautify"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title    string
	author   string
	subject  string
	keywords string
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	title    string
	minDepth int
	maxDepth int
	disabled bool
}

// styleFlags holds styling flags.
type styleFlags struct {
	template    string
	theme       string
	templateDir string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	timeout  string
	html     bool
	style    styleFlags
	document documentFlags
	toc      tocFlags
}

// beautifyFlags holds all flags for the beautify command.
type beautifyFlags struct {
	common   commonFlags
	output   string
	timeout  string
	html     bool
	provider string
	model    string
	writing  string
	style    styleFlags
	document documentFlags
	toc      tocFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from first H1)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.subject, "subject", "", "document subject")
	fs.StringVar(&f.keywords, "keywords", "", "document keywords, comma-separated")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable table of contents")
}

// addStyleFlags adds styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.template, "style", "s", "", "style template name (default: business_report)")
	fs.StringVar(&f.theme, "theme", "", "color theme: "+strings.Join(beautify.DefaultRegistry().Names(), ", "))
	fs.StringVar(&f.templateDir, "template-dir", "", "directory of custom <name>.css templates")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.html, "html", false, "write styled HTML instead of PDF")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addDocumentFlags(fs, &f.document)
	addTOCFlags(fs, &f.toc)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBeautifyFlags parses beautify command flags and returns positional
// args.
func parseBeautifyFlags(args []string) (*beautifyFlags, []string, error) {
	fs := flag.NewFlagSet("beautify", flag.ContinueOnError)
	f := &beautifyFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.html, "html", false, "write styled HTML instead of PDF")
	fs.StringVar(&f.provider, "provider", "", "language model provider: gemini, anthropic")
	fs.StringVar(&f.model, "model", "", "provider model ID")
	fs.StringVar(&f.writing, "writing-style", "", "writing style: business, academic, casual")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addDocumentFlags(fs, &f.document)
	addTOCFlags(fs, &f.toc)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
