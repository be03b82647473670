package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	beautify "github.com/haeun-lee/go-beautify"
	"github.com/haeun-lee/go-beautify/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

var errUsage = errors.New(usage)

const usage = `Usage: beautify <command> [flags] <input>

Commands:
  convert    render a markdown file to a styled PDF (or HTML with --html)
  beautify   structure raw text with a language model, then render it
  version    print the version

Run "beautify <command> --help" for command flags.`

// run dispatches the subcommand. args is os.Args.
func run(args []string, env *Environment) error {
	if len(args) < 2 {
		return errUsage
	}

	switch args[1] {
	case "convert":
		return runConvert(args[2:], env)
	case "beautify":
		return runBeautify(args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "beautify %s\n", Version)
		return nil
	case "help", "--help", "-h":
		fmt.Fprintln(env.Stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[1], usage)
	}
}

// runConvert renders a markdown file to PDF or HTML.
func runConvert(args []string, env *Environment) error {
	f, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return errors.New("convert: expected exactly one input file (use \"-\" for stdin)")
	}

	if err := loadConfigInto(env, f.common.config); err != nil {
		return err
	}

	markdown, err := readInput(positional[0])
	if err != nil {
		return err
	}

	html := f.html || env.Config.Output.HTML
	output := resolveOutputPath(f.output, positional[0], env.Config.Output.DefaultDir, html)

	theme := firstNonEmpty(f.style.theme, env.Config.Style.Theme)
	if err := validateTheme(theme); err != nil {
		return err
	}

	opts, err := generatorOptions(f.style.templateDir, f.timeout, env)
	if err != nil {
		return err
	}

	gen, err := env.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	in := beautify.Input{
		Markdown:   markdown,
		OutputPath: output,
		Style:      firstNonEmpty(f.style.template, env.Config.Style.Template),
		Theme:      theme,
		Title:      firstNonEmpty(f.document.title, env.Config.Document.Title),
		Author:     firstNonEmpty(f.document.author, env.Config.Document.Author),
		Metadata: map[string]string{
			"subject":  firstNonEmpty(f.document.subject, env.Config.Document.Subject),
			"keywords": firstNonEmpty(f.document.keywords, env.Config.Document.Keywords),
		},
		TOC: resolveTOC(f.toc, env.Config.TOC),
	}

	return emitResult(renderDocument(gen, in, html), f.common.quiet, env)
}

// runBeautify structures raw text through a language model, then renders the
// resulting markdown.
func runBeautify(args []string, env *Environment) error {
	f, positional, err := parseBeautifyFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return errors.New("beautify: expected exactly one input file (use \"-\" for stdin)")
	}

	if err := loadConfigInto(env, f.common.config); err != nil {
		return err
	}

	text, err := readInput(positional[0])
	if err != nil {
		return err
	}

	provider := strings.ToLower(firstNonEmpty(f.provider, env.Config.LLM.Provider, "gemini"))
	modelID := firstNonEmpty(f.model, env.Config.LLM.Model)
	writing := firstNonEmpty(f.writing, env.Config.LLM.Style, beautify.StyleBusiness)

	ctx := context.Background()
	model, err := env.NewModel(ctx, provider, modelID, apiKey(provider, env))
	if err != nil {
		return err
	}

	structurer, err := beautify.NewStructurer(model)
	if err != nil {
		return err
	}

	if f.common.verbose {
		fmt.Fprintln(env.Stderr, "Structuring text...")
	}
	markdown, err := structurer.Structure(ctx, text, f.document.title, writing)
	if err != nil {
		return err
	}

	html := f.html || env.Config.Output.HTML
	output := resolveOutputPath(f.output, positional[0], env.Config.Output.DefaultDir, html)

	theme := firstNonEmpty(f.style.theme, env.Config.Style.Theme)
	if err := validateTheme(theme); err != nil {
		return err
	}

	opts, err := generatorOptions(f.style.templateDir, f.timeout, env)
	if err != nil {
		return err
	}

	gen, err := env.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	in := beautify.Input{
		Markdown:   markdown,
		OutputPath: output,
		Style:      firstNonEmpty(f.style.template, templateForWriting(writing), env.Config.Style.Template),
		Theme:      theme,
		Title:      firstNonEmpty(f.document.title, env.Config.Document.Title),
		Author:     firstNonEmpty(f.document.author, env.Config.Document.Author),
		Metadata: map[string]string{
			"subject":  firstNonEmpty(f.document.subject, env.Config.Document.Subject),
			"keywords": firstNonEmpty(f.document.keywords, env.Config.Document.Keywords),
		},
		TOC: resolveTOC(f.toc, env.Config.TOC),
	}

	return emitResult(renderDocument(gen, in, html), f.common.quiet, env)
}

// renderDocument routes to the HTML or PDF pipeline.
func renderDocument(gen documentGenerator, in beautify.Input, html bool) beautify.Result {
	if html {
		return gen.PreviewHTML(context.Background(), in)
	}
	return gen.GeneratePDF(context.Background(), in)
}

// emitResult reports the outcome and converts a failed Result to an error.
func emitResult(res beautify.Result, quiet bool, env *Environment) error {
	if !res.Success {
		return res.Err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "%s\n", res.Path)
	}
	return nil
}

// loadConfigInto replaces env.Config when a config name or path was given.
func loadConfigInto(env *Environment, nameOrPath string) error {
	if nameOrPath == "" {
		return nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return err
	}
	env.Config = cfg
	return nil
}

// generatorOptions maps CLI flags onto Generator options.
func generatorOptions(templateDir, timeout string, env *Environment) ([]beautify.Option, error) {
	var opts []beautify.Option

	dir := firstNonEmpty(templateDir, env.Config.Templates.Dir)
	if dir != "" {
		opts = append(opts, beautify.WithTemplateDir(dir))
	}

	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
		}
		opts = append(opts, beautify.WithTimeout(d))
	}

	opts = append(opts, beautify.WithNow(env.Now))
	return opts, nil
}

// resolveTOC merges TOC flags with config defaults. Flags win.
func resolveTOC(f tocFlags, cfg config.TOCConfig) *beautify.TOCOptions {
	return &beautify.TOCOptions{
		Disabled: f.disabled || cfg.Disabled,
		Title:    firstNonEmpty(f.title, cfg.Title),
		MinDepth: firstNonZero(f.minDepth, cfg.MinDepth),
		MaxDepth: firstNonZero(f.maxDepth, cfg.MaxDepth),
	}
}

// validateTheme rejects unknown theme names up front. The library falls back
// to the default theme for unknown names; the CLI surfaces the typo instead.
func validateTheme(name string) error {
	if name == "" {
		return nil
	}
	reg := beautify.DefaultRegistry()
	if !reg.Has(name) {
		return fmt.Errorf("unknown theme %q (themes: %s)", name, strings.Join(reg.Names(), ", "))
	}
	return nil
}

// templateForWriting maps a writing style to its default style template.
func templateForWriting(writing string) string {
	switch writing {
	case beautify.StyleAcademic:
		return "academic_paper"
	case beautify.StyleCasual:
		return "casual_note"
	default:
		return ""
	}
}

// apiKey returns the provider credential from the environment.
func apiKey(provider string, env *Environment) string {
	if provider == "anthropic" {
		return env.Getenv(envAnthropicKey)
	}
	return env.Getenv(envGeminiKey)
}

// readInput reads the file at path, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// resolveOutputPath picks the output path: the explicit flag, or the input
// basename with the target extension, placed in defaultDir when configured.
func resolveOutputPath(flagValue, inputPath, defaultDir string, html bool) string {
	if flagValue != "" {
		return flagValue
	}

	ext := ".pdf"
	if html {
		ext = ".html"
	}

	base := "output"
	if inputPath != "-" {
		name := filepath.Base(inputPath)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if defaultDir != "" {
		return filepath.Join(defaultDir, base+ext)
	}
	return base + ext
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNonZero returns the first non-zero int.
func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
