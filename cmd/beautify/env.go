package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	beautify "github.com/haeun-lee/go-beautify"
	"github.com/haeun-lee/go-beautify/internal/config"
	"github.com/haeun-lee/go-beautify/llm"
	"github.com/haeun-lee/go-beautify/llm/anthropic"
	"github.com/haeun-lee/go-beautify/llm/gemini"
)

// documentGenerator is the subset of *beautify.Generator the CLI uses,
// abstracted so tests can run without a browser.
type documentGenerator interface {
	GeneratePDF(ctx context.Context, in beautify.Input) beautify.Result
	PreviewHTML(ctx context.Context, in beautify.Input) beautify.Result
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	Config       *config.Config
	NewGenerator func(opts ...beautify.Option) (documentGenerator, error)
	NewModel     func(ctx context.Context, provider, modelID, apiKey string) (llm.Model, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Config: config.DefaultConfig(),
		NewGenerator: func(opts ...beautify.Option) (documentGenerator, error) {
			return beautify.NewGenerator(opts...)
		},
		NewModel: newModel,
	}
}

// Environment variables carrying provider credentials.
const (
	envGeminiKey    = "GEMINI_API_KEY"
	envAnthropicKey = "ANTHROPIC_API_KEY"
)

// newModel constructs the provider client for the beautify command.
func newModel(ctx context.Context, provider, modelID, apiKey string) (llm.Model, error) {
	switch provider {
	case "gemini", "":
		var opts []gemini.Option
		if modelID != "" {
			opts = append(opts, gemini.WithModel(modelID))
		}
		return gemini.New(ctx, apiKey, opts...)
	case "anthropic":
		var opts []anthropic.Option
		if modelID != "" {
			opts = append(opts, anthropic.WithModel(modelID))
		}
		return anthropic.New(apiKey, opts...)
	default:
		return nil, fmt.Errorf("unknown provider %q (must be gemini or anthropic)", provider)
	}
}
