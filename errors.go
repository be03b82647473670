package beautify

import "errors"

// Error kinds surfaced through Result.Err. Each pipeline failure wraps
// exactly one of these, so callers can branch with errors.Is instead of
// matching message text.
var (
	// ErrConfiguration indicates a required style template is missing even
	// after falling back to the default, or generator options are invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrConversion indicates the markdown-to-HTML stage failed internally.
	ErrConversion = errors.New("markdown conversion failed")

	// ErrRender indicates the HTML-to-PDF engine failed.
	ErrRender = errors.New("PDF rendering failed")

	// ErrOutputWrite indicates the output path could not be created or written.
	ErrOutputWrite = errors.New("output write failed")
)

// Input validation errors.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrEmptyText       = errors.New("text content cannot be empty")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")
)

// Rendering engine errors (wrapped under ErrRender by the generator).
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// Structurer errors.
var (
	ErrNoModel        = errors.New("no language model configured")
	ErrEmptyStructure = errors.New("model returned empty markdown")
)
