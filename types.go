package beautify

import "fmt"

// TOC depth bounds and defaults. By default only level 2 and 3 headings
// participate in the table of contents.
const (
	MinTOCDepth        = 1
	MaxTOCDepth        = 6
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// DefaultStyle is the style template used when Input.Style is empty and the
// mandatory fallback when a named template is missing.
const DefaultStyle = "business_report"

// TOCOptions configures table of contents generation. A nil *TOCOptions on
// Input means TOC enabled with the default depth range.
type TOCOptions struct {
	Disabled bool
	Title    string // heading above the TOC (default: "Table of Contents")
	MinDepth int    // lowest heading level included (default: 2)
	MaxDepth int    // highest heading level included (default: 3)
}

// DefaultTOCTitle is the heading rendered above the TOC block.
const DefaultTOCTitle = "Table of Contents"

// Validate checks the depth range. Returns nil if t is nil (nil means
// defaults). Zero depths mean "use default" and are not an error.
func (t *TOCOptions) Validate() error {
	if t == nil {
		return nil
	}
	min, max := t.depthRange()
	if min < MinTOCDepth || min > MaxTOCDepth {
		return fmt.Errorf("%w: min depth %d (must be between %d and %d)", ErrInvalidTOCDepth, min, MinTOCDepth, MaxTOCDepth)
	}
	if max < MinTOCDepth || max > MaxTOCDepth {
		return fmt.Errorf("%w: max depth %d (must be between %d and %d)", ErrInvalidTOCDepth, max, MinTOCDepth, MaxTOCDepth)
	}
	if min > max {
		return fmt.Errorf("%w: min depth %d exceeds max depth %d", ErrInvalidTOCDepth, min, max)
	}
	return nil
}

// depthRange resolves the effective depth range, applying defaults for
// zero values.
func (t *TOCOptions) depthRange() (min, max int) {
	min, max = DefaultTOCMinDepth, DefaultTOCMaxDepth
	if t == nil {
		return min, max
	}
	if t.MinDepth != 0 {
		min = t.MinDepth
	}
	if t.MaxDepth != 0 {
		max = t.MaxDepth
	}
	return min, max
}

// enabled reports whether a TOC should be generated.
func (t *TOCOptions) enabled() bool {
	return t == nil || !t.Disabled
}

// title resolves the TOC heading text.
func (t *TOCOptions) title() string {
	if t != nil && t.Title != "" {
		return t.Title
	}
	return DefaultTOCTitle
}

// Input contains the parameters for one document generation call.
type Input struct {
	Markdown   string            // markdown content (required)
	OutputPath string            // output file path (required)
	Style      string            // style template name (default "business_report")
	Theme      string            // theme name (unknown names fall back to the default theme)
	Title      string            // explicit title; wins over Metadata and heading extraction
	Author     string            // explicit author; wins over Metadata
	Metadata   map[string]string // optional: title, author, subject, keywords, creator
	TOC        *TOCOptions       // nil = TOC enabled with default depth 2-3
}

// validate checks required fields and option ranges.
func (in Input) validate() error {
	if in.Markdown == "" {
		return fmt.Errorf("%w", ErrEmptyMarkdown)
	}
	if in.OutputPath == "" {
		return fmt.Errorf("%w", ErrEmptyOutputPath)
	}
	return in.TOC.Validate()
}

// style resolves the effective style template name.
func (in Input) style() string {
	if in.Style != "" {
		return in.Style
	}
	return DefaultStyle
}

// Result reports the outcome of a generation call. Success is the primary
// signal; on failure Path is empty, Message carries a human-readable stage
// description, and Err wraps the error-kind sentinel for errors.Is checks.
type Result struct {
	Success  bool
	Path     string   // absolute artifact path, empty on failure
	Markdown string   // markdown that was rendered (set by Beautifier operations)
	Metadata Metadata // metadata attached to the artifact
	Message  string
	Err      error // nil on success
}

// failure builds a failed Result with a stage-prefixed message.
func failure(stage string, err error) Result {
	return Result{
		Success: false,
		Message: stage + ": " + err.Error(),
		Err:     fmt.Errorf("%s: %w", stage, err),
	}
}

// success builds a successful Result for the artifact at path.
func success(path string, meta Metadata, message string) Result {
	return Result{
		Success:  true,
		Path:     path,
		Metadata: meta,
		Message:  message,
	}
}
