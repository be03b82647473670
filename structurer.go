package beautify

import (
	"context"
	"fmt"
	"strings"

	"github.com/haeun-lee/go-beautify/llm"
)

// Structurer turns unstructured text into well-formed markdown using a
// language model. The prompt adapts to the requested writing style.
type Structurer struct {
	model llm.Model
}

// NewStructurer creates a Structurer backed by the given model.
func NewStructurer(model llm.Model) (*Structurer, error) {
	if model == nil {
		return nil, fmt.Errorf("%w", ErrNoModel)
	}
	return &Structurer{model: model}, nil
}

// Writing styles recognized by the structuring prompt. Unknown styles fall
// back to business.
const (
	StyleBusiness = "business"
	StyleAcademic = "academic"
	StyleCasual   = "casual"
)

var styleInstructions = map[string]string{
	StyleBusiness: `- Follow a business report format
- Use clear, concise sentences
- Emphasize key points
- Organize content into tables or lists where helpful
- Divide sections logically`,
	StyleAcademic: `- Follow an academic paper format
- Maintain an introduction, body, and conclusion structure
- Mark places that need citations or references
- Use a professional, formal tone`,
	StyleCasual: `- Use an easy-to-read, friendly format
- Prefer short paragraphs and simple sentences
- Use emphasis sparingly where it helps`,
}

// systemPrompt builds the model's system instruction for the given style.
func systemPrompt(style string) string {
	instructions, ok := styleInstructions[style]
	if !ok {
		instructions = styleInstructions[StyleBusiness]
	}

	return `You are an expert at transforming text into beautiful documents.
Analyze the given text and convert it into well-structured markdown.

Style guidelines:
` + instructions + `

Markdown rules:
1. Use heading hierarchy correctly (# main title, ## sections, ### subsections)
2. Mark key content in **bold**
3. Convert content that reads better as lists or tables
4. Split long text into logical sections
5. Use fenced code blocks for code or technical content
6. Put important notes in > blockquotes

Respond with markdown only. Do not add any explanation.`
}

// userPrompt builds the model's user message, anchoring the document title
// when the caller supplied one.
func userPrompt(text, title string) string {
	if title != "" {
		return fmt.Sprintf("Convert the following text into a structured markdown document titled %q:\n\n%s", title, text)
	}
	return "Analyze the following text, give it an appropriate title, and convert it into a structured markdown document:\n\n" + text
}

// Structure converts raw text into structured markdown. An empty title lets
// the model choose one; unknown styles use the business prompt.
func (s *Structurer) Structure(ctx context.Context, text, title, style string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w", ErrEmptyText)
	}

	markdown, err := s.model.Generate(ctx, systemPrompt(style), userPrompt(text, title))
	if err != nil {
		return "", err
	}

	markdown = stripCodeFence(markdown)
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("%w", ErrEmptyStructure)
	}
	return markdown, nil
}

// stripCodeFence unwraps a response the model wrapped in a single markdown
// code fence. Fences inside the document are left alone.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return s
	}

	inner := strings.TrimSuffix(trimmed, "```")
	if idx := strings.IndexByte(inner, '\n'); idx >= 0 {
		inner = inner[idx+1:]
	} else {
		return s
	}

	// A fence closing mid-document means the wrapper fence is load-bearing.
	if strings.Contains(inner, "```") {
		return s
	}
	return strings.TrimSpace(inner)
}
