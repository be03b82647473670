package beautify

import "strings"

// Default metadata values applied when neither explicit fields nor the
// caller-supplied map provide them.
const (
	DefaultTitle   = "Document"
	DefaultAuthor  = "PDF Beautifier"
	DefaultCreator = "go-beautify"
)

// Metadata holds the recognized document metadata fields. Title and Author
// are always populated before a document is emitted; the remaining fields
// may be empty.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// buildMetadata merges metadata sources in precedence order: explicit input
// fields win over the caller-supplied map, which wins over computed defaults.
// The default title is the first level-1 heading of the markdown, or the
// literal "Document" when none exists.
func buildMetadata(in Input) Metadata {
	meta := Metadata{
		Title:    in.Metadata["title"],
		Author:   in.Metadata["author"],
		Subject:  in.Metadata["subject"],
		Keywords: in.Metadata["keywords"],
		Creator:  in.Metadata["creator"],
	}

	if in.Title != "" {
		meta.Title = in.Title
	}
	if in.Author != "" {
		meta.Author = in.Author
	}

	if meta.Title == "" {
		meta.Title = ExtractTitle(in.Markdown)
	}
	if meta.Author == "" {
		meta.Author = DefaultAuthor
	}
	if meta.Subject == "" {
		meta.Subject = meta.Title + " - Generated Report"
	}
	if meta.Creator == "" {
		meta.Creator = DefaultCreator
	}

	return meta
}

// ExtractTitle returns the text of the first level-1 heading in the
// markdown, or "Document" when no such heading exists.
func ExtractTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			if title := strings.TrimSpace(strings.TrimPrefix(line, "# ")); title != "" {
				return title
			}
		}
	}
	return DefaultTitle
}
