// Package pdfmeta stamps document information metadata onto a finished PDF.
//
// Headless Chrome's print-to-PDF has no metadata parameters, so the Info
// dictionary is attached afterwards as a PDF incremental update: the
// original bytes stay untouched and a new Info object, cross-reference
// section, and trailer are appended. Readers resolve the newest trailer
// first, so the appended Info wins.
package pdfmeta

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Errors returned when the PDF cannot be extended.
var (
	ErrNotPDF      = errors.New("not a PDF document")
	ErrNoCrossRef  = errors.New("no startxref offset")
	ErrMissingRoot = errors.New("trailer has no document catalog reference")
	ErrMissingSize = errors.New("trailer has no size entry")
)

// Info holds the document information entries to stamp. Empty fields are
// omitted from the dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	Created  time.Time
}

var (
	startXrefPattern = regexp.MustCompile(`(?s)startxref\s+(\d+)\s*%%EOF`)
	sizePattern      = regexp.MustCompile(`/Size\s+(\d+)`)
	rootPattern      = regexp.MustCompile(`/Root\s+(\d+)\s+(\d+)\s+R`)
)

// Apply returns a copy of pdf with the Info dictionary appended as an
// incremental update. The input must be a classic cross-reference table PDF
// with a parsable trailer.
func Apply(pdf []byte, info Info) ([]byte, error) {
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	// Search the tail of the file; the active trailer is the last one.
	tail := pdf
	if len(tail) > 4096 {
		tail = tail[len(tail)-4096:]
	}

	xrefMatches := startXrefPattern.FindAllSubmatch(tail, -1)
	if len(xrefMatches) == 0 {
		return nil, ErrNoCrossRef
	}
	prevXref, err := strconv.Atoi(string(xrefMatches[len(xrefMatches)-1][1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCrossRef, err)
	}

	sizeMatches := sizePattern.FindAllSubmatch(tail, -1)
	if len(sizeMatches) == 0 {
		return nil, ErrMissingSize
	}
	size, err := strconv.Atoi(string(sizeMatches[len(sizeMatches)-1][1]))
	if err != nil || size < 1 {
		return nil, ErrMissingSize
	}

	rootMatches := rootPattern.FindAllSubmatch(tail, -1)
	if len(rootMatches) == 0 {
		return nil, ErrMissingRoot
	}
	root := rootMatches[len(rootMatches)-1]
	rootRef := fmt.Sprintf("%s %s R", root[1], root[2])

	infoNum := size // next free object number

	var update bytes.Buffer
	update.Write(pdf)
	if pdf[len(pdf)-1] != '\n' {
		update.WriteByte('\n')
	}

	objOffset := update.Len()
	update.WriteString(fmt.Sprintf("%d 0 obj\n", infoNum))
	update.WriteString(infoDict(info))
	update.WriteString("endobj\n")

	xrefOffset := update.Len()
	update.WriteString("xref\n")
	update.WriteString(fmt.Sprintf("%d 1\n", infoNum))
	update.WriteString(fmt.Sprintf("%010d 00000 n \n", objOffset))
	update.WriteString("trailer\n")
	update.WriteString(fmt.Sprintf("<< /Size %d /Root %s /Prev %d /Info %d 0 R >>\n", infoNum+1, rootRef, prevXref, infoNum))
	update.WriteString("startxref\n")
	update.WriteString(fmt.Sprintf("%d\n", xrefOffset))
	update.WriteString("%%EOF\n")

	return update.Bytes(), nil
}

// infoDict serializes the non-empty fields as a PDF dictionary.
func infoDict(info Info) string {
	var b strings.Builder
	b.WriteString("<<")

	write := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(" /" + key + " " + encodeString(value))
	}

	write("Title", info.Title)
	write("Author", info.Author)
	write("Subject", info.Subject)
	write("Keywords", info.Keywords)
	write("Creator", info.Creator)
	write("Producer", info.Producer)
	if !info.Created.IsZero() {
		b.WriteString(" /CreationDate " + encodeDate(info.Created))
	}

	b.WriteString(" >>\n")
	return b.String()
}

// encodeString renders a PDF string. ASCII-only values become escaped
// literal strings; anything else becomes a UTF-16BE hex string with BOM.
func encodeString(s string) string {
	ascii := true
	for _, r := range s {
		if r > 126 || r < 32 {
			ascii = false
			break
		}
	}

	if ascii {
		escaped := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
		return "(" + escaped + ")"
	}

	var b strings.Builder
	b.WriteString("<FEFF")
	for _, u := range utf16.Encode([]rune(s)) {
		fmt.Fprintf(&b, "%04X", u)
	}
	b.WriteString(">")
	return b.String()
}

// encodeDate renders a PDF date string (D:YYYYMMDDHHmmSSOHH'mm').
func encodeDate(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	offH := offset / 3600
	offM := (offset % 3600) / 60
	return fmt.Sprintf("(D:%s%s%02d'%02d')", t.Format("20060102150405"), sign, offH, offM)
}
