// Package export renders sessions into downloadable documents.
package export

import (
	"fmt"
	"strings"
)

// Format is an export document format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatDocx     Format = "docx"
)

// ParseFormat maps user input to a Format. Empty input means markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "docx", "word":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatDocx {
		return "docx"
	}
	return "md"
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatDocx {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "text/markdown; charset=utf-8"
}

// Document is a rendered export ready to be saved or served.
type Document struct {
	Name        string
	ContentType string
	Body        []byte
}

// FileName returns verba-session-<first 8 chars of id>.<ext>.
func FileName(id string, f Format) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("verba-session-%s.%s", short, f.Extension())
}
