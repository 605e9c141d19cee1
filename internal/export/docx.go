package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/verba/internal/models"
)

const fontName = "Times New Roman"

// runStyle is the formatting applied to one text run.
type runStyle struct {
	size  uint64
	color string
	bold  bool
}

var (
	bodyStyle = runStyle{size: 13, color: "000000"}
	noteStyle = runStyle{size: 13, color: "555555"}

	// Deeper headings fall back to the body size.
	headingSizes = map[int]uint64{1: 16, 2: 15, 3: 14}
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reNote    = regexp.MustCompile(`^\*([^*].*)\*$`)

	stripMarkers = strings.NewReplacer("**", "", "__", "", "`", "")
)

// WriteDocx renders the session markdown into a styled docx file at path.
func WriteDocx(s models.Session, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for _, line := range strings.Split(Markdown(s), "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		switch m := reHeading.FindStringSubmatch(trimmed); {
		case m != nil:
			style := bodyStyle
			style.bold = true
			if size, ok := headingSizes[len(m[1])]; ok {
				style.size = size
			}
			writeSpans(doc.AddParagraph(""), m[2], style)
		case reNote.MatchString(trimmed):
			writeSpans(doc.AddParagraph(""), reNote.FindStringSubmatch(trimmed)[1], noteStyle)
		default:
			writeSpans(doc.AddParagraph(""), trimmed, bodyStyle)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Docx renders the session as docx bytes, using tempDir for the
// intermediate file.
func Docx(s models.Session, tempDir string) ([]byte, error) {
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	dir, err := os.MkdirTemp(tempDir, "export-*")
	if err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, FileName(s.ID, FormatDocx))
	if err := WriteDocx(s, path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// span is a piece of a line with its own weight.
type span struct {
	text string
	bold bool
}

// inlineSpans splits a markdown line on **bold** runs and drops any
// leftover emphasis or code markers.
func inlineSpans(line string) []span {
	var spans []span
	add := func(text string, bold bool) {
		if text = stripMarkers.Replace(text); text != "" {
			spans = append(spans, span{text: text, bold: bold})
		}
	}

	last := 0
	for _, m := range reBold.FindAllStringSubmatchIndex(line, -1) {
		add(line[last:m[0]], false)
		add(line[m[2]:m[3]], true)
		last = m[1]
	}
	add(line[last:], false)
	return spans
}

func writeSpans(p *docx.Paragraph, line string, base runStyle) {
	for _, sp := range inlineSpans(line) {
		style := base
		style.bold = base.bold || sp.bold
		addRun(p, sp.text, style)
	}
}

func addRun(p *docx.Paragraph, text string, style runStyle) {
	run := p.AddText(text).Font(fontName).Size(style.size).Color(style.color)
	if style.bold {
		run.Bold(true)
	}
}
