package export

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/verba/internal/models"
)

const (
	Title       = "Meeting Summary"
	DateLayout  = "January 02, 2006 at 03:04 PM"
	Attribution = "Generated by Verba - Offline-first meeting assistant"
)

// Markdown renders a session. Sections always appear in the same order;
// decisions and action items are omitted when empty.
func Markdown(s models.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title)
	fmt.Fprintf(&b, "**Date:** %s\n\n", s.CreatedAt.Format(DateLayout))
	b.WriteString("---\n\n")
	b.WriteString("## Transcript\n\n")
	b.WriteString(s.Transcript)
	b.WriteString("\n\n---\n\n")
	b.WriteString("## Summary\n\n")

	b.WriteString("### 📌 Key Points\n\n")
	writeNumbered(&b, s.Summary.KeyPoints)

	if len(s.Summary.Decisions) > 0 {
		b.WriteString("\n### ✅ Decisions Made\n\n")
		writeNumbered(&b, s.Summary.Decisions)
	}

	if len(s.Summary.ActionItems) > 0 {
		b.WriteString("\n### 🎯 Action Items\n\n")
		writeNumbered(&b, s.Summary.ActionItems)
	}

	fmt.Fprintf(&b, "\n---\n\n*%s*\n", Attribution)
	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}
