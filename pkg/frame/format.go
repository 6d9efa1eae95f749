package frame

import (
	"fmt"
	"strings"
)

// FormatCatalog returns a human-readable listing of frames grouped by category.
func FormatCatalog(c *Catalog) string {
	if c == nil || c.Len() == 0 {
		return "No frames available.\n"
	}

	var b strings.Builder
	for _, cat := range c.Categories() {
		b.WriteString(fmt.Sprintf("[%s]\n", cat))
		for _, f := range c.ByCategory(cat) {
			writeFrame(&b, f)
		}
		b.WriteString("\n")
	}

	if uncategorised := c.ByCategory(""); len(uncategorised) > 0 {
		b.WriteString("[other]\n")
		for _, f := range uncategorised {
			writeFrame(&b, f)
		}
	}

	return b.String()
}

func writeFrame(b *strings.Builder, f Frame) {
	b.WriteString(fmt.Sprintf("  %-20s %s\n", f.ID, f.Name))
	if f.Description != "" {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", "", f.Description))
	}
	b.WriteString(fmt.Sprintf("  %-20s fields: %s\n", "", strings.Join(f.Keys(), ", ")))
}
