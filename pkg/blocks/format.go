package blocks

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders a block sequence back to markdown, the write
// path's inverse of ParseMarkdown. The mapping is lossy for block types
// markdown cannot spell: callouts become blockquotes, videos and embeds
// become bare link lines. Numbered items are renumbered from 1 per run
// of adjacent items.
func FormatMarkdown(bs []Block) string {
	var (
		b   strings.Builder
		num int
	)
	for _, blk := range bs {
		if blk.Type == TypeNumberedItem {
			num++
		} else {
			num = 0
		}

		switch blk.Type {
		case TypeHeading1:
			fmt.Fprintf(&b, "# %s\n\n", MarkdownInline(blk.Runs))
		case TypeHeading2:
			fmt.Fprintf(&b, "## %s\n\n", MarkdownInline(blk.Runs))
		case TypeHeading3:
			fmt.Fprintf(&b, "### %s\n\n", MarkdownInline(blk.Runs))
		case TypeParagraph:
			fmt.Fprintf(&b, "%s\n\n", MarkdownInline(blk.Runs))
		case TypeBulletItem:
			fmt.Fprintf(&b, "- %s\n", MarkdownInline(blk.Runs))
		case TypeNumberedItem:
			fmt.Fprintf(&b, "%d. %s\n", num, MarkdownInline(blk.Runs))
		case TypeQuote, TypeCallout:
			fmt.Fprintf(&b, "> %s\n\n", MarkdownInline(blk.Runs))
		case TypeDivider:
			b.WriteString("---\n\n")
		case TypeImage:
			fmt.Fprintf(&b, "![%s](%s)\n\n", blk.PlainText(), blk.URL)
		case TypeVideo, TypeEmbed:
			fmt.Fprintf(&b, "%s\n\n", blk.URL)
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
