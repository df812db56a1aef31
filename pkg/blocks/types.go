package blocks

import "strings"

// Type identifies the structural kind of a block.
type Type string

const (
	TypeHeading1     Type = "heading_1"
	TypeHeading2     Type = "heading_2"
	TypeHeading3     Type = "heading_3"
	TypeParagraph    Type = "paragraph"
	TypeBulletItem   Type = "bulleted_list_item"
	TypeNumberedItem Type = "numbered_list_item"
	TypeQuote        Type = "quote"
	TypeDivider      Type = "divider"
	TypeCallout      Type = "callout"
	TypeImage        Type = "image"
	TypeVideo        Type = "video"
	TypeEmbed        Type = "embed"
)

// Run is a fragment of text with style annotations. Annotations are
// independent and composable; a run may be bold and a link at once.
type Run struct {
	Text      string
	Href      string
	Bold      bool
	Italic    bool
	Code      bool
	Underline bool
}

// Block is one structural unit of a document body. Runs holds the text
// payload for text-bearing blocks and the caption for images. URL is set
// for images, videos, and embeds.
type Block struct {
	Type Type
	Runs []Run
	URL  string
}

// Text returns the concatenated plain text of the runs, annotations dropped.
func Text(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// PlainText returns the block's text payload without annotations.
func (b Block) PlainText() string {
	return Text(b.Runs)
}

// Plain wraps a bare string in a single unannotated run.
func Plain(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text}}
}

// Heading builds a heading block, clamping level to the 1..3 range the
// block model supports.
func Heading(level int, runs []Run) Block {
	switch {
	case level <= 1:
		return Block{Type: TypeHeading1, Runs: runs}
	case level == 2:
		return Block{Type: TypeHeading2, Runs: runs}
	default:
		return Block{Type: TypeHeading3, Runs: runs}
	}
}

// Paragraph builds a paragraph block.
func Paragraph(runs []Run) Block {
	return Block{Type: TypeParagraph, Runs: runs}
}
