package blocks

import (
	"regexp"
	"strings"
)

var (
	reImageLine    = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)\s]+)\)$`)
	reNumberedLine = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	reH4Literal    = regexp.MustCompile(`^<h4>(.*)</h4>$`)
)

// ParseMarkdown converts a markdown document into an ordered block
// sequence. It is line-oriented: every non-blank line is classified by
// its leading token into exactly one block, blank lines produce nothing,
// and line order is preserved as block order.
//
// Heading prefixes of four or more hashes fold to level 3; the block
// model has only three heading levels, so the extra depth is lost by
// rule, not by accident.
func ParseMarkdown(md string) []Block {
	var bs []Block
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		bs = append(bs, parseLine(trimmed))
	}
	return bs
}

// parseLine classifies a single non-blank line into a block.
func parseLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "#"):
		hashes := len(line) - len(strings.TrimLeft(line, "#"))
		rest := strings.TrimSpace(line[hashes:])
		return Heading(hashes, ParseInline(rest))

	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return Block{Type: TypeBulletItem, Runs: ParseInline(strings.TrimSpace(line[2:]))}

	case reNumberedLine.MatchString(line):
		m := reNumberedLine.FindStringSubmatch(line)
		return Block{Type: TypeNumberedItem, Runs: ParseInline(m[1])}

	case strings.HasPrefix(line, "> "):
		return Block{Type: TypeQuote, Runs: ParseInline(strings.TrimSpace(line[2:]))}

	case line == "---":
		return Block{Type: TypeDivider}

	case reImageLine.MatchString(line):
		m := reImageLine.FindStringSubmatch(line)
		return Block{Type: TypeImage, URL: m[2], Runs: Plain(m[1])}

	case reH4Literal.MatchString(line):
		// Older drafts carried label headings as literal <h4> tags.
		m := reH4Literal.FindStringSubmatch(line)
		return Block{Type: TypeHeading3, Runs: ParseInline(m[1])}

	default:
		return Paragraph(ParseInline(line))
	}
}
