package blocks

import (
	"html"
	"regexp"
	"strings"
)

// Inline markdown delimiters recognized by ParseInline. First match wins
// when scanning left to right; bold is tried before italic so that a
// double asterisk is never consumed as two italic markers.
var (
	reInlineLink   = regexp.MustCompile(`\[([^\[\]]+)\]\(([^()\s]+)\)`)
	reInlineBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reInlineItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode   = regexp.MustCompile("`([^`]+)`")
)

// InlineHTML renders runs as semantic inline HTML. Output contains no
// block-level tags; empty or nil input yields an empty string.
// Wrapping order is link > underline > bold > italic > code, so a bold
// link renders as <a><strong>…</strong></a>.
func InlineHTML(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		s := html.EscapeString(r.Text)
		if r.Code {
			s = "<code>" + s + "</code>"
		}
		if r.Italic {
			s = "<em>" + s + "</em>"
		}
		if r.Bold {
			s = "<strong>" + s + "</strong>"
		}
		if r.Underline {
			s = "<u>" + s + "</u>"
		}
		if r.Href != "" {
			s = `<a href="` + html.EscapeString(r.Href) + `">` + s + "</a>"
		}
		b.WriteString(s)
	}
	return b.String()
}

// MarkdownInline renders runs as markdown inline syntax, the inverse of
// ParseInline for the supported annotation subset. Underline has no
// markdown spelling and is dropped. Nesting order mirrors HTML: the link
// wraps the style markers.
func MarkdownInline(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		s := r.Text
		if r.Code {
			s = "`" + s + "`"
		}
		if r.Italic {
			s = "*" + s + "*"
		}
		if r.Bold {
			s = "**" + s + "**"
		}
		if r.Href != "" {
			s = "[" + s + "](" + r.Href + ")"
		}
		b.WriteString(s)
	}
	return b.String()
}

// ParseInline converts a markdown fragment into annotated runs. It scans
// left to right for the first of **bold**, *italic*, `code`, or
// [text](url); text outside matched spans becomes unannotated runs.
// Malformed markup degrades to literal text, never an error.
func ParseInline(s string) []Run {
	var runs []Run
	for s != "" {
		kind, loc := firstInlineMatch(s)
		if loc == nil {
			runs = append(runs, Run{Text: s})
			break
		}
		if before := s[:loc[0]]; before != "" {
			runs = append(runs, Run{Text: before})
		}
		switch kind {
		case "link":
			run := Run{Href: s[loc[4]:loc[5]]}
			// One level of style nesting inside the link text.
			run.Text, run.Bold, run.Italic, run.Code = unwrapStyled(s[loc[2]:loc[3]])
			runs = append(runs, run)
		case "bold":
			runs = append(runs, Run{Text: s[loc[2]:loc[3]], Bold: true})
		case "italic":
			runs = append(runs, Run{Text: s[loc[2]:loc[3]], Italic: true})
		case "code":
			runs = append(runs, Run{Text: s[loc[2]:loc[3]], Code: true})
		}
		s = s[loc[1]:]
	}
	return runs
}

// firstInlineMatch returns the earliest delimiter match in s. On equal
// start positions the order link, bold, code, italic decides.
func firstInlineMatch(s string) (string, []int) {
	var (
		bestKind string
		bestLoc  []int
	)
	candidates := []struct {
		kind string
		re   *regexp.Regexp
	}{
		{"link", reInlineLink},
		{"bold", reInlineBold},
		{"code", reInlineCode},
		{"italic", reInlineItalic},
	}
	for _, c := range candidates {
		loc := c.re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		if bestLoc == nil || loc[0] < bestLoc[0] {
			bestKind, bestLoc = c.kind, loc
		}
	}
	return bestKind, bestLoc
}

// unwrapStyled strips at most one full-width style wrapper from s and
// reports which annotation it carried.
func unwrapStyled(s string) (text string, bold, italic, code bool) {
	switch {
	case len(s) > 4 && strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**"):
		return s[2 : len(s)-2], true, false, false
	case len(s) > 2 && strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`"):
		return s[1 : len(s)-1], false, false, true
	case len(s) > 2 && strings.HasPrefix(s, "*") && strings.HasSuffix(s, "*"):
		return s[1 : len(s)-1], false, true, false
	}
	return s, false, false, false
}
