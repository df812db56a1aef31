package blocks

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func bullet(text string) Block {
	return Block{Type: TypeBulletItem, Runs: Plain(text)}
}

func numbered(text string) Block {
	return Block{Type: TypeNumberedItem, Runs: Plain(text)}
}

func h(level int, text string) Block {
	return Heading(level, Plain(text))
}

func TestGenerator_SkipSectionTruncates(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC(), WithSkipSections("Collateral Checklist"))
	got := g.HTML(context.Background(), []Block{
		h(2, "Feature A"),
		bullet("x"),
		bullet("y"),
		h(2, "Collateral Checklist"),
		bullet("ignored"),
	})

	require.Contains(t, got, "<h2>Feature A</h2>")
	require.Equal(t, 1, strings.Count(got, "<ul>"))
	require.Equal(t, 2, strings.Count(got, "<li>"))
	require.NotContains(t, got, "Collateral Checklist")
	require.NotContains(t, got, "ignored")
}

func TestGenerator_ListBalance(t *testing.T) {
	t.Parallel()

	sequences := [][]Block{
		{bullet("a"), bullet("b")},
		{bullet("a"), Paragraph(Plain("break")), bullet("b")},
		{bullet("a"), numbered("1"), numbered("2"), bullet("b")},
		{numbered("1")},
		{Paragraph(Plain("no lists at all"))},
		{h(2, "last section"), bullet("trailing item")},
	}

	openTags := regexp.MustCompile(`<(ul|ol)>`)
	closeTags := regexp.MustCompile(`</(ul|ol)>`)

	g := NewGenerator(WithoutTOC())
	for _, bs := range sequences {
		got := g.HTML(context.Background(), bs)
		require.Equal(t,
			len(openTags.FindAllString(got, -1)),
			len(closeTags.FindAllString(got, -1)),
			"unbalanced lists in: %s", got)
	}
}

func TestGenerator_AdjacentItemsShareOneList(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC())
	got := g.HTML(context.Background(), []Block{bullet("a"), bullet("b"), bullet("c")})

	require.Equal(t, 1, strings.Count(got, "<ul>"))
	require.Equal(t, 3, strings.Count(got, "<li>"))
}

func TestGenerator_ListClosedBeforeSkipStop(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC(), WithSkipSections("Review Questions"))
	got := g.HTML(context.Background(), []Block{
		bullet("a"),
		h(2, "Review Questions"),
	})

	require.Equal(t, strings.Count(got, "<ul>"), strings.Count(got, "</ul>"))
	require.NotContains(t, got, "Review Questions")
}

func TestIsLabelHeading(t *testing.T) {
	t.Parallel()

	require.False(t, IsLabelHeading("Why This Matters"))
	require.True(t, IsLabelHeading("Summary:"))
	require.True(t, IsLabelHeading("  Summary:  "))
	require.False(t, IsLabelHeading(""))
}

func TestGenerator_HeadingLabelDispatch(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC())

	got := g.HTML(context.Background(), []Block{h(3, "Why This Matters")})
	require.Contains(t, got, "<h3>Why This Matters</h3>")

	got = g.HTML(context.Background(), []Block{h(3, "Summary:")})
	require.Contains(t, got, `<div class="label">Summary:</div>`)
	require.NotContains(t, got, "<h3>")
}

func TestGenerator_TOC(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.HTML(context.Background(), []Block{
		h(1, "First Story"),
		Paragraph(Plain("body")),
		h(1, "Second Story"),
	})

	tocEnd := strings.Index(got, "</div>")
	require.Greater(t, tocEnd, 0)
	toc := got[:tocEnd]
	require.Contains(t, toc, "First Story")
	require.Contains(t, toc, "Second Story")
	require.Contains(t, got, `<h1 id="section-1">First Story</h1>`)
	require.Contains(t, got, `<h1 id="section-2">Second Story</h1>`)
}

func TestGenerator_NoTOCWithoutH1(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.HTML(context.Background(), []Block{h(2, "Only Subheadings")})
	require.NotContains(t, got, `class="toc"`)
}

func TestGenerator_VideoThumbnailLookahead(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC())
	got := g.HTML(context.Background(), []Block{
		{Type: TypeImage, URL: "https://cdn.example.com/thumb.png"},
		Paragraph([]Run{{Text: "watch", Href: "https://youtu.be/abc123"}}),
	})

	require.Contains(t, got, `<a href="https://youtu.be/abc123"><img src="https://cdn.example.com/thumb.png"`)
	require.Contains(t, got, "Tap to view video")
	// The consumed link paragraph is not rendered again.
	require.NotContains(t, got, "<p>")
}

func TestGenerator_ImageFollowedByPlainParagraph(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC())
	got := g.HTML(context.Background(), []Block{
		{Type: TypeImage, URL: "https://cdn.example.com/chart.png", Runs: Plain("Q3 numbers")},
		Paragraph(Plain("unrelated text")),
	})

	require.Contains(t, got, `<img src="https://cdn.example.com/chart.png"`)
	require.Contains(t, got, `<p class="caption">Q3 numbers</p>`)
	require.Contains(t, got, "<p>unrelated text</p>")
	require.NotContains(t, got, "Tap to view video")
}

func TestGenerator_RehostSubstitutesURL(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC(), WithRehost(func(_ context.Context, src string) (string, error) {
		require.Equal(t, "https://tmp.example.com/x.png", src)
		return "https://cdn.example.com/perm.png", nil
	}))
	got := g.HTML(context.Background(), []Block{{Type: TypeImage, URL: "https://tmp.example.com/x.png"}})

	require.Contains(t, got, "https://cdn.example.com/perm.png")
	require.NotContains(t, got, "tmp.example.com")
}

func TestGenerator_RehostFailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC(), WithRehost(func(context.Context, string) (string, error) {
		return "", errors.New("bucket unavailable")
	}))
	got := g.HTML(context.Background(), []Block{{Type: TypeImage, URL: "https://tmp.example.com/x.png"}})

	require.Contains(t, got, "https://tmp.example.com/x.png")
}

func TestGenerator_EmbedClassification(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC())

	got := g.HTML(context.Background(), []Block{{Type: TypeEmbed, URL: "https://cdn.example.com/shot.PNG"}})
	require.Contains(t, got, "<img src=")

	got = g.HTML(context.Background(), []Block{{Type: TypeEmbed, URL: "https://example.com/dashboard"}})
	require.Contains(t, got, "<a href=")
	require.NotContains(t, got, "<img")
}

func TestGenerator_DividerAndQuote(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithoutTOC())
	got := g.HTML(context.Background(), []Block{
		{Type: TypeDivider},
		{Type: TypeQuote, Runs: Plain("wise words")},
		{Type: TypeCallout, Runs: Plain("heads up")},
	})

	require.Contains(t, got, "<hr>")
	require.Contains(t, got, "<blockquote>wise words</blockquote>")
	require.Contains(t, got, `<div class="callout">heads up</div>`)
}
