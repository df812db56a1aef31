package blocks

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"
)

// RehostFunc copies an image from a short-lived URL to permanent storage
// and returns the permanent URL. Any error keeps the original URL.
type RehostFunc func(ctx context.Context, srcURL string) (string, error)

// videoHosts are the domains whose links following an image block turn
// the image into a tappable video thumbnail.
var videoHosts = []string{
	"youtube.com",
	"youtu.be",
	"vimeo.com",
	"loom.com",
	"wistia.com",
}

// imageExtensions classify embeds that should render as <img>.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

type genConfig struct {
	logger       *slog.Logger
	rehost       RehostFunc
	skipSections []string
	omitTOC      bool
}

// Option configures a Generator.
type Option func(*genConfig)

// WithoutTOC disables the table-of-contents pass.
func WithoutTOC() Option {
	return func(c *genConfig) {
		c.omitTOC = true
	}
}

// WithSkipSections stops rendering when a level-2 heading with one of the
// given titles is reached. The matched heading and everything after it
// are excluded from the output.
func WithSkipSections(titles ...string) Option {
	return func(c *genConfig) {
		c.skipSections = titles
	}
}

// WithRehost enables image rehosting through fn.
func WithRehost(fn RehostFunc) Option {
	return func(c *genConfig) {
		c.rehost = fn
	}
}

// WithLogger sets the logger for rehost failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *genConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Generator renders an ordered block sequence to an HTML fragment.
type Generator struct {
	cfg genConfig
}

// NewGenerator creates a Generator. The zero configuration includes a
// table of contents, skips nothing, and does not rehost images.
func NewGenerator(opts ...Option) *Generator {
	cfg := genConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cfg: cfg}
}

// HTML walks the block sequence and produces a single HTML fragment.
// List grouping is stateful: adjacent list items share one <ul>/<ol>, and
// any other block type closes the open list first. Every opened list tag
// is closed before the function returns.
func (g *Generator) HTML(ctx context.Context, bs []Block) string {
	var (
		b          strings.Builder
		inBullet   bool
		inNumbered bool
		anchors    = map[int]string{}
	)

	closeLists := func() {
		if inBullet {
			b.WriteString("</ul>\n")
			inBullet = false
		}
		if inNumbered {
			b.WriteString("</ol>\n")
			inNumbered = false
		}
	}

	if !g.cfg.omitTOC {
		g.writeTOC(&b, bs, anchors)
	}

	for i := 0; i < len(bs); i++ {
		blk := bs[i]

		switch blk.Type {
		case TypeBulletItem:
			if inNumbered {
				b.WriteString("</ol>\n")
				inNumbered = false
			}
			if !inBullet {
				b.WriteString("<ul>\n")
				inBullet = true
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", InlineHTML(blk.Runs))
			continue
		case TypeNumberedItem:
			if inBullet {
				b.WriteString("</ul>\n")
				inBullet = false
			}
			if !inNumbered {
				b.WriteString("<ol>\n")
				inNumbered = true
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", InlineHTML(blk.Runs))
			continue
		}

		closeLists()

		switch blk.Type {
		case TypeHeading1:
			if id, ok := anchors[i]; ok {
				fmt.Fprintf(&b, "<h1 id=%q>%s</h1>\n", id, InlineHTML(blk.Runs))
			} else {
				fmt.Fprintf(&b, "<h1>%s</h1>\n", InlineHTML(blk.Runs))
			}
		case TypeHeading2:
			if g.shouldSkipFrom(blk) {
				// Everything from this section on is editorial appendix
				// that must never reach the rendered email.
				return b.String()
			}
			fmt.Fprintf(&b, "<h2>%s</h2>\n", InlineHTML(blk.Runs))
		case TypeHeading3:
			if IsLabelHeading(blk.PlainText()) {
				fmt.Fprintf(&b, `<div class="label">%s</div>`+"\n", InlineHTML(blk.Runs))
			} else {
				fmt.Fprintf(&b, "<h3>%s</h3>\n", InlineHTML(blk.Runs))
			}
		case TypeParagraph:
			fmt.Fprintf(&b, "<p>%s</p>\n", InlineHTML(blk.Runs))
		case TypeQuote:
			fmt.Fprintf(&b, "<blockquote>%s</blockquote>\n", InlineHTML(blk.Runs))
		case TypeCallout:
			fmt.Fprintf(&b, `<div class="callout">%s</div>`+"\n", InlineHTML(blk.Runs))
		case TypeDivider:
			b.WriteString("<hr>\n")
		case TypeImage:
			i += g.writeImage(ctx, &b, bs, i)
		case TypeVideo:
			fmt.Fprintf(&b, `<p><a href="%s">Watch video</a></p>`+"\n", html.EscapeString(blk.URL))
		case TypeEmbed:
			g.writeEmbed(&b, blk)
		}
	}

	closeLists()
	return b.String()
}

// writeTOC prepends a table of contents listing all level-1 headings in
// document order, 1-indexed. No TOC is emitted when there are none. It
// also records anchor ids for the heading render pass.
func (g *Generator) writeTOC(b *strings.Builder, bs []Block, anchors map[int]string) {
	var entries []int
	for i, blk := range bs {
		if blk.Type == TypeHeading1 {
			entries = append(entries, i)
		}
	}
	if len(entries) == 0 {
		return
	}

	b.WriteString(`<div class="toc"><p>In this issue:</p><ol>` + "\n")
	for n, i := range entries {
		id := fmt.Sprintf("section-%d", n+1)
		anchors[i] = id
		fmt.Fprintf(b, `<li><a href="#%s">%s</a></li>`+"\n", id, InlineHTML(bs[i].Runs))
	}
	b.WriteString("</ol></div>\n")
}

// writeImage renders an image block and returns how many following
// blocks it consumed (one when the next block is a video link that turns
// the image into a tappable thumbnail).
func (g *Generator) writeImage(ctx context.Context, b *strings.Builder, bs []Block, i int) int {
	blk := bs[i]
	src := blk.URL

	if g.cfg.rehost != nil && src != "" {
		permanent, err := g.cfg.rehost(ctx, src)
		if err != nil {
			g.cfg.logger.WarnContext(ctx, "image rehost failed, keeping original url",
				slog.String("url", src),
				slog.String("error", err.Error()),
			)
		} else if permanent != "" {
			src = permanent
		}
	}

	if videoURL, consumed := videoLinkAfter(bs, i); consumed > 0 {
		fmt.Fprintf(b, `<a href="%s"><img src="%s" alt="Video thumbnail"></a>`+"\n",
			html.EscapeString(videoURL), html.EscapeString(src))
		b.WriteString(`<p class="caption">Tap to view video</p>` + "\n")
		return consumed
	}

	fmt.Fprintf(b, `<img src="%s" alt="%s">`+"\n", html.EscapeString(src), html.EscapeString(blk.PlainText()))
	if caption := InlineHTML(blk.Runs); caption != "" {
		fmt.Fprintf(b, `<p class="caption">%s</p>`+"\n", caption)
	}
	return 0
}

// writeEmbed classifies an embed as image-like or link-like by its URL.
func (g *Generator) writeEmbed(b *strings.Builder, blk Block) {
	if isImageURL(blk.URL) {
		fmt.Fprintf(b, `<img src="%s" alt="">`+"\n", html.EscapeString(blk.URL))
		return
	}
	fmt.Fprintf(b, `<p><a href="%s">%s</a></p>`+"\n", html.EscapeString(blk.URL), html.EscapeString(blk.URL))
}

// shouldSkipFrom reports whether a level-2 heading terminates rendering.
// Titles are matched on exact plain text.
func (g *Generator) shouldSkipFrom(blk Block) bool {
	text := blk.PlainText()
	for _, title := range g.cfg.skipSections {
		if text == title {
			return true
		}
	}
	return false
}

// IsLabelHeading reports whether a level-3 heading renders as a label
// pill instead of a normal heading. The distinction is inferred from a
// trailing colon on the plain text, never stored.
func IsLabelHeading(text string) bool {
	return strings.HasSuffix(strings.TrimSpace(text), ":")
}

// videoLinkAfter checks whether the block after index i is a link to a
// known video host: either a paragraph whose only run is a link, or a
// video/embed block. It returns the video URL and how many blocks the
// caller should skip (0 when there is no match).
func videoLinkAfter(bs []Block, i int) (string, int) {
	if i+1 >= len(bs) {
		return "", 0
	}
	next := bs[i+1]

	var candidate string
	switch next.Type {
	case TypeParagraph:
		if len(next.Runs) == 1 && next.Runs[0].Href != "" {
			candidate = next.Runs[0].Href
		}
	case TypeVideo, TypeEmbed:
		candidate = next.URL
	}

	if candidate == "" || !isVideoURL(candidate) {
		return "", 0
	}
	return candidate, 1
}

func isVideoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	for _, h := range videoHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func isImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	_, ok := imageExtensions[ext]
	return ok
}
