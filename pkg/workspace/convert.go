package workspace

import "github.com/dmitrymomot/newsroom/pkg/blocks"

func fromRichText(rt []richText) []blocks.Run {
	runs := make([]blocks.Run, 0, len(rt))
	for _, t := range rt {
		run := blocks.Run{
			Text:      t.Text.Content,
			Bold:      t.Annotations.Bold,
			Italic:    t.Annotations.Italic,
			Underline: t.Annotations.Underline,
			Code:      t.Annotations.Code,
		}
		if t.Text.Link != nil {
			run.Href = t.Text.Link.URL
		}
		runs = append(runs, run)
	}
	if len(runs) == 0 {
		return nil
	}
	return runs
}

func toRichText(runs []blocks.Run) []richText {
	rt := make([]richText, 0, len(runs))
	for _, r := range runs {
		var t richText
		t.Type = "text"
		t.Text.Content = r.Text
		t.Annotations.Bold = r.Bold
		t.Annotations.Italic = r.Italic
		t.Annotations.Underline = r.Underline
		t.Annotations.Code = r.Code
		if r.Href != "" {
			t.Text.Link = &struct {
				URL string `json:"url"`
			}{URL: r.Href}
		}
		rt = append(rt, t)
	}
	return rt
}

func fileURL(p *filePayload) string {
	if p == nil {
		return ""
	}
	if p.External != nil {
		return p.External.URL
	}
	if p.File != nil {
		return p.File.URL
	}
	return ""
}

// fromAPIBlock converts one wire block into the domain model. Unsupported
// block types report ok=false and are skipped by callers.
func fromAPIBlock(ab apiBlock) (blocks.Block, bool) {
	text := func(p *textPayload) []blocks.Run {
		if p == nil {
			return nil
		}
		return fromRichText(p.RichText)
	}

	switch ab.Type {
	case "heading_1":
		return blocks.Block{Type: blocks.TypeHeading1, Runs: text(ab.Heading1)}, true
	case "heading_2":
		return blocks.Block{Type: blocks.TypeHeading2, Runs: text(ab.Heading2)}, true
	case "heading_3":
		return blocks.Block{Type: blocks.TypeHeading3, Runs: text(ab.Heading3)}, true
	case "paragraph":
		return blocks.Block{Type: blocks.TypeParagraph, Runs: text(ab.Para)}, true
	case "bulleted_list_item":
		return blocks.Block{Type: blocks.TypeBulletItem, Runs: text(ab.Bullet)}, true
	case "numbered_list_item":
		return blocks.Block{Type: blocks.TypeNumberedItem, Runs: text(ab.Numbered)}, true
	case "quote":
		return blocks.Block{Type: blocks.TypeQuote, Runs: text(ab.Quote)}, true
	case "callout":
		return blocks.Block{Type: blocks.TypeCallout, Runs: text(ab.Callout)}, true
	case "divider":
		return blocks.Block{Type: blocks.TypeDivider}, true
	case "image":
		return blocks.Block{Type: blocks.TypeImage, URL: fileURL(ab.Image), Runs: fromRichText(captionOf(ab.Image))}, true
	case "video":
		return blocks.Block{Type: blocks.TypeVideo, URL: fileURL(ab.Video)}, true
	case "embed":
		var u string
		if ab.Embed != nil {
			u = ab.Embed.URL
		}
		return blocks.Block{Type: blocks.TypeEmbed, URL: u}, true
	}
	return blocks.Block{}, false
}

func captionOf(p *filePayload) []richText {
	if p == nil {
		return nil
	}
	return p.Caption
}

// toAPIBlock converts a domain block into its wire shape for appending.
func toAPIBlock(b blocks.Block) apiBlock {
	ab := apiBlock{Object: "block", Type: string(b.Type)}
	payload := &textPayload{RichText: toRichText(b.Runs)}

	switch b.Type {
	case blocks.TypeHeading1:
		ab.Heading1 = payload
	case blocks.TypeHeading2:
		ab.Heading2 = payload
	case blocks.TypeHeading3:
		ab.Heading3 = payload
	case blocks.TypeParagraph:
		ab.Para = payload
	case blocks.TypeBulletItem:
		ab.Bullet = payload
	case blocks.TypeNumberedItem:
		ab.Numbered = payload
	case blocks.TypeQuote:
		ab.Quote = payload
	case blocks.TypeCallout:
		ab.Callout = payload
	case blocks.TypeDivider:
		ab.Divider = &struct{}{}
	case blocks.TypeImage:
		ab.Image = &filePayload{Type: "external", External: &urlRef{URL: b.URL}, Caption: toRichText(b.Runs)}
	case blocks.TypeVideo:
		ab.Video = &filePayload{Type: "external", External: &urlRef{URL: b.URL}}
	case blocks.TypeEmbed:
		ab.Embed = &urlRef{URL: b.URL}
	}
	return ab
}

func plainText(rt []richText) string {
	var s string
	for _, t := range rt {
		if t.PlainText != "" {
			s += t.PlainText
		} else {
			s += t.Text.Content
		}
	}
	return s
}
