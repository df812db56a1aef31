package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsroom/pkg/blocks"
)

func TestBlockConversion_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []blocks.Block{
		{Type: blocks.TypeHeading2, Runs: blocks.Plain("Section")},
		{Type: blocks.TypeParagraph, Runs: []blocks.Run{
			{Text: "bold link", Bold: true, Href: "https://example.com"},
			{Text: " tail"},
		}},
		{Type: blocks.TypeBulletItem, Runs: blocks.Plain("item")},
		{Type: blocks.TypeQuote, Runs: blocks.Plain("said")},
		{Type: blocks.TypeCallout, Runs: blocks.Plain("note")},
		{Type: blocks.TypeDivider},
		{Type: blocks.TypeEmbed, URL: "https://example.com/x"},
		{Type: blocks.TypeVideo, URL: "https://youtu.be/abc"},
	}

	for _, original := range cases {
		got, ok := fromAPIBlock(toAPIBlock(original))
		require.True(t, ok, "type %s", original.Type)
		require.Equal(t, original, got, "type %s", original.Type)
	}
}

func TestBlockConversion_ImageCaption(t *testing.T) {
	t.Parallel()

	original := blocks.Block{
		Type: blocks.TypeImage,
		URL:  "https://example.com/a.png",
		Runs: blocks.Plain("caption"),
	}
	got, ok := fromAPIBlock(toAPIBlock(original))
	require.True(t, ok)
	require.Equal(t, original, got)
}

func TestFromAPIBlock_FileHostedImage(t *testing.T) {
	t.Parallel()

	ab := apiBlock{
		Type: "image",
		Image: &filePayload{
			Type: "file",
			File: &urlRef{URL: "https://files.example.com/signed?expires=1"},
		},
	}
	got, ok := fromAPIBlock(ab)
	require.True(t, ok)
	require.Equal(t, "https://files.example.com/signed?expires=1", got.URL)
}

func TestFromAPIBlock_UnknownType(t *testing.T) {
	t.Parallel()

	_, ok := fromAPIBlock(apiBlock{Type: "synced_block"})
	require.False(t, ok)
}
