package workspace

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/newsroom/pkg/blocks"
)

// appendBatchSize is the store's cap on children per append call.
const appendBatchSize = 100

// Blocks reads the full ordered block sequence of a page, following
// pagination cursors. Block types the pipeline does not understand are
// skipped, order is otherwise preserved.
func (c *Client) Blocks(ctx context.Context, pageID string) ([]blocks.Block, error) {
	var (
		out    []blocks.Block
		cursor string
	)
	for {
		path := "/blocks/" + pageID + "/children?page_size=100"
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}

		var resp listResponse[apiBlock]
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		for _, ab := range resp.Results {
			if b, ok := fromAPIBlock(ab); ok {
				out = append(out, b)
			}
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return out, nil
}

// AppendBlocks appends blocks as children of a page in store-sized
// batches, preserving order across batches.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, bs []blocks.Block) error {
	for start := 0; start < len(bs); start += appendBatchSize {
		end := min(start+appendBatchSize, len(bs))

		children := make([]apiBlock, 0, end-start)
		for _, b := range bs[start:end] {
			children = append(children, toAPIBlock(b))
		}

		body := map[string]any{"children": children}
		if err := c.do(ctx, http.MethodPatch, "/blocks/"+pageID+"/children", body, nil); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceBlocks rewrites a page's body wholesale: every existing child
// is deleted, then the new sequence is appended. There is no partial
// in-place block edit in this pipeline.
func (c *Client) ReplaceBlocks(ctx context.Context, pageID string, bs []blocks.Block) error {
	if err := c.clearChildren(ctx, pageID); err != nil {
		return err
	}
	return c.AppendBlocks(ctx, pageID, bs)
}

// clearChildren deletes all existing block children of a page. The store
// only supports per-block deletion.
func (c *Client) clearChildren(ctx context.Context, pageID string) error {
	for {
		var resp listResponse[apiBlock]
		if err := c.do(ctx, http.MethodGet, "/blocks/"+pageID+"/children?page_size=100", nil, &resp); err != nil {
			return err
		}
		if len(resp.Results) == 0 {
			return nil
		}
		for _, ab := range resp.Results {
			if err := c.do(ctx, http.MethodDelete, "/blocks/"+ab.ID, nil, nil); err != nil {
				return err
			}
		}
		if !resp.HasMore {
			return nil
		}
	}
}
