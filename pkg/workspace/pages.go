package workspace

import (
	"context"
	"net/http"
)

// Newsletter fetches the property view of a newsletter page. Missing or
// differently-typed properties resolve to zero values rather than errors;
// the schema is human-managed and drifts.
func (c *Client) Newsletter(ctx context.Context, pageID string) (*Newsletter, error) {
	var p page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &p); err != nil {
		return nil, err
	}

	n := &Newsletter{ID: p.ID}
	for name, prop := range p.Properties {
		switch name {
		case propTitle:
			n.Title = plainText(prop.Title)
		case propIssueDate:
			if prop.Date != nil {
				n.IssueDate = prop.Date.Start
			}
		case propStatus:
			n.Status = selectName(prop)
		case propAudience:
			for _, m := range prop.MultiSelect {
				n.Audience = append(n.Audience, m.Name)
			}
		case propHighlights:
			n.Highlights = plainText(prop.RichText)
		case propPrimaryCustomer:
			n.PrimaryCustomer = plainText(prop.RichText)
		case propCollateral:
			n.Collateral = plainText(prop.RichText)
		}
	}
	return n, nil
}

// Status returns only the persisted status of a page. Used by the
// idempotency guard before any content is fetched.
func (c *Client) Status(ctx context.Context, pageID string) (string, error) {
	var p page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &p); err != nil {
		return "", err
	}
	return selectName(p.Properties[propStatus]), nil
}

// UpdateStatus advances the page's status property.
func (c *Client) UpdateStatus(ctx context.Context, pageID, status string) error {
	body := map[string]any{
		"properties": map[string]any{
			propStatus: map[string]any{
				"select": map[string]any{"name": status},
			},
		},
	}
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, body, nil)
}

// selectName reads a select-ish property regardless of whether the
// schema uses a select or a status column.
func selectName(prop property) string {
	if prop.Select != nil {
		return prop.Select.Name
	}
	if prop.Status != nil {
		return prop.Status.Name
	}
	return ""
}
