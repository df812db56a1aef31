package workspace

import (
	"context"
	"net/http"
)

// Contacts queries the contacts collection for everyone whose audience
// tags intersect the given set (logical OR across tags). Contacts with
// an empty email address are excluded. An empty tag set yields no query
// and no contacts.
func (c *Client) Contacts(ctx context.Context, tags []string) ([]Contact, error) {
	if len(tags) == 0 || c.cfg.ContactsDB == "" {
		return nil, nil
	}

	conditions := make([]map[string]any, 0, len(tags))
	for _, tag := range tags {
		conditions = append(conditions, map[string]any{
			"property":     propAudience,
			"multi_select": map[string]any{"contains": tag},
		})
	}

	var (
		out    []Contact
		cursor string
	)
	for {
		body := map[string]any{
			"filter":    map[string]any{"or": conditions},
			"page_size": 100,
		}
		if cursor != "" {
			body["start_cursor"] = cursor
		}

		var resp listResponse[page]
		if err := c.do(ctx, http.MethodPost, "/databases/"+c.cfg.ContactsDB+"/query", body, &resp); err != nil {
			return nil, err
		}

		for _, p := range resp.Results {
			contact := contactFromPage(p)
			if contact.Email == "" {
				continue
			}
			out = append(out, contact)
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return out, nil
}

func contactFromPage(p page) Contact {
	var contact Contact
	for name, prop := range p.Properties {
		switch name {
		case propEmail:
			if prop.Email != "" {
				contact.Email = prop.Email
			} else {
				contact.Email = plainText(prop.RichText)
			}
		case propFirstName:
			if len(prop.Title) > 0 {
				contact.FirstName = plainText(prop.Title)
			} else {
				contact.FirstName = plainText(prop.RichText)
			}
		case propAudience:
			for _, m := range prop.MultiSelect {
				contact.Tags = append(contact.Tags, m.Name)
			}
		}
	}
	return contact
}
