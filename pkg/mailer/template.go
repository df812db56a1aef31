package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is an email template split into YAML frontmatter metadata and
// a markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits template file content into frontmatter metadata
// and markdown body. Content without a leading "---" delimiter is all
// body with empty metadata.
func ParseTemplate(content []byte) (*Template, error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delimiter), "\r\n")
	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	front := rest[:end]
	body := bytes.TrimLeft(rest[end+len(delimiter):], "\r\n")

	metadata := map[string]any{}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: metadata, Body: string(body)}, nil
}
