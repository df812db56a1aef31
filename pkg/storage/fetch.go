package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// imageExtByMIME maps detected image content types to an object-key
// extension.
var imageExtByMIME = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
	"image/avif":    ".avif",
}

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// PutFromURL downloads an image from a URL and stores it under a fresh
// key below keyPrefix, returning the permanent public URL. The download
// is size-capped and rejected when the content is not an image.
func (s *S3Storage) PutFromURL(ctx context.Context, srcURL, keyPrefix string) (string, error) {
	parsed, err := url.Parse(srcURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}
	if resp.ContentLength > s.cfg.MaxFetchSize {
		return "", ErrDownloadTooLarge
	}

	// Read one byte past the cap to distinguish at-limit from over.
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.cfg.MaxFetchSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if int64(len(data)) > s.cfg.MaxFetchSize {
		return "", ErrDownloadTooLarge
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty body", ErrDownloadFailed)
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtByMIME[contentType]
	if !ok {
		// DetectContentType cannot identify SVG; trust the header there.
		if strings.HasPrefix(resp.Header.Get("Content-Type"), "image/svg") {
			contentType, ext = "image/svg+xml", ".svg"
		} else {
			return "", fmt.Errorf("%w: %s", ErrNotAnImage, contentType)
		}
	}

	key := strings.TrimRight(keyPrefix, "/") + "/" + uuid.NewString() + ext
	if err := s.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}
