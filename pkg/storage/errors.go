package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	ErrInvalidConfig    = errors.New("storage: invalid configuration")
	ErrNotFound         = errors.New("storage: object not found")
	ErrAccessDenied     = errors.New("storage: access denied")
	ErrUploadFailed     = errors.New("storage: upload failed")
	ErrInvalidURL       = errors.New("storage: invalid URL")
	ErrDownloadFailed   = errors.New("storage: failed to download from URL")
	ErrDownloadTooLarge = errors.New("storage: download exceeds size limit")
	ErrNotAnImage       = errors.New("storage: content is not an image")
)

// wrapS3Error maps S3 failures onto sentinel errors. Uses %v (not %w)
// for the original error so callers match with errors.Is on sentinels,
// not errors.As on AWS types.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
