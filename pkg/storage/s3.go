package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Storage stores rehosted newsletter images in S3-compatible object
// storage. Objects are written public-read: they end up embedded in
// emails, so signed URLs would expire in inboxes.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// New creates an S3Storage with the given configuration.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Storage{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Put uploads an object under the given key with public-read access.
func (s *S3Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return wrapS3Error(err, ErrUploadFailed)
	}
	return nil
}

// PublicURL returns the public URL of a stored object, preferring the
// configured CDN prefix.
func (s *S3Storage) PublicURL(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.cfg.PublicURL != "" {
		return s.cfg.PublicURL + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
