package storage

import "strings"

// Config holds S3-compatible storage configuration for rehosted images.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"STORAGE_BUCKET"`

	// AccessKey is the access key ID (required).
	AccessKey string `env:"STORAGE_ACCESS_KEY"`

	// SecretKey is the secret access key (required).
	SecretKey string `env:"STORAGE_SECRET_KEY"`

	// Endpoint is a custom S3 endpoint (optional, for MinIO or other
	// S3-compatible services).
	Endpoint string `env:"STORAGE_ENDPOINT"`

	// Region is the AWS region.
	Region string `env:"STORAGE_REGION" envDefault:"us-east-1"`

	// PublicURL is the CDN or public URL prefix for stored files. When
	// empty, the standard S3 URL form is used.
	PublicURL string `env:"STORAGE_PUBLIC_URL"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"STORAGE_PATH_STYLE"`

	// MaxFetchSize caps downloads when rehosting from a URL.
	MaxFetchSize int64 `env:"STORAGE_MAX_FETCH_SIZE" envDefault:"26214400"` // 25MB
}

// Configured reports whether rehosting can be attempted at all.
func (c Config) Configured() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.MaxFetchSize == 0 {
		c.MaxFetchSize = 25 << 20
	}
	c.PublicURL = strings.TrimRight(c.PublicURL, "/")
}

func (c *Config) validate() error {
	if !c.Configured() {
		return ErrInvalidConfig
	}
	return nil
}
