package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Bucket: "b"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	s, err := New(Config{Bucket: "imgs", AccessKey: "k", SecretKey: "s", Region: "eu-west-1"})
	require.NoError(t, err)
	require.Equal(t, "https://imgs.s3.eu-west-1.amazonaws.com/a/b.png", s.PublicURL("/a/b.png"))

	s, err = New(Config{Bucket: "imgs", AccessKey: "k", SecretKey: "s", PublicURL: "https://cdn.example.com/"})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/a/b.png", s.PublicURL("a/b.png"))

	s, err = New(Config{Bucket: "imgs", AccessKey: "k", SecretKey: "s", Endpoint: "http://minio:9000", PathStyle: true})
	require.NoError(t, err)
	require.Equal(t, "http://minio:9000/imgs/a/b.png", s.PublicURL("a/b.png"))
}

func TestPutFromURL_RejectsBadURLs(t *testing.T) {
	t.Parallel()

	s, err := New(Config{Bucket: "imgs", AccessKey: "k", SecretKey: "s"})
	require.NoError(t, err)

	_, err = s.PutFromURL(t.Context(), "ftp://example.com/x.png", "p")
	require.ErrorIs(t, err, ErrInvalidURL)

	_, err = s.PutFromURL(t.Context(), "://broken", "p")
	require.ErrorIs(t, err, ErrInvalidURL)
}
