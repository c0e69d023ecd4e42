package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/neuroatlas/neuroquery/internal/config"
)

// ErrDisabled is returned when storage is not configured.
var ErrDisabled = fmt.Errorf("storage service not configured")

// Client wraps MinIO and serves static assets (atlas images) from a
// bucket. If no endpoint is configured the client is disabled and callers
// fall back to local files.
type Client struct {
	mc      *minio.Client
	bucket  string
	enabled bool
}

// NewClient creates a storage client. If config has empty Endpoint, the
// client is disabled (all ops return ErrDisabled).
func NewClient(cfg config.StorageConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return &Client{enabled: false}, nil
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &Client{mc: mc, bucket: cfg.Bucket, enabled: true}, nil
}

// Enabled reports whether a storage backend is configured
func (c *Client) Enabled() bool {
	return c.enabled
}

// FetchAsset returns a reader over the named object plus its size and
// content type. The caller must close the reader.
func (c *Client) FetchAsset(ctx context.Context, name string) (io.ReadCloser, int64, string, error) {
	if !c.enabled {
		return nil, 0, "", ErrDisabled
	}
	obj, err := c.mc.GetObject(ctx, c.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("get object %q: %w", name, err)
	}
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, "", fmt.Errorf("stat object %q: %w", name, err)
	}
	return obj, stat.Size, stat.ContentType, nil
}
