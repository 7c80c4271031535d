package audit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"fxr-query/core/storage"
)

// ErrBucketMissing is returned when the publish bucket does not exist.
var ErrBucketMissing = errors.New("report bucket does not exist")

// Publisher uploads report files to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
}

// NewPublisher creates a publisher writing below prefix in bucket.
func NewPublisher(client storage.Client, bucket, prefix string) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Publish uploads files under <prefix>/<runID>/ and returns the object keys.
func (p *Publisher) Publish(ctx context.Context, runID string, files []string) ([]string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, p.bucket)
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		key := storage.ObjectKey(p.prefix, runID, filepath.Base(file))
		if _, err := storage.UploadFile(ctx, p.client, p.bucket, key, file); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
