// Package storage publishes audit reports to object storage.
//
// It wraps the MinIO Go client behind a two-method Client interface, enough to
// verify the target bucket and upload report files. Both AWS S3 and self-hosted
// MinIO instances are supported. The interface is mocked in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
//	key := storage.ObjectKey(cfg.Storage.Prefix, runID, "UnusedFxrIds_ds3.txt")
//	_, err = storage.UploadFile(ctx, client, cfg.Storage.Bucket, key, path)
package storage
