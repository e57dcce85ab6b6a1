// Package storage wraps the MinIO client for S3-compatible object storage.
//
// The terminal keeps its item catalog document in a bucket. Client exposes
// the bucket and object calls the catalog uses; core/storage/mocks provides a
// testify mock of it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	reader, err := client.GetObject(ctx, cfg.Storage.Bucket, "catalog/items.json", minio.GetObjectOptions{})
package storage
