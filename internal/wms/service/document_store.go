package service

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// MinIODocumentStore keeps documents in a MinIO bucket.
type MinIODocumentStore struct {
	client *minio.Client
	bucket string
}

func NewMinIODocumentStore(client *minio.Client, bucket string) *MinIODocumentStore {
	return &MinIODocumentStore{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *MinIODocumentStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *MinIODocumentStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinIODocumentStore) Get(ctx context.Context, key string) (io.ReadCloser, *DocumentInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, err
	}
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, notFoundf("document %s", key)
		}
		return nil, nil, err
	}
	return obj, &DocumentInfo{Key: key, Size: stat.Size, ContentType: stat.ContentType}, nil
}

func (s *MinIODocumentStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
