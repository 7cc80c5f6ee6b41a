package repositories

import (
	"bytes"
	"context"
	"io"
	"path"
	"skinmapping/pkg/models/skin"
)

// Uploader sends an object to a bucket.
type Uploader interface {
	Upload(ctx context.Context, bucketName string, objectKey string, body io.Reader, contentType string) error
}

// BucketRepository mirrors the mapping files to a bucket as <language>/skin_ids.json.
type BucketRepository struct {
	uploader   Uploader
	bucketName string
	fileName   string
}

// Create a bucket repository.
func NewBucketRepository(uploader Uploader, bucketName string, fileName string) *BucketRepository {
	return &BucketRepository{
		uploader:   uploader,
		bucketName: bucketName,
		fileName:   fileName,
	}
}

func (r *BucketRepository) Name() string {
	return "bucket"
}

// ObjectKey returns where the mapping of a language is stored.
func (r *BucketRepository) ObjectKey(language string) string {
	return path.Join(language, r.fileName)
}

// Publish uploads the same bytes written to the local file.
func (r *BucketRepository) Publish(ctx context.Context, language string, mapping skin.Mapping) error {
	data, err := mapping.Encode()
	if err != nil {
		return err
	}
	return r.uploader.Upload(ctx, r.bucketName, r.ObjectKey(language), bytes.NewReader(data), "application/json")
}
