package bucket

import (
	"context"
	"fmt"
	"io"
	"skinmapping/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client for a S3 compatible bucket.
type Client struct {
	s3 *s3.Client
}

// NewClient builds the S3 client from the static credentials of the configuration.
func NewClient(bucketConfig config.BucketConfiguration) *Client {
	cfg := aws.Config{
		Region: bucketConfig.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				bucketConfig.AccessKey,
				bucketConfig.AccessSecret,
				"",
			),
		),
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Custom endpoints (R2, MinIO) only work with path style addressing.
		if bucketConfig.Endpoint != "" {
			o.BaseEndpoint = aws.String(bucketConfig.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{s3: s3Client}
}

// Upload puts the body under the given key.
// The body should be seekable so the request can be signed.
func (c *Client) Upload(ctx context.Context, bucketName string, objectKey string, body io.Reader, contentType string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", objectKey, bucketName, err)
	}
	return nil
}
