package assets

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Mirror copies persisted assets to an S3 bucket so a remote renderer
// can load them without access to the local filesystem. It is entirely
// optional: pipelines run identically without one.
type Mirror struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewMirror builds a mirror from the default AWS config chain. Returns
// an error when credentials cannot be resolved; callers treat that as
// "run without mirroring".
func NewMirror(ctx context.Context, bucket, prefix, region string) (*Mirror, error) {
	if bucket == "" {
		return nil, fmt.Errorf("no S3 bucket configured")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Mirror{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Upload writes one object under the mirror's prefix.
func (m *Mirror) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(m.prefix + key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := m.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 put failed: %w", err)
	}

	log.Printf("✓ Mirrored to s3://%s/%s%s", m.bucket, m.prefix, key)
	return nil
}
