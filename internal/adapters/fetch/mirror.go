package fetch

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
)

// MirrorOpener opens key on an S3-compatible mirror and returns its body, its size and a label for logs.
type MirrorOpener func(ctx context.Context, m domain.Mirror, key string) (io.ReadCloser, int64, string, error)

// ObjectGetter is the subset of the S3 client used for mirror downloads.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func openS3(ctx context.Context, m domain.Mirror, key string) (io.ReadCloser, int64, string, error) {
	opts := []func(*config.LoadOptions) error{}
	if m.Region != "" {
		opts = append(opts, config.WithRegion(m.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, 0, m.Bucket, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "bucket", m.Bucket)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if m.Endpoint != "" {
			o.BaseEndpoint = aws.String(m.Endpoint)
			o.UsePathStyle = true
		}
	})
	return OpenObject(ctx, client, m, key)
}

// OpenObject fetches prefix+key from the mirror bucket through client.
func OpenObject(ctx context.Context, client ObjectGetter, m domain.Mirror, key string) (io.ReadCloser, int64, string, error) {
	objectKey := m.Prefix + key
	label := "s3://" + m.Bucket + "/" + objectKey

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, 0, label, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "object", label)
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}
	return out.Body, size, label, nil
}
