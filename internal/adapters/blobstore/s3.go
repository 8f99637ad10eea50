package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/config"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var (
	_ ports.BlobStore     = (*S3)(nil)
	_ ports.HealthChecker = (*S3)(nil)
)

// s3API is the subset of the S3 client the store calls.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3 stores blobs as objects in one bucket.
type S3 struct {
	api    s3API
	bucket string
}

// NewS3 builds an S3 store from cfg. Requests go through httpClient so they
// share the service's retry, circuit breaker and tracing pipeline; the SDK's
// own retries are turned off to avoid retrying twice.
func NewS3(ctx context.Context, cfg *config.StorageConfig, httpClient aws.HTTPClient) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage.bucket is required for the s3 driver")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if httpClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(httpClient))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = "us-east-1"
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return newS3(client, cfg.Bucket), nil
}

func newS3(api s3API, bucket string) *S3 {
	return &S3{api: api, bucket: bucket}
}

func (s *S3) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.api.PutObject(ctx, in); err != nil {
		return s.translate("put", key, err)
	}
	return nil
}

func (s *S3) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.translate("get", key, err)
	}
	return out.Body, nil
}

// Delete succeeds for a missing object, as S3 itself does.
func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if err = s.translate("delete", key, err); errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *S3) Name() string { return "blob-store" }

// HealthCheck verifies the bucket exists and is reachable.
func (s *S3) HealthCheck(ctx context.Context) error {
	if _, err := s.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return s.translate("head bucket", s.bucket, err)
	}
	return nil
}

// translate maps SDK errors onto domain errors. Missing objects become
// ErrNotFound; transport and throttling failures become ErrUnavailable.
func (s *S3) translate(op, key string, err error) error {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return fmt.Errorf("s3 %s %s/%s: %w", op, s.bucket, key, domain.ErrNotFound)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("s3 %s %s/%s: %w", op, s.bucket, key, domain.ErrNotFound)
		case "SlowDown", "ServiceUnavailable", "InternalError", "RequestTimeout":
			return fmt.Errorf("s3 %s %s/%s: %w: %w", op, s.bucket, key, domain.ErrUnavailable, err)
		}
		return fmt.Errorf("s3 %s %s/%s: %w", op, s.bucket, key, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("s3 %s %s/%s: %w", op, s.bucket, key, err)
	}
	return fmt.Errorf("s3 %s %s/%s: %w: %w", op, s.bucket, key, domain.ErrUnavailable, err)
}
