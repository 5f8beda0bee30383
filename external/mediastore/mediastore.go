package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaStore pushes a report attachment to object storage and returns its
// public URL. The rest of the service only depends on this contract.
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Config for the S3-compatible backing store. Endpoint is only set for
// non-AWS providers (R2, MinIO). PublicURL overrides the default
// virtual-hosted URL, for buckets served through a CDN.
type Config struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

type s3Store struct {
	uploader *manager.Uploader
	conf     Config
}

// NewS3Store builds a MediaStore backed by S3 or an S3-compatible service.
func NewS3Store(ctx context.Context, conf Config) (MediaStore, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Store{
		uploader: manager.NewUploader(client),
		conf:     conf,
	}, nil
}

func (s *s3Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.conf.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if s.conf.PublicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.conf.PublicURL, "/"), key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.conf.Bucket, s.conf.Region, key), nil
}
