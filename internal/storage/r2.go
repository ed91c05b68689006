package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config points at an S3 compatible bucket (Cloudflare R2 in production).
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

func (c Config) validate() error {
	switch {
	case c.Bucket == "":
		return errors.New("bucket not set")
	case c.Endpoint == "":
		return errors.New("R2_ENDPOINT not set")
	case c.AccessKey == "" || c.SecretKey == "":
		return errors.New("R2 credentials not set")
	}
	return nil
}

type objectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type R2Client struct {
	client objectGetter
	bucket string
}

func NewR2Client(ctx context.Context, c Config) (*R2Client, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				c.AccessKey,
				c.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{client: client, bucket: c.Bucket}, nil
}

// Object returns a dataset source reading key from the client's bucket.
func (r *R2Client) Object(key string) *ObjectSource {
	return &ObjectSource{client: r.client, bucket: r.bucket, key: key}
}

// ObjectSource streams one object. It satisfies dataset.Source.
type ObjectSource struct {
	client objectGetter
	bucket string
	key    string
}

func (o *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", o, err)
	}
	return out.Body, nil
}

func (o *ObjectSource) String() string {
	return fmt.Sprintf("r2://%s/%s", o.bucket, o.key)
}
