package transport

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mkravets/uploadhub/internal/uploader"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// S3Settings configures the S3 transport. BaseEndpoint is optional and
// allows pointing at MinIO or another S3-compatible store.
type S3Settings struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string // e.g. MINIO_ROOT_USER
	SecretKey    string // e.g. MINIO_ROOT_PASSWORD
}

// S3 stores each payload as an object in a bucket, keyed by the file name.
// The request URL is ignored; the destination comes from S3Settings.
type S3 struct {
	settings S3Settings
}

func NewS3(settings S3Settings) *S3 {
	return &S3{settings: settings}
}

func (t *S3) getClient(ctx context.Context) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(t.settings.Region),
	}
	if t.settings.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(t.settings.AccessKey, t.settings.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if t.settings.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(t.settings.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return client, nil
}

func (t *S3) Upload(ctx context.Context, req uploader.Request, progress func(percent int)) (*uploader.Response, error) {

	client, err := t.getClient(ctx)
	if err != nil {
		return nil, err
	}

	body := newProgressReader(bytes.NewReader(req.Payload), int64(len(req.Payload)), progress)

	contentType := req.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	out, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:        aws.String(t.settings.Bucket),
		Key:           aws.String(req.Name),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(req.Payload))),
	})
	if err != nil {
		return nil, classify(ctx, err)
	}

	resp := &uploader.Response{StatusCode: 200}
	if out.ETag != nil {
		resp.Body = []byte(*out.ETag)
	}
	return resp, nil
}
