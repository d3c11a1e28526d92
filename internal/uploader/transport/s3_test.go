package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/uploadhub/internal/uploader"
)

// stubS3 replaces the AWS wiring hooks for the duration of a test.
func stubS3(t *testing.T, put func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error)) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.New(s3.Options{})
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return put(ctx, in)
	}
}

func TestS3_Upload_PutsObjectAndReportsProgress(t *testing.T) {
	var gotBucket, gotKey, gotContentType string
	var gotLen int64

	stubS3(t, func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = aws.ToString(in.Bucket)
		gotKey = aws.ToString(in.Key)
		gotContentType = aws.ToString(in.ContentType)
		gotLen = aws.ToInt64(in.ContentLength)

		_, err := io.Copy(io.Discard, in.Body)
		require.NoError(t, err)

		return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
	})

	var percents []int
	payload := bytes.Repeat([]byte("y"), 128*1024)

	tr := NewS3(S3Settings{Region: "us-east-1", Bucket: "uploads"})
	resp, err := tr.Upload(context.Background(), uploader.Request{
		Name:     "pic.png",
		MimeType: "image/png",
		Payload:  payload,
	}, func(p int) { percents = append(percents, p) })

	require.NoError(t, err)
	assert.Equal(t, "uploads", gotBucket)
	assert.Equal(t, "pic.png", gotKey)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, int64(len(payload)), gotLen)
	assert.Equal(t, []byte(`"abc123"`), resp.Body)

	require.NotEmpty(t, percents)
	assert.Equal(t, 100, percents[len(percents)-1])
}

func TestS3_Upload_CancelledReturnsErrAborted(t *testing.T) {
	stubS3(t, func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, fmt.Errorf("operation error S3: PutObject: %w", context.Canceled)
	})

	tr := NewS3(S3Settings{Region: "us-east-1", Bucket: "uploads"})
	_, err := tr.Upload(context.Background(), uploader.Request{
		Name:    "a.txt",
		Payload: []byte("data"),
	}, nil)

	require.ErrorIs(t, err, uploader.ErrAborted)
}

func TestS3_Upload_PutErrorIsFailure(t *testing.T) {
	stubS3(t, func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("access denied")
	})

	tr := NewS3(S3Settings{Region: "us-east-1", Bucket: "uploads"})
	_, err := tr.Upload(context.Background(), uploader.Request{
		Name:    "a.txt",
		Payload: []byte("data"),
	}, nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, uploader.ErrAborted)
}
