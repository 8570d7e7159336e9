package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// LocalImageStore writes uploads under Dir and serves them from /uploads/.
type LocalImageStore struct {
	Dir string
}

func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{Dir: dir}
}

func (s *LocalImageStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	path := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

type S3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3ImageStore struct {
	Client S3Putter
	Bucket string
	Region string
}

func NewS3ImageStore(client S3Putter, bucket, region string) *S3ImageStore {
	return &S3ImageStore{Client: client, Bucket: bucket, Region: region}
}

func (s *S3ImageStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key), nil
}
