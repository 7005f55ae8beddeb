package imagestore

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/inkwell/inkwell/api/internal/config"
)

// UploadResult is the URL + object key pair a successful upload produces.
// The two are stored together or not at all.
type UploadResult struct {
	URL      string
	PublicID string
}

// Store is the remote image store. The application keeps only references;
// the store owns the bytes and must be told explicitly when to drop them.
type Store interface {
	Upload(fileName string, file multipart.File, contentType string) (*UploadResult, error)
	Delete(publicID string) error
}

var (
	store Store
	once  sync.Once
)

// Initialize sets up the S3-backed store from config
func Initialize(cfg *config.Config) error {
	var initErr error
	once.Do(func() {
		s, err := NewS3Store(cfg)
		if err != nil {
			initErr = err
			return
		}
		store = s
	})
	return initErr
}

// GetStore returns the store instance
func GetStore() Store {
	return store
}

// SetStore sets the store instance (for testing purposes only)
func SetStore(s Store) {
	store = s
}

type S3Store struct {
	s3Client *s3.S3
	bucket   string
	prefix   string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &S3Store{
		s3Client: s3.New(sess),
		bucket:   cfg.S3BucketName,
		prefix:   "blog-images",
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, _ = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
	}

	return client, nil
}

func (c *S3Store) Upload(fileName string, file multipart.File, contentType string) (*UploadResult, error) {
	key := fmt.Sprintf("%s/%s%s", c.prefix, uuid.New().String(), path.Ext(fileName))

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	_, err := c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return &UploadResult{URL: c.objectURL(key), PublicID: key}, nil
}

func (c *S3Store) Delete(publicID string) error {
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (c *S3Store) objectURL(key string) string {
	endpoint := aws.StringValue(c.s3Client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		// MinIO URL format
		protocol := "http"
		if c.s3Client.Config.DisableSSL != nil && !*c.s3Client.Config.DisableSSL {
			protocol = "https"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, c.bucket, key)
	}

	region := aws.StringValue(c.s3Client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, region, key)
}
