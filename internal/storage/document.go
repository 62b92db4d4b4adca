package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/visahub/visahub/internal/config"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
)

// DocumentStore persists uploaded application documents and returns an
// opaque storage reference to record against the application.
type DocumentStore interface {
	Upload(ctx context.Context, applicationID, fileName, contentType string, data []byte) (string, error)
}

type s3DocumentStore struct {
	client *s3.Client
	cfg    *config.S3Config
	logger *logger.Logger
}

// localDocumentStore is used when S3 is disabled. It does not persist
// anything; it only synthesizes a reference so stub deployments can
// exercise the upload flow end to end.
type localDocumentStore struct {
	logger *logger.Logger
}

// NewDocumentStore creates the document store matching the configuration.
func NewDocumentStore(cfg *config.Configuration, log *logger.Logger) (DocumentStore, error) {
	if !cfg.S3.Enabled {
		log.Infow("document storage disabled, using synthesized local references")
		return &localDocumentStore{logger: log}, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.S3.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load AWS configuration").
			Mark(ierr.ErrHTTPClient)
	}

	return &s3DocumentStore{
		client: s3.NewFromConfig(awsCfg),
		cfg:    &cfg.S3,
		logger: log,
	}, nil
}

func (s *s3DocumentStore) objectKey(applicationID, fileName string) string {
	name := sanitizeFileName(fileName)
	key := path.Join(applicationID, name)
	if s.cfg.KeyPrefix != "" {
		key = path.Join(s.cfg.KeyPrefix, key)
	}
	return key
}

func (s *s3DocumentStore) Upload(ctx context.Context, applicationID, fileName, contentType string, data []byte) (string, error) {
	key := s.objectKey(applicationID, fileName)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.DocumentsBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to upload document").
			WithMessage(fmt.Sprintf("bucket:%s, key:%s", s.cfg.DocumentsBucket, key)).
			Mark(ierr.ErrHTTPClient)
	}

	return fmt.Sprintf("s3://%s/%s", s.cfg.DocumentsBucket, key), nil
}

func (s *localDocumentStore) Upload(_ context.Context, applicationID, fileName, _ string, data []byte) (string, error) {
	ref := fmt.Sprintf("local://%s", path.Join(applicationID, sanitizeFileName(fileName)))
	s.logger.Debugw("document storage disabled, recording reference only",
		"reference", ref,
		"size_bytes", len(data),
	)
	return ref, nil
}

// sanitizeFileName strips any path components from a client-supplied
// file name so it cannot escape the application's key space.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "document"
	}
	return name
}
