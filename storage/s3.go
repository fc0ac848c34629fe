package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"trend-writer/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store legt Records als <prefix>/<id>/index.md in einem S3-Bucket ab.
type S3Store struct {
	Client *s3.Client
	Config *config.Config
}

// NewS3Store erstellt einen S3-Client für einen S3-kompatiblen Anbieter
// (eigener Endpoint, statische Credentials) und verpackt ihn als Store.
func NewS3Store(cfg *config.Config) (*S3Store, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.S3URL,
				SigningRegion:     cfg.S3Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3Key, cfg.S3Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, err
	}

	return &S3Store{Client: s3.NewFromConfig(awsCfg), Config: cfg}, nil
}

// Exists prüft per HeadObject, ob der Record bereits im Bucket liegt.
func (s *S3Store) Exists(id string) (bool, error) {
	key := s.key(id)
	_, err := s.Client.HeadObject(context.TODO(), &s3.HeadObjectInput{
		Bucket: &s.Config.S3Bucket,
		Key:    &key,
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Write lädt den Record in den Bucket hoch.
func (s *S3Store) Write(id string, data []byte) error {
	key := s.key(id)
	contentType := "text/markdown; charset=utf-8"
	_, err := s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      &s.Config.S3Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	return err
}

// Location gibt die Objekt-URL des Records zurück.
func (s *S3Store) Location(id string) string {
	return fmt.Sprintf("%s/%s/%s", s.Config.S3URL, s.Config.S3Bucket, s.key(id))
}

func (s *S3Store) key(id string) string {
	return path.Join(s.Config.S3Prefix, id, recordFileName)
}
