// Package storage guarda os arquivos de certificado em armazenamento de objetos
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/config"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
)

// Garante que S3Storage implementa certificate.BlobStorage
var _ certificate.BlobStorage = (*S3Storage)(nil)

// S3Storage implementa certificate.BlobStorage sobre S3 ou serviço compatível (MinIO, RustFS)
type S3Storage struct {
	client *s3.Client
	bucket string
	logger logger.Logger
}

// NewS3Storage cria o cliente S3 a partir da configuração
func NewS3Storage(ctx context.Context, cfg config.S3Config, log logger.Logger) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket do armazenamento é obrigatório")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("credenciais do armazenamento são obrigatórias")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar configuração AWS: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3Storage{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

// Put grava o conteúdo sob a chave informada, substituindo o objeto existente
func (s *S3Storage) Put(ctx context.Context, key string, content []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String("application/x-pkcs12"),
	})
	if err != nil {
		return fmt.Errorf("falha ao gravar objeto %s: %w", key, err)
	}

	s.logger.Debug("Objeto gravado", "bucket", s.bucket, "key", key, "size", len(content))
	return nil
}

// Get lê o conteúdo gravado sob a chave informada
func (s *S3Storage) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, certificate.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("falha ao ler objeto %s: %w", key, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler conteúdo do objeto %s: %w", key, err)
	}
	return content, nil
}
