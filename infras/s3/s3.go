package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"tripbook/config"
	"tripbook/infras/otel"
	"tripbook/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "key"
	otelAttrBucket = "bucket"
)

// Object is one file put into the configured bucket under Key.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
	Metadata    map[string]string
}

type S3 interface {
	Put(ctx context.Context, object Object) (url string, err error)
	Delete(ctx context.Context, key string) error
}

type s3Impl struct {
	client *s3.Client
	bucket string
	domain string
	otel   otel.Otel
}

func (svc *s3Impl) scope(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+op)
	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
	})

	return ctx, scope
}

// URL is where a stored key is served from.
func (svc *s3Impl) URL(key string) string {
	return strings.TrimSuffix(svc.domain, "/") + "/" + strings.TrimPrefix(key, "/")
}

// Put uploads object and returns its public URL.
func (svc *s3Impl) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.scope(ctx, "Put", object.Key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := bytes.NewReader(object.Body)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(object.Key),
		Body:          body,
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(body.Size()),
		Metadata:      object.Metadata,
	})
	if err != nil {
		log.Error().Err(err).Str("key", object.Key).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to put object %s: %w", object.Key, err)
	}

	return svc.URL(object.Key), nil
}

func (svc *s3Impl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.scope(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		client: client,
		bucket: config.External.S3.BucketName,
		domain: config.External.S3.PublicDomain,
		otel:   otel,
	}
}
