package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"hr-automation-hub/config"
)

// Provider — бинарное хранилище резюме поверх S3.
// Метаданные файлов лежат в БД (dbmodels.Resume), здесь только блобы.
type Provider interface {
	UploadResume(ctx context.Context, fileReader io.Reader, fileSize int64, contentType string) (fileKey string, err error)
	GetResume(ctx context.Context, fileKey string) ([]byte, error)
	MakeResumeBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileKey := uuid.NewString()
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.ResumeBucket, fileKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки резюме в S3")
	}
	return fileKey, nil
}

func (i impl) GetResume(ctx context.Context, fileKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.ResumeBucket, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения резюме из S3")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, object); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения резюме из S3")
	}
	return buf.Bytes(), nil
}

func (i impl) MakeResumeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.ResumeBucket
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
