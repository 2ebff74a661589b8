package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"hr-automation-hub/config"
	filestorage "hr-automation-hub/lib/file-storage"
)

func InitS3() *minio.Client {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return nil
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	log.Info("S3 клиент успешно инициализирован")
	return minioClient
}

func MakeResumeBucket(ctx context.Context) {
	if filestorage.Instance == nil {
		return
	}
	if err := filestorage.Instance.MakeResumeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для резюме")
	}
}
