package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"campus-outpass-backend/config"
	"campus-outpass-backend/s3client"
)

// InitS3 tolerates a missing object store: signature images are then
// simply left out of the outpass render.
func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 is not configured, outpass signatures disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("S3 client init failed")
		return
	}

	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection check failed")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
