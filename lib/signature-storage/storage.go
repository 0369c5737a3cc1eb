package signaturestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"campus-outpass-backend/config"
	"campus-outpass-backend/s3client"
)

type Provider interface {
	GetSignature(ctx context.Context, objectKey string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// GetSignature fetches an approver signature image by object key. A nil
// S3 client is not an error, the outpass just renders without the image.
func (i impl) GetSignature(ctx context.Context, objectKey string) ([]byte, error) {
	if s3client.Client == nil || objectKey == "" {
		return nil, nil
	}
	obj, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "signature fetch failed")
	}
	defer obj.Close()
	buf := bytes.Buffer{}
	if _, err = io.Copy(&buf, obj); err != nil {
		return nil, errors.Wrap(err, "signature read failed")
	}
	return buf.Bytes(), nil
}
