package s3client

import (
	"github.com/minio/minio-go/v7"
)

// Client stays nil when S3 is not configured; consumers degrade to
// text-only rendering in that case.
var Client *minio.Client
