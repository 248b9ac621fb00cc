package file

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/nelmak/billquest/config"
	"github.com/nelmak/billquest/domain"
)

type s3RepositoryImpl struct {
	region string
}

func NewS3Repository(cfg config.Config) domain.ObjectUploader {
	return s3RepositoryImpl{region: cfg.Region}
}

// Add uploads a staged local file to the given bucket and key. The resulting
// object-arrival notification drives the matching ingestion function.
func (impl s3RepositoryImpl) Add(localFilePath string, bucket string, key string) error {
	f, openErr := os.Open(localFilePath)
	if openErr != nil {
		return openErr
	}
	defer f.Close()

	uploader := s3manager.NewUploader(impl.newSession())
	if _, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		return err
	}
	return nil
}

func (impl s3RepositoryImpl) newSession() *session.Session {
	return session.Must(session.NewSession(&aws.Config{
		Region: aws.String(impl.region),
	}))
}
