package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/nelmak/billquest/config"
	"github.com/nelmak/billquest/domain"
)

type objectStore struct {
	svc *s3.S3
}

func NewObjectStore(cfg config.Config) domain.ObjectStore {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	}))
	return &objectStore{svc: s3.New(sess)}
}

func (o *objectStore) Fetch(bucket, key string) (io.ReadCloser, error) {
	out, err := o.svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}

// IsProcessed reports whether the object already carries the processed
// marker. A missing object counts as unprocessed; the subsequent Fetch will
// surface the real error.
func (o *objectStore) IsProcessed(bucket, key string) (bool, error) {
	head, err := o.svc.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return false, nil
		}
		return false, err
	}
	for k, v := range head.Metadata {
		if strings.EqualFold(k, "processed") && v != nil && *v == "true" {
			return true, nil
		}
	}
	return false, nil
}

// MarkProcessed rewrites the object metadata in place via a self-copy, so a
// redelivered S3 notification for the same file becomes a no-op.
func (o *objectStore) MarkProcessed(bucket, key string) error {
	_, err := o.svc.CopyObject(&s3.CopyObjectInput{
		Bucket:            aws.String(bucket),
		Key:               aws.String(key),
		CopySource:        aws.String(bucket + "/" + key),
		Metadata:          map[string]*string{"processed": aws.String("true")},
		MetadataDirective: aws.String(s3.MetadataDirectiveReplace),
	})
	return err
}
