package domain

import (
	"errors"
	"io"

	"github.com/nelmak/billquest/model"
)

// ErrNotFound is returned by stores when a key has no record.
var ErrNotFound = errors.New("not found")

type BillingStore interface {
	PutRecords(records []model.BillingRecord) (int, error)
	QueryByAccount(accountID, invoiceID, billPeriodStartDate string) ([]model.BillingRecord, error)
	QueryByDate(billPeriodStartDate, productCode string) ([]model.BillingRecord, error)
	QueryByInvoice(invoiceID string) ([]model.BillingRecord, error)
}

type UserInfoStore interface {
	PutUserInfo(rec model.UserInfoRecord) error
	GetUserInfo(email string) (model.UserInfoRecord, error)
}

type ProductCatalog interface {
	Search(prefix string) ([]model.Product, error)
}

// ObjectStore is the slice of S3 the ingestion functions need: fetch an
// uploaded file and track the processed marker on it.
type ObjectStore interface {
	Fetch(bucket, key string) (io.ReadCloser, error)
	IsProcessed(bucket, key string) (bool, error)
	MarkProcessed(bucket, key string) error
}

type LocalFileRepository interface {
	Add(name string, dataURL string) (string, error)
	Remove(filename string)
}

type ObjectUploader interface {
	Add(localFilePath string, bucket string, key string) error
}
