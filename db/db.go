package db

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/guregu/dynamo"

	"github.com/nelmak/billquest/config"
	"github.com/nelmak/billquest/domain"
	"github.com/nelmak/billquest/model"
)

// GSIs on the billing table. DateProductIndex keys on
// (bill_period_start_date, product_code), InvoiceIndex on invoice_id.
const (
	dateProductIndex = "DateProductIndex"
	invoiceIndex     = "InvoiceIndex"
)

// Store wraps the two DynamoDB tables. All reads and writes are single-key
// operations; atomicity per key comes from DynamoDB itself.
type Store struct {
	billing  dynamo.Table
	userInfo dynamo.Table
}

func New(cfg config.Config) *Store {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.DynamoEndpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.DynamoEndpoint)
	}
	db := dynamo.New(session.Must(session.NewSession()), awsCfg)
	return &Store{
		billing:  db.Table(cfg.BillingTable),
		userInfo: db.Table(cfg.UserInfoTable),
	}
}

// PutRecords batch-writes billing records, 25 items per request. Returns how
// many were written. A write failure is surfaced, not retried.
func (s *Store) PutRecords(records []model.BillingRecord) (int, error) {
	items := make([]interface{}, len(records))
	for i := range records {
		items[i] = records[i]
	}
	return s.billing.Batch().Write().Put(items...).Run()
}

// QueryByAccount returns every record under a payer account, optionally
// narrowed on the sort key by invoice id or filtered by bill period date.
func (s *Store) QueryByAccount(accountID, invoiceID, billPeriodStartDate string) ([]model.BillingRecord, error) {
	q := s.billing.Get("payer_account_id", accountID)
	if invoiceID != "" {
		q = q.Range("invoice_id#product_code", dynamo.BeginsWith, invoiceID+"#")
	}
	if billPeriodStartDate != "" {
		q = q.Filter("'bill_period_start_date' = ?", billPeriodStartDate)
	}
	var out []model.BillingRecord
	err := q.All(&out)
	return out, err
}

func (s *Store) QueryByDate(billPeriodStartDate, productCode string) ([]model.BillingRecord, error) {
	q := s.billing.Get("bill_period_start_date", billPeriodStartDate).Index(dateProductIndex)
	if productCode != "" {
		q = q.Range("product_code", dynamo.Equal, productCode)
	}
	var out []model.BillingRecord
	err := q.All(&out)
	return out, err
}

func (s *Store) QueryByInvoice(invoiceID string) ([]model.BillingRecord, error) {
	var out []model.BillingRecord
	err := s.billing.Get("invoice_id", invoiceID).Index(invoiceIndex).All(&out)
	return out, err
}

func (s *Store) PutUserInfo(rec model.UserInfoRecord) error {
	return s.userInfo.Put(rec).Run()
}

func (s *Store) GetUserInfo(email string) (model.UserInfoRecord, error) {
	var rec model.UserInfoRecord
	err := s.userInfo.Get("email", email).One(&rec)
	if errors.Is(err, dynamo.ErrNotFound) {
		return rec, domain.ErrNotFound
	}
	return rec, err
}
