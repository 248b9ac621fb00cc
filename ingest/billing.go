package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/nelmak/billquest/domain"
	"github.com/nelmak/billquest/model"
)

var requiredBillingColumns = []string{
	"payer_account_id",
	"invoice_id",
	"product_code",
	"bill_period_start_date",
}

// BillingIngestor loads uploaded billing CSVs into the billing table.
type BillingIngestor struct {
	store   domain.BillingStore
	objects domain.ObjectStore
	log     logrus.FieldLogger
}

func NewBillingIngestor(store domain.BillingStore, objects domain.ObjectStore, log logrus.FieldLogger) *BillingIngestor {
	return &BillingIngestor{store: store, objects: objects, log: log}
}

// HandleEvent processes every file referenced by the S3 notification. Files
// already carrying the processed marker are skipped. A parse-level failure
// on one file does not stop the others; the first error is returned after
// all records are attempted.
func (ing *BillingIngestor) HandleEvent(ctx context.Context, event events.S3Event) (Result, error) {
	var total Result
	var firstErr error
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}
		log := ing.log.WithFields(logrus.Fields{"bucket": bucket, "key": key})

		res, err := ing.processFile(bucket, key, log)
		total.Processed += res.Processed
		total.Skipped += res.Skipped
		total.Errors += res.Errors
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return total, firstErr
}

func (ing *BillingIngestor) processFile(bucket, key string, log logrus.FieldLogger) (Result, error) {
	processed, err := ing.objects.IsProcessed(bucket, key)
	if err != nil {
		return Result{}, fmt.Errorf("check processed marker: %w", err)
	}
	if processed {
		log.Info("file already processed, skipping")
		return Result{}, nil
	}

	body, err := ing.objects.Fetch(bucket, key)
	if err != nil {
		return Result{}, err
	}
	defer body.Close()

	records, res, err := ParseBillingRows(body, time.Now().UTC(), log)
	if err != nil {
		return res, fmt.Errorf("parse %s: %w", key, err)
	}

	wrote, err := ing.store.PutRecords(records)
	if err != nil {
		return res, fmt.Errorf("write billing records: %w", err)
	}
	log.WithFields(logrus.Fields{
		"written": wrote,
		"errors":  res.Errors,
	}).Info("billing file ingested")

	// Marker failure is logged, not fatal: the data is already stored and a
	// replay would only overwrite the same keys.
	if err := ing.objects.MarkProcessed(bucket, key); err != nil {
		log.WithError(err).Error("failed to mark file as processed")
	}
	return res, nil
}

// ParseBillingRows reads a billing CSV. A header missing any required column
// aborts the whole file. A row missing any key field is a row-level error
// and the batch continues. Rows sharing a (account, invoice, product) key
// collapse to the last occurrence, mirroring the store's last-write-wins.
func ParseBillingRows(r io.Reader, uploadedAt time.Time, log logrus.FieldLogger) ([]model.BillingRecord, Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, Result{}, fmt.Errorf("read header: %w", err)
	}
	cols := cleanHeader(header)
	for _, col := range requiredBillingColumns {
		if _, ok := cols[col]; !ok {
			return nil, Result{}, fmt.Errorf("missing required column: %s", col)
		}
	}

	uploadTimestamp := uploadedAt.Format(time.RFC3339)
	var order []string
	byKey := make(map[string]model.BillingRecord)
	var res Result
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithField("row", rowNum).WithError(err).Error("unreadable row")
			res.Errors++
			continue
		}

		rec := model.BillingRecord{
			PayerAccountID:      field(row, cols, "payer_account_id"),
			InvoiceID:           field(row, cols, "invoice_id"),
			ProductCode:         field(row, cols, "product_code"),
			BillPeriodStartDate: field(row, cols, "bill_period_start_date"),
			UploadTimestamp:     uploadTimestamp,
		}
		if rec.PayerAccountID == "" || rec.InvoiceID == "" || rec.ProductCode == "" || rec.BillPeriodStartDate == "" {
			log.WithField("row", rowNum).Error("missing required key fields")
			res.Errors++
			continue
		}
		rec.InvoiceProductKey = rec.SortKey()

		rec.CostBeforeTax = numeric(row, cols, "cost_before_tax", rowNum, log)
		rec.CreditsBeforeDiscount = numeric(row, cols, "credits_before_discount", rowNum, log)
		rec.CreditsAfterDiscount = numeric(row, cols, "credits_after_discount", rowNum, log)
		rec.SPDiscount = numeric(row, cols, "sp_discount", rowNum, log)
		rec.UBDDiscount = numeric(row, cols, "ubd_discount", rowNum, log)
		rec.PRCDiscount = numeric(row, cols, "prc_discount", rowNum, log)
		rec.RVDDiscount = numeric(row, cols, "rvd_discount", rowNum, log)
		rec.EDPDiscount = numeric(row, cols, "edp_discount", rowNum, log)
		rec.EDPDiscountPercent = numeric(row, cols, "edp_discount_%", rowNum, log)

		key := rec.PayerAccountID + "|" + rec.InvoiceProductKey
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = rec
	}

	records := make([]model.BillingRecord, 0, len(order))
	for _, key := range order {
		records = append(records, byKey[key])
	}
	res.Processed = len(records)
	return records, res, nil
}

// numeric coerces a cost/discount cell to a decimal. Empty cells, NaN,
// Infinity, and unparsable values all become zero; only the last two are
// worth a log line.
func numeric(row []string, cols map[string]int, name string, rowNum int, log logrus.FieldLogger) model.Decimal {
	raw := field(row, cols, name)
	if raw == "" {
		return model.Decimal{}
	}
	d, err := model.ParseDecimal(raw)
	if err != nil {
		log.WithFields(logrus.Fields{"row": rowNum, "column": name, "value": raw}).
			Warn("unparsable numeric value, using 0")
		return model.Decimal{}
	}
	return d
}
