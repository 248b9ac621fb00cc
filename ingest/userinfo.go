package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/nelmak/billquest/domain"
	"github.com/nelmak/billquest/model"
)

// UserInfoUpdater loads email → payer-account mappings from uploaded CSVs.
// Each row fully replaces the stored account set for its email.
type UserInfoUpdater struct {
	store   domain.UserInfoStore
	objects domain.ObjectStore
	log     logrus.FieldLogger
}

func NewUserInfoUpdater(store domain.UserInfoStore, objects domain.ObjectStore, log logrus.FieldLogger) *UserInfoUpdater {
	return &UserInfoUpdater{store: store, objects: objects, log: log}
}

func (u *UserInfoUpdater) HandleEvent(ctx context.Context, event events.S3Event) (Result, error) {
	var total Result
	var firstErr error
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}
		log := u.log.WithFields(logrus.Fields{"bucket": bucket, "key": key})

		res, err := u.processFile(bucket, key, log)
		total.Processed += res.Processed
		total.Skipped += res.Skipped
		total.Errors += res.Errors
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return total, firstErr
}

func (u *UserInfoUpdater) processFile(bucket, key string, log logrus.FieldLogger) (Result, error) {
	body, err := u.objects.Fetch(bucket, key)
	if err != nil {
		return Result{}, err
	}
	defer body.Close()

	records, res, err := ParseUserInfoRows(body, log)
	if err != nil {
		return res, fmt.Errorf("parse %s: %w", key, err)
	}

	for _, rec := range records {
		if err := u.store.PutUserInfo(rec); err != nil {
			log.WithField("email", rec.Email).WithError(err).Error("failed to store user info")
			res.Processed--
			res.Errors++
			continue
		}
		log.WithFields(logrus.Fields{
			"email":    rec.Email,
			"accounts": len(rec.PayerAccountIDs),
		}).Info("user info updated")
	}
	log.WithFields(logrus.Fields{
		"processed": res.Processed,
		"skipped":   res.Skipped,
		"errors":    res.Errors,
	}).Info("user info file processed")
	return res, nil
}

// ParseUserInfoRows reads a user-info CSV with email and a semicolon-joined
// payer_account_id column. Rows with an empty email, an address without '@',
// or no account ids are skipped; the batch continues.
func ParseUserInfoRows(r io.Reader, log logrus.FieldLogger) ([]model.UserInfoRecord, Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, Result{}, fmt.Errorf("read header: %w", err)
	}
	cols := cleanHeader(header)
	for _, col := range []string{"email", "payer_account_id"} {
		if _, ok := cols[col]; !ok {
			return nil, Result{}, fmt.Errorf("missing required column: %s", col)
		}
	}

	var records []model.UserInfoRecord
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

		email := field(row, cols, "email")
		rawIDs := field(row, cols, "payer_account_id")
		if email == "" || rawIDs == "" {
			log.WithField("row", rowNum).Warn("skipping row with empty values")
			res.Skipped++
			continue
		}
		if !strings.Contains(email, "@") {
			log.WithFields(logrus.Fields{"row": rowNum, "email": email}).Warn("invalid email format")
			res.Skipped++
			continue
		}

		var ids []string
		for _, id := range strings.Split(rawIDs, ";") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			log.WithField("row", rowNum).Warn("skipping row with no account ids")
			res.Skipped++
			continue
		}

		records = append(records, model.UserInfoRecord{Email: email, PayerAccountIDs: ids})
		res.Processed++
	}
	return records, res, nil
}
