package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := ParseDecimal(s)
	require.NoError(t, err)
	return d
}

func TestSortKey(t *testing.T) {
	r := BillingRecord{InvoiceID: "INV1", ProductCode: "EC2"}
	assert.Equal(t, "INV1#EC2", r.SortKey())
}

func TestCSVRowMatchesHeader(t *testing.T) {
	r := BillingRecord{
		PayerAccountID:      "123",
		InvoiceID:           "INV1",
		ProductCode:         "EC2",
		BillPeriodStartDate: "2023-01",
		CostBeforeTax:       mustDecimal(t, "100.50"),
	}
	row := r.CSVRow()
	require.Len(t, row, len(BillingCSVHeader))
	assert.Equal(t, "123", row[0])
	assert.Equal(t, "INV1", row[1])
	assert.Equal(t, "EC2", row[2])
	assert.Equal(t, "2023-01", row[3])
	assert.Equal(t, "100.50", row[4])
}

func TestSummarize(t *testing.T) {
	items := []BillingRecord{
		{PayerAccountID: "123", InvoiceID: "INV1", ProductCode: "EC2", BillPeriodStartDate: "2023-01", CostBeforeTax: mustDecimal(t, "100.50")},
		{PayerAccountID: "123", InvoiceID: "INV1", ProductCode: "S3", BillPeriodStartDate: "2023-01", CostBeforeTax: mustDecimal(t, "9.50")},
		{PayerAccountID: "456", InvoiceID: "INV2", ProductCode: "EC2", BillPeriodStartDate: "2023-02", CostBeforeTax: mustDecimal(t, "40")},
	}
	s := Summarize(items)
	assert.Equal(t, 2, s.DistinctAccounts)
	assert.Equal(t, 2, s.DistinctInvoices)
	assert.Equal(t, 2, s.DistinctDates)
	assert.Equal(t, 2, s.DistinctProducts)
	assert.Equal(t, "150.00", s.TotalCostBeforeTax.String())
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.DistinctAccounts)
	assert.True(t, s.TotalCostBeforeTax.IsZero())
}
