package model

// BillingRecord is one line of the monthly billing extract: the cost and
// discount amounts for one (payer account, invoice, product) triple.
// The table keys on payer_account_id with a composite invoice_id#product_code
// sort key, so re-ingesting the same triple overwrites in place.
type BillingRecord struct {
	PayerAccountID        string  `json:"payer_account_id" dynamo:"payer_account_id"`
	InvoiceProductKey     string  `json:"invoice_id#product_code" dynamo:"invoice_id#product_code"`
	InvoiceID             string  `json:"invoice_id" dynamo:"invoice_id"`
	ProductCode           string  `json:"product_code" dynamo:"product_code"`
	BillPeriodStartDate   string  `json:"bill_period_start_date" dynamo:"bill_period_start_date"`
	CostBeforeTax         Decimal `json:"cost_before_tax" dynamo:"cost_before_tax"`
	CreditsBeforeDiscount Decimal `json:"credits_before_discount" dynamo:"credits_before_discount"`
	CreditsAfterDiscount  Decimal `json:"credits_after_discount" dynamo:"credits_after_discount"`
	SPDiscount            Decimal `json:"sp_discount" dynamo:"sp_discount"`
	UBDDiscount           Decimal `json:"ubd_discount" dynamo:"ubd_discount"`
	PRCDiscount           Decimal `json:"prc_discount" dynamo:"prc_discount"`
	RVDDiscount           Decimal `json:"rvd_discount" dynamo:"rvd_discount"`
	EDPDiscount           Decimal `json:"edp_discount" dynamo:"edp_discount"`
	EDPDiscountPercent    Decimal `json:"edp_discount_percent" dynamo:"edp_discount_percent"`
	UploadTimestamp       string  `json:"upload_timestamp" dynamo:"upload_timestamp"`
}

// SortKey builds the composite sort key value for the record.
func (r *BillingRecord) SortKey() string {
	return r.InvoiceID + "#" + r.ProductCode
}

// BillingCSVHeader is the column order for CSV exports. Exported files must
// flatten every stored field, keys first.
var BillingCSVHeader = []string{
	"payer_account_id",
	"invoice_id",
	"product_code",
	"bill_period_start_date",
	"cost_before_tax",
	"credits_before_discount",
	"credits_after_discount",
	"sp_discount",
	"ubd_discount",
	"prc_discount",
	"rvd_discount",
	"edp_discount",
	"edp_discount_percent",
	"upload_timestamp",
}

// CSVRow flattens the record in BillingCSVHeader order.
func (r *BillingRecord) CSVRow() []string {
	return []string{
		r.PayerAccountID,
		r.InvoiceID,
		r.ProductCode,
		r.BillPeriodStartDate,
		r.CostBeforeTax.String(),
		r.CreditsBeforeDiscount.String(),
		r.CreditsAfterDiscount.String(),
		r.SPDiscount.String(),
		r.UBDDiscount.String(),
		r.PRCDiscount.String(),
		r.RVDDiscount.String(),
		r.EDPDiscount.String(),
		r.EDPDiscountPercent.String(),
		r.UploadTimestamp,
	}
}

// QuerySummary aggregates a query result set for the chart header in the UI.
type QuerySummary struct {
	DistinctAccounts   int     `json:"distinct_accounts"`
	DistinctInvoices   int     `json:"distinct_invoices"`
	DistinctDates      int     `json:"distinct_dates"`
	DistinctProducts   int     `json:"distinct_products"`
	TotalCostBeforeTax Decimal `json:"total_cost_before_tax"`
}

// Summarize computes distinct key counts and the cost_before_tax sum over
// a result set.
func Summarize(items []BillingRecord) QuerySummary {
	accounts := make(map[string]struct{})
	invoices := make(map[string]struct{})
	dates := make(map[string]struct{})
	products := make(map[string]struct{})
	var total Decimal
	for i := range items {
		accounts[items[i].PayerAccountID] = struct{}{}
		invoices[items[i].InvoiceID] = struct{}{}
		dates[items[i].BillPeriodStartDate] = struct{}{}
		products[items[i].ProductCode] = struct{}{}
		total = total.Add(items[i].CostBeforeTax)
	}
	return QuerySummary{
		DistinctAccounts:   len(accounts),
		DistinctInvoices:   len(invoices),
		DistinctDates:      len(dates),
		DistinctProducts:   len(products),
		TotalCostBeforeTax: total,
	}
}
