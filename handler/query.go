package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nelmak/billquest/apperr"
	"github.com/nelmak/billquest/model"
)

type queryRequest struct {
	QueryType           string `form:"queryType" binding:"omitempty,oneof=account date invoice"`
	AccountID           string `form:"accountId"`
	BillPeriodStartDate string `form:"billPeriodStartDate"`
	InvoiceID           string `form:"invoiceId"`
	ProductCode         string `form:"productCode"`
	Format              string `form:"format" binding:"omitempty,oneof=json csv"`
}

type queryResponse struct {
	Items   []model.BillingRecord `json:"items"`
	Count   int                   `json:"count"`
	Summary model.QuerySummary    `json:"summary"`
}

// ServeQuery dispatches on queryType and returns matching billing records as
// a JSON envelope or, with format=csv, a downloadable flat file.
func (h *Handler) ServeQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.fail(c, apperr.BadRequest(bindErrorMessage(err)))
		return
	}
	if req.QueryType == "" {
		req.QueryType = "account"
	}

	var items []model.BillingRecord
	var err error
	switch req.QueryType {
	case "account":
		if req.AccountID == "" {
			h.fail(c, apperr.BadRequest("Missing 'accountId' parameter"))
			return
		}
		items, err = h.billing.QueryByAccount(req.AccountID, req.InvoiceID, req.BillPeriodStartDate)
	case "date":
		if req.BillPeriodStartDate == "" {
			h.fail(c, apperr.BadRequest("Missing 'billPeriodStartDate' parameter"))
			return
		}
		items, err = h.billing.QueryByDate(req.BillPeriodStartDate, req.ProductCode)
	case "invoice":
		if req.InvoiceID == "" {
			h.fail(c, apperr.BadRequest("Missing 'invoiceId' parameter"))
			return
		}
		items, err = h.billing.QueryByInvoice(req.InvoiceID)
	}
	if err != nil {
		h.fail(c, apperr.Internal(fmt.Sprintf("Error querying data: %s", err)))
		return
	}
	if items == nil {
		items = []model.BillingRecord{}
	}

	if req.Format == "csv" {
		writeCSV(c, req, items)
		return
	}
	c.JSON(http.StatusOK, queryResponse{
		Items:   items,
		Count:   len(items),
		Summary: model.Summarize(items),
	})
}

func writeCSV(c *gin.Context, req queryRequest, items []model.BillingRecord) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvFileName(req)))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write(model.BillingCSVHeader)
	for i := range items {
		w.Write(items[i].CSVRow())
	}
	w.Flush()
}

// csvFileName names the download after the filters that produced it, e.g.
// billing_account_123_INV1.csv.
func csvFileName(req queryRequest) string {
	parts := []string{"billing", req.QueryType}
	for _, v := range []string{req.AccountID, req.InvoiceID, req.BillPeriodStartDate, req.ProductCode} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	name := strings.Join(parts, "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', ' ':
			return '-'
		}
		return r
	}, name)
	return name + ".csv"
}

// bindErrorMessage flattens validator errors into the descriptive messages
// the UI shows verbatim.
func bindErrorMessage(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("invalid value for '%s'", fe.Field())
		}
		return strings.Join(fields, "; ")
	}
	return err.Error()
}
