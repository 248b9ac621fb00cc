package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nelmak/billquest/apperr"
)

// ServeProductSearch backs the product-code autocomplete in the query form.
func (h *Handler) ServeProductSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		h.fail(c, apperr.BadRequest("Missing 'q' parameter"))
		return
	}
	products, err := h.catalog.Search(q)
	if err != nil {
		h.fail(c, apperr.Internal(fmt.Sprintf("Catalog error: %s", err)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": products})
}
