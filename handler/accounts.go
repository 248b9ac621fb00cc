package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nelmak/billquest/apperr"
	"github.com/nelmak/billquest/domain"
)

// ServeUserAccounts returns the payer account ids stored for an email.
// Sits behind RequireAuth.
func (h *Handler) ServeUserAccounts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		h.fail(c, apperr.BadRequest("Missing 'email' parameter"))
		return
	}
	rec, err := h.users.GetUserInfo(email)
	if errors.Is(err, domain.ErrNotFound) {
		h.fail(c, apperr.NotFound(fmt.Sprintf("No accounts found for email: %s", email)))
		return
	}
	if err != nil {
		h.fail(c, apperr.Internal(fmt.Sprintf("Database error: %s", err)))
		return
	}
	c.JSON(http.StatusOK, rec)
}
