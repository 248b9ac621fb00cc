package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nelmak/billquest/apperr"
	"github.com/nelmak/billquest/config"
	"github.com/nelmak/billquest/domain"
)

// Handler holds every dependency the API routes need. Constructed once per
// cold start.
type Handler struct {
	cfg      config.Config
	billing  domain.BillingStore
	users    domain.UserInfoStore
	catalog  domain.ProductCatalog
	files    domain.LocalFileRepository
	uploader domain.ObjectUploader
	log      logrus.FieldLogger
}

func New(cfg config.Config, billing domain.BillingStore, users domain.UserInfoStore,
	catalog domain.ProductCatalog, files domain.LocalFileRepository,
	uploader domain.ObjectUploader, log logrus.FieldLogger) *Handler {
	return &Handler{
		cfg:      cfg,
		billing:  billing,
		users:    users,
		catalog:  catalog,
		files:    files,
		uploader: uploader,
		log:      log,
	}
}

func (h *Handler) AddCorsHeader(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", h.cfg.AllowedOrigin)
	c.Header("Access-Control-Allow-Credentials", "true")
	c.Header("Access-Control-Allow-Headers", "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token")
}

func (h *Handler) ServePreflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Status(http.StatusOK)
}

// fail translates any error into the response envelope: typed errors keep
// their status, everything else is a 500. Server errors log at error level,
// client errors at warn.
func (h *Handler) fail(c *gin.Context, err error) {
	e := apperr.From(err)
	requestID := RequestID(c)
	log := loggerFrom(c, h.log).WithFields(logrus.Fields{
		"error_type": e.Type,
		"status":     e.Status,
	})
	if e.Status >= http.StatusInternalServerError {
		log.Error(e.Message)
	} else {
		log.Warn(e.Message)
	}
	c.AbortWithStatusJSON(e.Status, gin.H{
		"error":     e.Type,
		"message":   e.Message,
		"requestId": requestID,
	})
}
