package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nelmak/billquest/apperr"
	"github.com/nelmak/billquest/model"
	"github.com/nelmak/billquest/util"
)

type uploadRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=billing user-info"`
	Name    string `json:"name"`
	Content string `json:"content" binding:"required"`
}

// ServeFileUpload accepts a data-url CSV, stages it in /tmp, and drops it
// into the bucket whose arrival notification feeds the matching ingestion
// function. The manual path for files that don't come through the nightly
// extract.
func (h *Handler) ServeFileUpload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.BadRequest(bindErrorMessage(err)))
		return
	}

	name := req.Name
	if name == "" {
		name = "upload-" + util.Timestamp() + ".csv"
	}

	staged, err := h.files.Add(name, req.Content)
	if err != nil {
		h.files.Remove(staged)
		h.fail(c, apperr.BadRequest(fmt.Sprintf("Unreadable file content: %s", err)))
		return
	}
	defer h.files.Remove(staged)

	bucket := h.cfg.RawFilesBucket
	if model.UploadKind(req.Kind) == model.UploadUserInfo {
		bucket = h.cfg.UserAccessBucket
	}
	if err := h.uploader.Add(staged, bucket, name); err != nil {
		h.fail(c, apperr.Internal(fmt.Sprintf("Upload failed: %s", err)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"bucket": bucket, "key": name})
}
