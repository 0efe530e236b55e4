package controllers

import (
	"context"
	"net/http"
	"strings"

	"cooksync/pkg/resp"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

// Uploader stores an image from a base64 data URL and returns its durable
// public URL.
type Uploader interface {
	Upload(ctx context.Context, base64Data, filenamePrefix string) (string, error)
}

type UploadController struct {
	uploader Uploader
}

func NewUploadController(uploader Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

type UploadRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// Base64 payload cap; roughly 7.5MB of image.
const maxUploadSize = 10 * 1024 * 1024

// POST /api/uploads (protected) — the upload half of the add-meal form flow:
// the image goes to the host first, the returned URL then rides the create
// call.
func (ctl *UploadController) UploadImage(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !strings.HasPrefix(req.ImageBase64, "data:image/") {
		resp.Unprocessable(c, "invalid image format")
		return
	}
	if len(req.ImageBase64) > maxUploadSize {
		resp.Unprocessable(c, "file too large")
		return
	}

	url, err := ctl.uploader.Upload(c.Request.Context(), req.ImageBase64, utils.CurrentEmail(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "upload failed", "detail": err.Error()})
		return
	}

	resp.OK(c, gin.H{"url": url})
}
