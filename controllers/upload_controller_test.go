package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, base64Data, filenamePrefix string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/meal-images/test.jpg", nil
}

func uploadRouter(uploader Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/uploads", NewUploadController(uploader).UploadImage)
	return r
}

func postUpload(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/uploads", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUploadImageSuccess(t *testing.T) {
	uploader := &fakeUploader{}
	r := uploadRouter(uploader)

	rec := postUpload(r, `{"imageBase64":"data:image/png;base64,aGVsbG8="}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/meal-images/test.jpg")
	assert.Equal(t, 1, uploader.calls)
}

func TestUploadImageRejectsNonDataURL(t *testing.T) {
	uploader := &fakeUploader{}
	r := uploadRouter(uploader)

	rec := postUpload(r, `{"imageBase64":"hello there"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, uploader.calls)

	rec = postUpload(r, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadImageRejectsOversizedPayload(t *testing.T) {
	uploader := &fakeUploader{}
	r := uploadRouter(uploader)

	payload := "data:image/png;base64," + strings.Repeat("A", maxUploadSize)
	rec := postUpload(r, `{"imageBase64":"`+payload+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "file too large")
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadImageHostFailure(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("bucket unreachable")}
	r := uploadRouter(uploader)

	rec := postUpload(r, `{"imageBase64":"data:image/png;base64,aGVsbG8="}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upload failed")
}
