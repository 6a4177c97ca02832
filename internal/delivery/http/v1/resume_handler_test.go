package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go-careercoach-backend/internal/delivery/http/middleware"
	v1 "go-careercoach-backend/internal/delivery/http/v1"
	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResumeUsecase struct {
	uploaded *domain.UploadResult
	resume   *domain.Resume
	err      error
	calls    int
}

func (s *stubResumeUsecase) Upload(_ context.Context, fileName, path string) (*domain.UploadResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	// The temp file must exist while the pipeline runs.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return s.uploaded, nil
}

func (s *stubResumeUsecase) Get(context.Context) (*domain.Resume, error) {
	return s.resume, s.err
}

func newUploadRouter(uc domain.ResumeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	noLimit := func(c *gin.Context) { c.Next() }
	v1.NewResumeHandler(api, uc, noLimit)
	return r
}

func multipartResume(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestResumeUploadEndpoint(t *testing.T) {
	t.Run("Should accept a valid text resume", func(t *testing.T) {
		uc := &stubResumeUsecase{uploaded: &domain.UploadResult{Success: true, Message: "ok", ExtractedSkills: 2}}
		router := newUploadRouter(uc)

		body, contentType := multipartResume(t, "resume", "cv.txt", []byte("John Doe\nSkills: Go, SQL"))
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, uc.calls)

		var result domain.UploadResult
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.ExtractedSkills)
	})

	t.Run("Should reject a disallowed extension before running the pipeline", func(t *testing.T) {
		uc := &stubResumeUsecase{}
		router := newUploadRouter(uc)

		body, contentType := multipartResume(t, "resume", "cv.exe", []byte("MZ..."))
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, uc.calls)
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		uc := &stubResumeUsecase{}
		router := newUploadRouter(uc)

		body, contentType := multipartResume(t, "resume", "cv.pdf", []byte("not a pdf at all, just text"))
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, uc.calls)
	})

	t.Run("Should reject a request without a file", func(t *testing.T) {
		uc := &stubResumeUsecase{}
		router := newUploadRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, uc.calls)
	})

	t.Run("Should use the multipart field named resume", func(t *testing.T) {
		uc := &stubResumeUsecase{uploaded: &domain.UploadResult{Success: true}}
		router := newUploadRouter(uc)

		body, contentType := multipartResume(t, "file", "cv.txt", []byte("text"))
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, uc.calls)
	})
}
