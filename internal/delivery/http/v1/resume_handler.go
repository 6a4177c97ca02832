package v1

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"
	"go-careercoach-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(api *gin.RouterGroup, resumeUC domain.ResumeUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &ResumeHandler{
		resumeUC: resumeUC,
	}

	api.POST("/resume/upload", uploadLimiter, handler.Upload)
	api.GET("/resume", handler.Get)
}

// Upload godoc
// @Summary      Upload Resume
// @Description  Uploads a resume (pdf, txt, docx, doc; max 5MB) for analysis.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  domain.UploadResult
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /resume/upload [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("No resume file provided"))
		return
	}

	if file.Size > security.MaxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the 5MB limit"))
		return
	}
	if err := security.ValidateResumeExtension(file.Filename); err != nil {
		c.Error(apperror.BadRequest("Unsupported file type. Allowed: pdf, txt, docx, doc"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, security.MaxResumeSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if int64(len(data)) > security.MaxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the 5MB limit"))
		return
	}

	if v := security.ValidateResumeFile(file.Filename, data, http.DetectContentType(data)); !v.Valid {
		c.Error(apperror.BadRequest("Invalid resume file: " + v.Error))
		return
	}

	path, err := saveTemp(file.Filename, data)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer os.Remove(path)

	result, err := h.resumeUC.Upload(c.Request.Context(), file.Filename, path)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// saveTemp spools the upload to disk so the analysis pipeline works
// against a file path. The caller removes the file when done.
func saveTemp(filename string, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(filename))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// Get godoc
// @Summary      Current Resume
// @Description  Returns the stored resume, or 404 when none was uploaded.
// @Tags         resume
// @Produce      json
// @Success      200  {object}  domain.Resume
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /resume [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumeUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resume)
}
