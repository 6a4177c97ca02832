package security_test

import (
	"testing"

	"go-careercoach-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func TestValidateResumeExtension(t *testing.T) {
	t.Run("Should accept whitelisted extensions", func(t *testing.T) {
		for _, name := range []string{"cv.pdf", "cv.txt", "cv.docx", "cv.doc", "CV.PDF"} {
			assert.NoError(t, security.ValidateResumeExtension(name), name)
		}
	})

	t.Run("Should reject anything else", func(t *testing.T) {
		for _, name := range []string{"cv.exe", "cv.png", "cv.pdf.sh", "cv"} {
			assert.Error(t, security.ValidateResumeExtension(name), name)
		}
	})
}

func TestValidateResumeFile(t *testing.T) {
	pdfData := append([]byte("%PDF-1.4 "), make([]byte, 32)...)

	t.Run("Should accept a pdf with matching magic bytes", func(t *testing.T) {
		result := security.ValidateResumeFile("cv.pdf", pdfData, "application/pdf")
		assert.True(t, result.Valid, result.Error)
		assert.Equal(t, ".pdf", result.Extension)
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		result := security.ValidateResumeFile("cv.pdf", []byte("just plain text padding"), "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("Should accept plain text resumes", func(t *testing.T) {
		result := security.ValidateResumeFile("cv.txt", []byte("John Doe\nSkills: Go"), "text/plain; charset=utf-8")
		assert.True(t, result.Valid, result.Error)
	})

	t.Run("Should reject octet-stream for non-document types", func(t *testing.T) {
		result := security.ValidateResumeFile("cv.txt", []byte("binary-ish"), "application/octet-stream")
		assert.False(t, result.Valid)
	})

	t.Run("Should allow octet-stream for docx verified by magic bytes", func(t *testing.T) {
		docxData := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 16)...)
		result := security.ValidateResumeFile("cv.docx", docxData, "application/octet-stream")
		assert.True(t, result.Valid, result.Error)
	})

	t.Run("Should reject files without an extension", func(t *testing.T) {
		result := security.ValidateResumeFile("cv", pdfData, "application/pdf")
		assert.False(t, result.Valid)
	})
}
