package api

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadFiles = 10

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

type uploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

func (h *Handler) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	saved, errMsg := h.saveUpload(c, file)
	if errMsg != "" {
		respondError(c, http.StatusBadRequest, errMsg)
		return
	}
	respondData(c, http.StatusCreated, saved)
}

func (h *Handler) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "No files uploaded")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "No files uploaded")
		return
	}
	if len(files) > maxUploadFiles {
		respondError(c, http.StatusBadRequest, "Too many files. Maximum is 10.")
		return
	}

	saved := make([]uploadedFile, 0, len(files))
	for _, file := range files {
		out, errMsg := h.saveUpload(c, file)
		if errMsg != "" {
			respondError(c, http.StatusBadRequest, errMsg)
			return
		}
		saved = append(saved, out)
	}
	respondCounted(c, saved, len(saved))
}

// saveUpload validates one multipart file and writes it under the upload
// directory with a generated name. Returns a non-empty message on
// client errors; server-side failures are logged and reported generically.
func (h *Handler) saveUpload(c *gin.Context, file *multipart.FileHeader) (uploadedFile, string) {
	if file.Size > h.maxUpload {
		return uploadedFile{}, "File too large. Maximum size is 5MB."
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return uploadedFile{}, "Invalid file type. Only JPEG, PNG, WebP and PDF are allowed."
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logger.WithError(err).Error("Failed to create upload directory")
		return uploadedFile{}, "Failed to save file"
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.logger.WithError(err).Error("Failed to save uploaded file")
		return uploadedFile{}, "Failed to save file"
	}

	return uploadedFile{
		Filename:     name,
		OriginalName: file.Filename,
		Size:         file.Size,
		URL:          "/uploads/" + name,
	}, ""
}
