package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mynkprtp/movieApi/domain"
)

// FileHandlers serves stored poster files
type FileHandlers struct {
	files domain.FileStore
}

// NewFileHandlers creates new file handlers
func NewFileHandlers(files domain.FileStore) *FileHandlers {
	return &FileHandlers{files: files}
}

// Get handles GET /file/:fileName
func (h *FileHandlers) Get(c *gin.Context) {
	name := c.Param("fileName")

	f, err := h.files.Open(name)
	if err != nil {
		if err == domain.ErrFileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, f)
}
