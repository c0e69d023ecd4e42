package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neuroatlas/neuroquery/internal/storage"
	"github.com/neuroatlas/neuroquery/pkg/logger"
)

// imgObjectName is the object key for the atlas image in the storage bucket
const imgObjectName = "amygdala.gif"

// HealthHandler handles the health marker and static image endpoints
type HealthHandler struct {
	storage *storage.Client
	imgPath string
}

// NewHealthHandler creates a new HealthHandler. imgPath is the local
// fallback used when object storage is not configured.
func NewHealthHandler(st *storage.Client, imgPath string) *HealthHandler {
	return &HealthHandler{storage: st, imgPath: imgPath}
}

// Health returns the plain health marker
func (h *HealthHandler) Health(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<p>Server working!</p>"))
}

// Image serves the atlas image, preferring object storage over the
// bundled local file.
func (h *HealthHandler) Image(c *gin.Context) {
	if h.storage.Enabled() {
		reader, size, contentType, err := h.storage.FetchAsset(c.Request.Context(), imgObjectName)
		if err == nil {
			defer reader.Close()
			if contentType == "" {
				contentType = "image/gif"
			}
			c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
			return
		}
		logger.Warn("storage fetch failed, serving local asset", "object", imgObjectName, "error", err.Error())
	}
	c.File(h.imgPath)
}
