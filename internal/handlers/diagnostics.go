package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neuroatlas/neuroquery/internal/services"
	"github.com/neuroatlas/neuroquery/pkg/logger"
)

// DiagnosticsHandler handles the /test_db endpoint
type DiagnosticsHandler struct {
	diagnostics *services.DiagnosticsService
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler
func NewDiagnosticsHandler(diagnostics *services.DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{diagnostics: diagnostics}
}

// TestDB reports connectivity, engine version and core table counts
func (h *DiagnosticsHandler) TestDB(c *gin.Context) {
	snap := h.diagnostics.Snapshot(c.Request.Context())
	if !snap.OK {
		logger.Error("database diagnostic failed", "error", snap.Error)
		c.JSON(http.StatusInternalServerError, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}
