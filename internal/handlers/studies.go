package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neuroatlas/neuroquery/internal/services"
	"github.com/neuroatlas/neuroquery/pkg/logger"
)

// StudyHandler handles the dissociation and term search endpoints
type StudyHandler struct {
	studies *services.StudyService
}

// NewStudyHandler creates a new StudyHandler
func NewStudyHandler(studies *services.StudyService) *StudyHandler {
	return &StudyHandler{studies: studies}
}

// DissociateTerms returns studies that mention term A but not term B
func (h *StudyHandler) DissociateTerms(c *gin.Context) {
	termA := c.Param("term_a")
	termB := c.Param("term_b")

	result, appErr := h.studies.DissociateTerms(c.Request.Context(), termA, termB)
	if appErr != nil {
		logger.Error("term dissociation failed",
			"term_a", termA, "term_b", termB, "error", appErr.Error())
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"term_a_not_b": result})
}

// DissociateLocations returns studies with activations near point A but
// not near point B. Malformed coordinates are rejected before any
// database access.
func (h *StudyHandler) DissociateLocations(c *gin.Context) {
	pointA, appErr := services.ParseCoordinate(c.Param("coords_a"))
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "radius_mm": services.LocationRadiusMM})
		return
	}
	pointB, appErr := services.ParseCoordinate(c.Param("coords_b"))
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "radius_mm": services.LocationRadiusMM})
		return
	}

	result, appErr := h.studies.DissociateLocations(c.Request.Context(), pointA, pointB)
	if appErr != nil {
		logger.Error("location dissociation failed",
			"location_a", pointA.String(), "location_b", pointB.String(), "error", appErr.Error())
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location_a_not_b": result})
}

// FindTerms returns stored term strings matching a keyword substring
func (h *StudyHandler) FindTerms(c *gin.Context) {
	keyword := c.Param("keyword")

	result, appErr := h.studies.FindTerms(c.Request.Context(), keyword)
	if appErr != nil {
		logger.Error("term search failed", "keyword", keyword, "error", appErr.Error())
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}
