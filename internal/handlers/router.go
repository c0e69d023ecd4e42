package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/neuroatlas/neuroquery/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the middleware chain and the route table
func NewRouter(health *HealthHandler, study *StudyHandler, diagnostics *DiagnosticsHandler, corsOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())
	if corsOrigin != "" {
		router.Use(middleware.CORSMiddleware(corsOrigin))
	}

	router.GET("/", health.Health)
	router.GET("/img", health.Image)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Query endpoints hit unindexed scans, so they carry a per-IP limit
	queries := router.Group("")
	queries.Use(middleware.RateLimitMiddleware(120, 30))
	queries.GET("/dissociate/terms/:term_a/:term_b", study.DissociateTerms)
	queries.GET("/dissociate/locations/:coords_a/:coords_b", study.DissociateLocations)
	queries.GET("/find_terms/:keyword", study.FindTerms)
	queries.GET("/test_db", diagnostics.TestDB)

	return router
}
