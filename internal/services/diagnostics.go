package services

import (
	"context"

	"github.com/neuroatlas/neuroquery/internal/database"
	"github.com/neuroatlas/neuroquery/internal/models"
)

// Dialect is the database engine name reported by /test_db. It is present
// in the payload on both the success and failure paths.
const Dialect = "postgresql"

// DiagnosticsService checks connectivity and reports table counts
type DiagnosticsService struct {
	pool database.TxBeginner
}

// NewDiagnosticsService creates a new DiagnosticsService
func NewDiagnosticsService(pool database.TxBeginner) *DiagnosticsService {
	return &DiagnosticsService{pool: pool}
}

// Snapshot reads the engine version and the row counts of the three core
// tables inside one transaction so the counts are a consistent snapshot.
// On failure it returns whatever was gathered before the failure point,
// with OK false and Error set.
func (s *DiagnosticsService) Snapshot(ctx context.Context) *models.Snapshot {
	snap := &models.Snapshot{Dialect: Dialect}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		snap.Error = err.Error()
		return snap
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SET search_path TO ns, public"); err != nil {
		snap.Error = err.Error()
		return snap
	}

	if err := tx.QueryRow(ctx, "SELECT version()").Scan(&snap.Version); err != nil {
		snap.Error = err.Error()
		return snap
	}

	counts := []struct {
		sql  string
		dest **int64
	}{
		{"SELECT COUNT(*) FROM ns.coordinates", &snap.CoordinatesCount},
		{"SELECT COUNT(*) FROM ns.metadata", &snap.MetadataCount},
		{"SELECT COUNT(*) FROM ns.annotations_terms", &snap.AnnotationsTermsCount},
	}
	for _, c := range counts {
		var n int64
		if err := tx.QueryRow(ctx, c.sql).Scan(&n); err != nil {
			snap.Error = err.Error()
			return snap
		}
		*c.dest = &n
	}

	if err := tx.Commit(ctx); err != nil {
		snap.Error = err.Error()
		return snap
	}

	snap.OK = true
	return snap
}
