package services

import (
	"context"

	"github.com/neuroatlas/neuroquery/internal/database"
	"github.com/neuroatlas/neuroquery/internal/metrics"
	"github.com/neuroatlas/neuroquery/internal/models"
	apperrors "github.com/neuroatlas/neuroquery/pkg/errors"
)

// LocationRadiusMM is the fixed search radius for spatial dissociation, in
// the linear unit of the stored geometry (millimeters).
const LocationRadiusMM = 10

const dissociateTermsSQL = `
SELECT DISTINCT study_id FROM ns.annotations_terms WHERE term = $1
EXCEPT
SELECT DISTINCT study_id FROM ns.annotations_terms WHERE term = $2`

// The query points are pinned to the SRID of the stored geom column.
// A mismatched SRID does not error; ST_DWithin just stops matching.
const dissociateLocationsSQL = `
SELECT DISTINCT study_id FROM ns.coordinates
WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($1, $2, $3), $7), $8)
EXCEPT
SELECT DISTINCT study_id FROM ns.coordinates
WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($4, $5, $6), $7), $8)`

const findTermsSQL = `
SELECT DISTINCT term FROM ns.annotations_terms WHERE term ILIKE $1 ORDER BY term ASC`

// StudyService runs the read-only dissociation and search queries
type StudyService struct {
	db   database.DBTX
	srid int
}

// NewStudyService creates a new StudyService. srid must match the spatial
// reference system of ns.coordinates.geom.
func NewStudyService(db database.DBTX, srid int) *StudyService {
	return &StudyService{db: db, srid: srid}
}

// DissociateTerms returns the set difference of study identifiers: studies
// annotated with term A minus studies annotated with term B. Tokens are
// normalized for the query and echoed back raw.
func (s *StudyService) DissociateTerms(ctx context.Context, termA, termB string) (*models.TermDissociation, *apperrors.AppError) {
	studies, appErr := s.queryColumn(ctx, "dissociate_terms", dissociateTermsSQL,
		NormalizeTerm(termA), NormalizeTerm(termB))
	if appErr != nil {
		return nil, appErr
	}

	return &models.TermDissociation{
		TermA:   termA,
		TermB:   termB,
		Count:   len(studies),
		Studies: studies,
	}, nil
}

// DissociateLocations returns studies with an activation within
// LocationRadiusMM of point A, minus studies with one within the same
// radius of point B.
func (s *StudyService) DissociateLocations(ctx context.Context, a, b Coordinate) (*models.LocationDissociation, *apperrors.AppError) {
	studies, appErr := s.queryColumn(ctx, "dissociate_locations", dissociateLocationsSQL,
		a.X, a.Y, a.Z, b.X, b.Y, b.Z, s.srid, LocationRadiusMM)
	if appErr != nil {
		return nil, appErr
	}

	return &models.LocationDissociation{
		LocationA: a.String(),
		LocationB: b.String(),
		RadiusMM:  LocationRadiusMM,
		Count:     len(studies),
		Studies:   studies,
	}, nil
}

// FindTerms returns distinct stored term strings containing the keyword,
// case-insensitively, sorted ascending. Matches keep the storage prefix.
func (s *StudyService) FindTerms(ctx context.Context, keyword string) (*models.TermMatches, *apperrors.AppError) {
	terms, appErr := s.queryColumn(ctx, "find_terms", findTermsSQL, "%"+keyword+"%")
	if appErr != nil {
		return nil, appErr
	}

	return &models.TermMatches{
		Keyword:       keyword,
		MatchCount:    len(terms),
		MatchingTerms: terms,
	}, nil
}

// queryColumn runs a single-column query and collects the rows into a
// flat list. The list is never nil so empty results serialize as [].
func (s *StudyService) queryColumn(ctx context.Context, operation, sql string, args ...any) ([]string, *apperrors.AppError) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(operation, "error").Inc()
		return nil, apperrors.QueryFailed(err)
	}
	defer rows.Close()

	results := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			metrics.QueriesTotal.WithLabelValues(operation, "error").Inc()
			return nil, apperrors.QueryFailed(err)
		}
		results = append(results, value)
	}
	if err := rows.Err(); err != nil {
		metrics.QueriesTotal.WithLabelValues(operation, "error").Inc()
		return nil, apperrors.QueryFailed(err)
	}

	metrics.QueriesTotal.WithLabelValues(operation, "ok").Inc()
	return results, nil
}
