package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/neuroatlas/neuroquery/internal/database/dbtest"
)

func TestSnapshotSuccess(t *testing.T) {
	db := &dbtest.FakeDB{
		Rows: map[string][][]any{
			"SELECT version()":                          {{"PostgreSQL 16.2 on x86_64-pc-linux-gnu"}},
			"SELECT COUNT(*) FROM ns.coordinates":       {{int64(507891)}},
			"SELECT COUNT(*) FROM ns.metadata":          {{int64(14371)}},
			"SELECT COUNT(*) FROM ns.annotations_terms": {{int64(0)}},
		},
	}
	svc := NewDiagnosticsService(db)

	snap := svc.Snapshot(context.Background())
	if !snap.OK {
		t.Fatalf("snapshot failed: %s", snap.Error)
	}
	if snap.Dialect != "postgresql" {
		t.Errorf("dialect = %q", snap.Dialect)
	}
	if snap.Version == "" {
		t.Error("version missing")
	}
	if snap.CoordinatesCount == nil || *snap.CoordinatesCount != 507891 {
		t.Errorf("coordinates_count = %v", snap.CoordinatesCount)
	}
	if snap.MetadataCount == nil || *snap.MetadataCount != 14371 {
		t.Errorf("metadata_count = %v", snap.MetadataCount)
	}
	// Zero is a valid count and must still be reported
	if snap.AnnotationsTermsCount == nil || *snap.AnnotationsTermsCount != 0 {
		t.Errorf("annotations_terms_count = %v", snap.AnnotationsTermsCount)
	}

	// All reads happen inside one transaction, preceded by the search_path
	if len(db.Calls) == 0 || db.Calls[0].SQL != "SET search_path TO ns, public" {
		t.Errorf("first statement = %+v", db.Calls)
	}
}

func TestSnapshotBeginFailure(t *testing.T) {
	db := &dbtest.FakeDB{BeginErr: fmt.Errorf("connection refused")}
	svc := NewDiagnosticsService(db)

	snap := svc.Snapshot(context.Background())
	if snap.OK {
		t.Fatal("snapshot should fail")
	}
	if snap.Dialect != "postgresql" {
		t.Error("dialect must be present on the failure path")
	}
	if snap.Error == "" {
		t.Error("error message missing")
	}
}

func TestSnapshotQueryFailure(t *testing.T) {
	db := &dbtest.FakeDB{
		Rows: map[string][][]any{
			"SELECT version()": {{"PostgreSQL 16.2"}},
		},
		Errs: map[string]error{
			"SELECT COUNT(*) FROM ns.coordinates": fmt.Errorf(`relation "ns.coordinates" does not exist`),
		},
	}
	svc := NewDiagnosticsService(db)

	snap := svc.Snapshot(context.Background())
	if snap.OK {
		t.Fatal("snapshot should fail")
	}
	// Fields gathered before the failure point are kept
	if snap.Version == "" {
		t.Error("version gathered before the failure should be kept")
	}
	if snap.CoordinatesCount != nil {
		t.Error("count after the failure point should be absent")
	}
	if snap.Error == "" {
		t.Error("error message missing")
	}
}
