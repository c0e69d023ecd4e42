package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/dissociate/terms/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"term_a_not_b":{"term_a":"working_memory","term_b":"pain","count":2,"studies":["101","102"]}}`))
	})
	mux.HandleFunc("/dissociate/locations/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"location_a_not_b":{"location_a":"10_-20_30","location_b":"0_0_0","radius_mm":10,"count":1,"studies":["201"]}}`))
	})
	mux.HandleFunc("/find_terms/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"keyword":"memory","match_count":1,"matching_terms":["terms_abstract_tfidf__memory"]}`))
	})
	mux.HandleFunc("/test_db", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok":false,"dialect":"postgresql","error":"connection refused"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientDissociateTerms(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	result, err := c.DissociateTerms("working_memory", "pain")
	if err != nil {
		t.Fatalf("DissociateTerms failed: %v", err)
	}
	if result.TermA != "working_memory" || result.Count != 2 || len(result.Studies) != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestClientDissociateLocations(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	result, err := c.DissociateLocations("10_-20_30", "0_0_0")
	if err != nil {
		t.Fatalf("DissociateLocations failed: %v", err)
	}
	if result.RadiusMM != 10 || result.Count != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestClientFindTerms(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	result, err := c.FindTerms("memory")
	if err != nil {
		t.Fatalf("FindTerms failed: %v", err)
	}
	if result.MatchCount != 1 || result.MatchingTerms[0] != "terms_abstract_tfidf__memory" {
		t.Errorf("result = %+v", result)
	}
}

func TestClientTestDBFailureDecoded(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	snap, err := c.TestDB()
	if err != nil {
		t.Fatalf("TestDB failed: %v", err)
	}
	if snap.OK || snap.Dialect != "postgresql" || snap.Error == "" {
		t.Errorf("snap = %+v", snap)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Database query failed: timeout"}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL)

	_, err := c.DissociateTerms("a", "b")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error = %v", err)
	}
}
