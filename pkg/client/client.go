// Package client is a typed Go client for the NeuroQuery HTTP API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client communicates with the query service via HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new query service client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TermDissociation mirrors the term_a_not_b payload
type TermDissociation struct {
	TermA   string   `json:"term_a"`
	TermB   string   `json:"term_b"`
	Count   int      `json:"count"`
	Studies []string `json:"studies"`
}

// LocationDissociation mirrors the location_a_not_b payload
type LocationDissociation struct {
	LocationA string   `json:"location_a"`
	LocationB string   `json:"location_b"`
	RadiusMM  int      `json:"radius_mm"`
	Count     int      `json:"count"`
	Studies   []string `json:"studies"`
}

// TermMatches mirrors the /find_terms payload
type TermMatches struct {
	Keyword       string   `json:"keyword"`
	MatchCount    int      `json:"match_count"`
	MatchingTerms []string `json:"matching_terms"`
}

// Snapshot mirrors the /test_db payload
type Snapshot struct {
	OK                    bool   `json:"ok"`
	Dialect               string `json:"dialect"`
	Version               string `json:"version"`
	CoordinatesCount      int64  `json:"coordinates_count"`
	MetadataCount         int64  `json:"metadata_count"`
	AnnotationsTermsCount int64  `json:"annotations_terms_count"`
	Error                 string `json:"error"`
}

// DissociateTerms returns studies annotated with termA but not termB
func (c *Client) DissociateTerms(termA, termB string) (*TermDissociation, error) {
	var envelope struct {
		Result TermDissociation `json:"term_a_not_b"`
	}
	path := fmt.Sprintf("/dissociate/terms/%s/%s", url.PathEscape(termA), url.PathEscape(termB))
	if err := c.get(path, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Result, nil
}

// DissociateLocations returns studies near coordsA (x_y_z) but not near
// coordsB, within the server's fixed 10mm radius
func (c *Client) DissociateLocations(coordsA, coordsB string) (*LocationDissociation, error) {
	var envelope struct {
		Result LocationDissociation `json:"location_a_not_b"`
	}
	path := fmt.Sprintf("/dissociate/locations/%s/%s", url.PathEscape(coordsA), url.PathEscape(coordsB))
	if err := c.get(path, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Result, nil
}

// FindTerms returns stored term strings containing the keyword
func (c *Client) FindTerms(keyword string) (*TermMatches, error) {
	var result TermMatches
	if err := c.get("/find_terms/"+url.PathEscape(keyword), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TestDB returns the connectivity diagnostic. The snapshot is decoded on
// both the success and failure paths; check its OK field.
func (c *Client) TestDB() (*Snapshot, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/test_db")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &snap, nil
}

func (c *Client) get(path string, target any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("query service error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
