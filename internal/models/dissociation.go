package models

// TermDissociation reports studies annotated with term A but not term B.
// TermA and TermB echo the raw path tokens, not the normalized storage
// strings used for the query.
type TermDissociation struct {
	TermA   string   `json:"term_a"`
	TermB   string   `json:"term_b"`
	Count   int      `json:"count"`
	Studies []string `json:"studies"`
}

// LocationDissociation reports studies with an activation within the fixed
// radius of point A but none within the radius of point B.
type LocationDissociation struct {
	LocationA string   `json:"location_a"`
	LocationB string   `json:"location_b"`
	RadiusMM  int      `json:"radius_mm"`
	Count     int      `json:"count"`
	Studies   []string `json:"studies"`
}

// TermMatches reports stored term strings matching a keyword substring
type TermMatches struct {
	Keyword       string   `json:"keyword"`
	MatchCount    int      `json:"match_count"`
	MatchingTerms []string `json:"matching_terms"`
}

// Snapshot is the /test_db diagnostic payload. Dialect is always set;
// the remaining fields hold whatever was gathered before a failure.
type Snapshot struct {
	OK                    bool   `json:"ok"`
	Dialect               string `json:"dialect"`
	Version               string `json:"version,omitempty"`
	CoordinatesCount      *int64 `json:"coordinates_count,omitempty"`
	MetadataCount         *int64 `json:"metadata_count,omitempty"`
	AnnotationsTermsCount *int64 `json:"annotations_terms_count,omitempty"`
	Error                 string `json:"error,omitempty"`
}
