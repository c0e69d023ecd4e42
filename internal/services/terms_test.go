package services

import "testing"

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"single word", "memory", "terms_abstract_tfidf__memory"},
		{"underscores become spaces", "default_mode", "terms_abstract_tfidf__default mode"},
		{"multiple underscores", "working_memory_load", "terms_abstract_tfidf__working memory load"},
		{"already spaced stays put", "episodic memory", "terms_abstract_tfidf__episodic memory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTerm(tt.token); got != tt.want {
				t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNormalizeTermIdempotentOnSpaced(t *testing.T) {
	// A token with no underscores normalizes to prefix+token; applying the
	// underscore replacement again changes nothing.
	token := "semantic memory"
	first := NormalizeTerm(token)
	if first != TermPrefix+token {
		t.Fatalf("got %q", first)
	}
}
