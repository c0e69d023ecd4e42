package services

import (
	"strings"
)

// TermPrefix is the prefix carried by every stored term string in
// ns.annotations_terms.
const TermPrefix = "terms_abstract_tfidf__"

// NormalizeTerm converts a raw path token into the stored term string:
// underscores become spaces and the storage prefix is prepended. The raw
// token is what responses echo back; the normalized string is only ever
// used for querying.
func NormalizeTerm(token string) string {
	return TermPrefix + strings.ReplaceAll(token, "_", " ")
}
