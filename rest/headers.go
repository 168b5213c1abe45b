package rest

import "net/http"

// BuildHeaders filters a header map into an http.Header, dropping every
// entry whose value is nil. A dropped entry is a normal, non-fatal caller
// mistake: a diagnostic referencing the key is emitted and the request
// proceeds without it. Entries with non-nil values are copied unchanged.
func BuildHeaders(defaults map[string]*string, log Logger) http.Header {
	if log == nil {
		log = nopLogger{}
	}
	header := make(http.Header, len(defaults))
	for key, value := range defaults {
		if value == nil {
			log.Warn("dropping header with missing value", "header", key)
			continue
		}
		header.Set(key, *value)
	}
	return header
}
