package rest

import (
	"regexp"
	"strings"
)

var (
	leadingSlashes = regexp.MustCompile(`^/{2,}`)
	jsonSuffix     = regexp.MustCompile(`(?i)/\.json`)
	danglingExt    = regexp.MustCompile(`/(\.\w*)$`)
)

// JoinURIPaths combines URI path segments into one normalized path. Empty
// segments contribute nothing, non-empty segments are joined with exactly
// one slash, a run of leading slashes collapses to a single one, and an
// accidental slash before a trailing extension token (such as "/.json") is
// removed so the extension attaches to the previous segment.
//
// The function never fails and is idempotent on already-normalized input:
//
//	JoinURIPaths("", "/api/v1/webhooks")      // "/api/v1/webhooks"
//	JoinURIPaths("///", "/api/v1/webhooks")   // "/api/v1/webhooks"
//	JoinURIPaths("/api/v1/webhooks", ".json") // "/api/v1/webhooks.json"
func JoinURIPaths(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	// Trim slashes at each junction so exactly one separates adjacent
	// segments regardless of how the callers spelled them.
	joined := parts[0]
	for _, part := range parts[1:] {
		joined = strings.TrimRight(joined, "/") + "/" + strings.TrimLeft(part, "/")
	}
	joined = leadingSlashes.ReplaceAllString(joined, "/")
	joined = jsonSuffix.ReplaceAllString(joined, ".json")
	joined = danglingExt.ReplaceAllString(joined, "$1")
	return joined
}
