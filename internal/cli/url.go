package cli

import (
	"net/url"
	"strings"
)

// parseURL splits a raw command-line URL into the client base URL and the
// request path. A missing scheme defaults to http, a missing path to "/",
// and any query string stays attached to the path.
func parseURL(raw string) (base, path string) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw, "/"
	}

	host := u.Host
	if u.User != nil {
		host = u.User.String() + "@" + host
	}
	base = u.Scheme + "://" + host

	path = u.Path
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return base, path
}
