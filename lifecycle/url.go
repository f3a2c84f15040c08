package lifecycle

import "strings"

// ComposeURL appends the readiness token to base as a fragment. A trailing
// slash on base is dropped, so "http://localhost:7070/" and token "abc123"
// give "http://localhost:7070#abc123".
func ComposeURL(base, token string) string {
	return strings.TrimRight(base, "/") + "#" + strings.TrimSpace(token)
}

// redactToken hides the fragment of a composed URL for logging.
func redactToken(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i] + "#<token>"
	}
	return url
}
