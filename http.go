package teebuf

import "net/http"

// SpyResponse replaces resp.Body with a Reader so the payload is captured
// while the real consumer streams it. The returned Reader is the same object
// installed on the response: closing the response body closes the original
// body as usual, and the sink stays available for inspection afterwards.
func SpyResponse(resp *http.Response, config *Config) *Reader {
	r := NewReader(resp.Body, config)
	resp.Body = r
	return r
}
