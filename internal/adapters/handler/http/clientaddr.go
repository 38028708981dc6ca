package http

import (
	"net/http"
	"strings"
)

const fallbackAddress = "127.0.0.1"

// clientAddress is the first X-Forwarded-For hop, or loopback when the
// header is missing. The value is client supplied and only advisory.
func clientAddress(header http.Header) string {
	xfwd := header.Get("X-Forwarded-For")
	if xfwd == "" {
		return fallbackAddress
	}
	first, _, _ := strings.Cut(xfwd, ",")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return fallbackAddress
}
