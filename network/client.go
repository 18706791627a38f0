// Package network provides the shared HTTP client used by the search providers.
package network

import (
	"net/http"
	"time"
)

// Client is the HTTP client shared by every provider that talks to the platform directly.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport clones the default transport with pool and timeout limits suited to short search requests.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
