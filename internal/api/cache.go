package api

import (
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// NewCachingTransport returns a RoundTripper that honours standard HTTP
// cache headers on GET responses, the same way the browser did for the
// web client (category lists, profile photos). Entries persist under
// cacheDir across runs; an empty cacheDir keeps the cache in memory.
// next may be nil to use http.DefaultTransport.
func NewCachingTransport(cacheDir string, next http.RoundTripper) http.RoundTripper {
	var transport *httpcache.Transport
	if cacheDir == "" {
		transport = httpcache.NewTransport(httpcache.NewMemoryCache())
	} else {
		transport = httpcache.NewTransport(diskcache.New(cacheDir))
	}
	transport.Transport = next
	return transport
}
