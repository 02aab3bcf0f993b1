package plaid

import "net/http"

// Doer sends a single HTTP request and returns its response. *http.Client
// satisfies it; supply a custom implementation to control timeouts, proxies,
// or to fake the API in tests. Implementations must be safe for concurrent
// use, matching the guarantees of the Client that holds them.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
