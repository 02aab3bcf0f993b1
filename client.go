package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Environment selects which Plaid host the client talks to. Any value other
// than the predefined constants is treated as a custom base URL, e.g.
// "http://localhost:3000" when pointing at a local stub.
type Environment string

// Plaid environments.
const (
	Sandbox     Environment = "sandbox"
	Development Environment = "development"
	Production  Environment = "production"
)

const (
	sandboxHost     = "https://sandbox.plaid.com"
	developmentHost = "https://development.plaid.com"
	productionHost  = "https://production.plaid.com"
)

// URL returns the base URL for the environment.
func (e Environment) URL() string {
	switch e {
	case Sandbox, "":
		return sandboxHost
	case Development:
		return developmentHost
	case Production:
		return productionHost
	default:
		return string(e)
	}
}

const (
	headerClientID = "PLAID-CLIENT-ID"
	headerSecret   = "PLAID-SECRET"
)

// Config holds everything needed to construct a Client.
type Config struct {
	// ClientID is the Plaid API client id.
	ClientID string
	// Secret is the Plaid API secret for the configured environment.
	Secret string
	// Environment defaults to Sandbox.
	Environment Environment
	// HTTPClient overrides the transport used for requests. Defaults to an
	// *http.Client with a 30 second timeout.
	HTTPClient Doer
}

// Client issues typed requests against the Plaid API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	http     Doer
	clientID string
	secret   string
	baseURL  string
}

// NewClient builds a Client from cfg. Credentials are not validated here;
// the first authenticated call surfaces the server's error if they are
// missing or wrong.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		http:     httpClient,
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		baseURL:  cfg.Environment.URL(),
	}
}

// post drives one round trip: serialize in, send with credential headers,
// decode a 200 into out or any other status into an *APIError.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &DecodeError{Path: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &TransportError{URL: c.baseURL + path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerClientID, c.clientID)
	req.Header.Set(headerSecret, c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{URL: c.baseURL + path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: c.baseURL + path, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{}
		if err := json.Unmarshal(payload, apiErr); err != nil {
			return &DecodeError{Path: path, Status: resp.StatusCode, Err: err}
		}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Path: path, Status: resp.StatusCode, Err: err}
	}

	return nil
}
