package plaid

import (
	"errors"
	"fmt"
)

// ErrInvalidPageSize indicates a non-positive page size was configured for a
// paginated iterator. It is reported before any network call is made.
var ErrInvalidPageSize = errors.New("page size must be positive")

// ErrorType classifies Plaid error objects. Values mirror the error_type
// field of Plaid's error schema.
type ErrorType string

// Error types returned by the Plaid API.
const (
	ErrorTypeInvalidRequest    ErrorType = "INVALID_REQUEST"
	ErrorTypeInvalidResult     ErrorType = "INVALID_RESULT"
	ErrorTypeInvalidInput      ErrorType = "INVALID_INPUT"
	ErrorTypeInstitutionError  ErrorType = "INSTITUTION_ERROR"
	ErrorTypeRateLimitExceeded ErrorType = "RATE_LIMIT_EXCEEDED"
	ErrorTypeAPIError          ErrorType = "API_ERROR"
	ErrorTypeItemError         ErrorType = "ITEM_ERROR"
	ErrorTypeAssetReportError  ErrorType = "ASSET_REPORT_ERROR"
	ErrorTypeRecaptchaError    ErrorType = "RECAPTCHA_ERROR"
	ErrorTypeOAuthError        ErrorType = "OAUTH_ERROR"
	ErrorTypePaymentError      ErrorType = "PAYMENT_ERROR"
	ErrorTypeBankTransferError ErrorType = "BANK_TRANSFER_ERROR"
)

// APIError is a well-formed error object returned by the Plaid API. The
// server's code and message are surfaced verbatim.
type APIError struct {
	ErrorType        ErrorType `json:"error_type,omitempty"`
	ErrorCode        string    `json:"error_code,omitempty"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	DisplayMessage   string    `json:"display_message,omitempty"`
	RequestID        string    `json:"request_id,omitempty"`
	DocumentationURL string    `json:"documentation_url,omitempty"`
	SuggestedAction  string    `json:"suggested_action,omitempty"`
	Status           int       `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("plaid: request failed with code %s: %s", e.ErrorCode, e.ErrorMessage)
}

// TransportError wraps a failure from the underlying Doer: connection
// errors, timeouts, and anything else that prevented a response from being
// read. The call was not retried.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("plaid: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a response body that could not be decoded into the
// expected shape, which means the client and server disagree about the
// contract. It is fatal for the call that produced it.
type DecodeError struct {
	Path   string
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("plaid: decoding %s response (status %d): %v", e.Path, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
