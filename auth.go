package plaid

import "context"

// GetAuthRequest is the payload for /auth/get.
type GetAuthRequest struct {
	AccessToken string                 `json:"access_token"`
	Options     *GetAuthRequestOptions `json:"options,omitempty"`
}

// GetAuthRequestOptions narrows /auth/get to specific accounts.
type GetAuthRequestOptions struct {
	AccountIDs []string `json:"account_ids"`
}

// GetAuthResponse is the response for /auth/get.
type GetAuthResponse struct {
	Accounts  []Account      `json:"accounts"`
	Numbers   AccountNumbers `json:"numbers"`
	Item      Item           `json:"item"`
	RequestID string         `json:"request_id"`
}

// AccountNumbers groups identifying numbers by scheme.
type AccountNumbers struct {
	ACH           []ACHAccountNumber           `json:"ach"`
	EFT           []EFTAccountNumber           `json:"eft"`
	International []InternationalAccountNumber `json:"international"`
	BACS          []BACSAccountNumber          `json:"bacs"`
}

// ACHAccountNumber identifies a US account.
type ACHAccountNumber struct {
	AccountID   string  `json:"account_id"`
	Account     string  `json:"account"`
	Routing     string  `json:"routing"`
	WireRouting *string `json:"wire_routing,omitempty"`
}

// EFTAccountNumber identifies a Canadian account.
type EFTAccountNumber struct {
	AccountID   string `json:"account_id"`
	Account     string `json:"account"`
	Institution string `json:"institution"`
	Branch      string `json:"branch"`
}

// InternationalAccountNumber identifies an account by IBAN and BIC.
type InternationalAccountNumber struct {
	AccountID string `json:"account_id"`
	// IBAN is the International Bank Account Number for the account.
	IBAN string `json:"iban"`
	// BIC is the Bank Identifier Code for the account.
	BIC string `json:"bic"`
}

// BACSAccountNumber identifies a UK account.
type BACSAccountNumber struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	SortCode  string `json:"sort_code"`
}

// Auth returns the bank account and bank identification numbers associated
// with an Item's checking and savings accounts, along with high-level
// account data and balances when available.
//
// https://plaid.com/docs/api/products/#auth
func (c *Client) Auth(ctx context.Context, req GetAuthRequest) (GetAuthResponse, error) {
	var resp GetAuthResponse
	if err := c.post(ctx, "/auth/get", req, &resp); err != nil {
		return GetAuthResponse{}, err
	}
	return resp, nil
}
