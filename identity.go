package plaid

import "context"

// GetIdentityRequest is the payload for /identity/get.
type GetIdentityRequest struct {
	AccessToken string          `json:"access_token"`
	Options     *IdentityFilter `json:"options,omitempty"`
}

// IdentityFilter narrows /identity/get to specific accounts.
type IdentityFilter struct {
	AccountIDs []string `json:"account_ids"`
}

// GetIdentityResponse is the response for /identity/get.
type GetIdentityResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// Identity verifies the name, address, phone number, and email address of a
// user against bank account information on file.
//
// https://plaid.com/docs/api/products/#identity
func (c *Client) Identity(ctx context.Context, req GetIdentityRequest) (GetIdentityResponse, error) {
	var resp GetIdentityResponse
	if err := c.post(ctx, "/identity/get", req, &resp); err != nil {
		return GetIdentityResponse{}, err
	}
	return resp, nil
}
