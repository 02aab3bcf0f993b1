package plaid

import "context"

// AccountBalancesGetRequest is the payload for /accounts/balance/get.
type AccountBalancesGetRequest struct {
	AccessToken string                `json:"access_token"`
	Options     *AccountBalanceFilter `json:"options,omitempty"`
}

// AccountBalanceFilter narrows /accounts/balance/get to specific accounts.
type AccountBalanceFilter struct {
	AccountIDs               []string `json:"account_ids"`
	MinLastUpdatedDatetime   *string  `json:"min_last_updated_datetime,omitempty"`
}

// AccountBalancesGetResponse is the response for /accounts/balance/get.
type AccountBalancesGetResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// Balances verifies real-time account balances. Unlike Accounts, the result
// is never served from Plaid's cache. This endpoint can be used as long as
// Link has been initialized with any other product.
//
// https://plaid.com/docs/api/products/#balance
func (c *Client) Balances(ctx context.Context, accessToken string) ([]Account, error) {
	var resp AccountBalancesGetResponse
	if err := c.post(ctx, "/accounts/balance/get", AccountBalancesGetRequest{AccessToken: accessToken}, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
