package plaid

import "context"

// GetAccountsRequest is the payload for /accounts/get.
type GetAccountsRequest struct {
	AccessToken string                    `json:"access_token"`
	Options     *GetAccountsRequestFilter `json:"options,omitempty"`
}

// GetAccountsRequestFilter narrows /accounts/get to specific accounts.
type GetAccountsRequestFilter struct {
	AccountIDs []string `json:"account_ids"`
}

// GetAccountsResponse is the response for /accounts/get.
type GetAccountsResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// Account is a financial account linked to an Item. One Item may carry
// several accounts (e.g. a checking account and a credit account).
type Account struct {
	AccountID    string  `json:"account_id"`
	Balances     Balance `json:"balances"`
	Mask         *string `json:"mask,omitempty"`
	Name         string  `json:"name"`
	OfficialName *string `json:"official_name,omitempty"`
	// Type is one of investment | credit | depository | loan | brokerage | other.
	Type    AccountType `json:"type"`
	Subtype *string     `json:"subtype,omitempty"`
	// VerificationStatus is documented as non-nullable but is frequently
	// absent from payloads.
	VerificationStatus *string `json:"verification_status,omitempty"`
}

// AccountType enumerates Plaid account types.
type AccountType string

// Account types.
const (
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeDepository AccountType = "depository"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeBrokerage  AccountType = "brokerage"
	AccountTypeOther      AccountType = "other"
)

// Balance holds the balances of a single account. Amounts are nil when the
// institution did not report them.
type Balance struct {
	Available               *float64 `json:"available"`
	Current                 *float64 `json:"current"`
	Limit                   *float64 `json:"limit"`
	ISOCurrencyCode         *string  `json:"iso_currency_code"`
	UnofficialCurrencyCode  *string  `json:"unofficial_currency_code"`
}

// Accounts retrieves active accounts for a linked Item. Responses may be
// cached by Plaid; use Balances for real-time figures.
//
// https://plaid.com/docs/api/accounts/#accountsget
func (c *Client) Accounts(ctx context.Context, accessToken string) ([]Account, error) {
	var resp GetAccountsResponse
	if err := c.post(ctx, "/accounts/get", GetAccountsRequest{AccessToken: accessToken}, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
