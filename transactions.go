package plaid

import "context"

// GetTransactionsRequest is the payload for /transactions/get.
type GetTransactionsRequest struct {
	AccessToken string `json:"access_token"`
	// StartDate is a YYYY-MM-DD date string, inclusive.
	StartDate string `json:"start_date"`
	// EndDate is a YYYY-MM-DD date string, inclusive.
	EndDate string                  `json:"end_date"`
	Options *GetTransactionsOptions `json:"options,omitempty"`
}

// GetTransactionsOptions controls pagination and filtering for
// /transactions/get.
type GetTransactionsOptions struct {
	AccountIDs                 []string `json:"account_ids,omitempty"`
	Count                      *int     `json:"count,omitempty"`
	Offset                     *int     `json:"offset,omitempty"`
	IncludeOriginalDescription *bool    `json:"include_original_description,omitempty"`
}

// GetTransactionsResponse is the response for /transactions/get.
// TotalTransactions is the server's authoritative count for the requested
// date range and may change between pages as new data arrives.
type GetTransactionsResponse struct {
	Accounts          []Account     `json:"accounts"`
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"total_transactions"`
	Item              Item          `json:"item"`
	RequestID         string        `json:"request_id"`
}

// RefreshTransactionsRequest is the payload for /transactions/refresh.
type RefreshTransactionsRequest struct {
	AccessToken string `json:"access_token"`
}

// RefreshTransactionsResponse is the response for /transactions/refresh.
type RefreshTransactionsResponse struct {
	RequestID string `json:"request_id"`
}

// GetCategoriesRequest is the payload for /categories/get.
type GetCategoriesRequest struct{}

// GetCategoriesResponse is the response for /categories/get.
type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
	RequestID  string     `json:"request_id"`
}

// Category is one entry in Plaid's transaction category taxonomy.
type Category struct {
	CategoryID string   `json:"category_id"`
	Group      string   `json:"group"`
	Hierarchy  []string `json:"hierarchy"`
}

// Transaction is a single transaction on a credit, depository, or loan-type
// account.
type Transaction struct {
	// TransactionType is deprecated upstream; do not depend on it.
	TransactionType      string               `json:"transaction_type"`
	PendingTransactionID *string              `json:"pending_transaction_id,omitempty"`
	CategoryID           *string              `json:"category_id,omitempty"`
	Category             []string             `json:"category,omitempty"`
	Location             *TransactionLocation `json:"location,omitempty"`
	PaymentMeta          *PaymentMetadata     `json:"payment_meta,omitempty"`
	AccountOwner         *string              `json:"account_owner,omitempty"`
	Name                 string               `json:"name"`
	OriginalDescription  *string              `json:"original_description,omitempty"`
	AccountID            string               `json:"account_id"`
	Amount               float64              `json:"amount"`
	ISOCurrencyCode      *string              `json:"iso_currency_code,omitempty"`
	UnofficialCurrencyCode *string            `json:"unofficial_currency_code,omitempty"`
	Date                 string               `json:"date"`
	Pending              bool                 `json:"pending"`
	TransactionID        string               `json:"transaction_id"`
	PaymentChannel       string               `json:"payment_channel"`
	MerchantName         *string              `json:"merchant_name,omitempty"`
	AuthorizedDate       *string              `json:"authorized_date,omitempty"`
	AuthorizedDatetime   *string              `json:"authorized_datetime,omitempty"`
	Datetime             *string              `json:"datetime,omitempty"`
	CheckNumber          *string              `json:"check_number,omitempty"`
	TransactionCode      *string              `json:"transaction_code,omitempty"`
}

// TransactionLocation is where a transaction occurred.
type TransactionLocation struct {
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Region      *string  `json:"region,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	StoreNumber *string  `json:"store_number,omitempty"`
}

// PaymentMetadata carries transaction details used by banks and payment
// processors.
type PaymentMetadata struct {
	ReferenceNumber  *string `json:"reference_number,omitempty"`
	PPDID            *string `json:"ppd_id,omitempty"`
	Payee            *string `json:"payee,omitempty"`
	ByOrderOf        *string `json:"by_order_of,omitempty"`
	Payer            *string `json:"payer,omitempty"`
	PaymentMethod    *string `json:"payment_method,omitempty"`
	PaymentProcessor *string `json:"payment_processor,omitempty"`
	Reason           *string `json:"reason,omitempty"`
}

// Transactions returns one page of user-authorized transaction data. Results
// are paginated by the request options and default to 100 entries per page;
// use TransactionsIter to walk every page lazily.
//
// https://plaid.com/docs/api/products/#transactionsget
func (c *Client) Transactions(ctx context.Context, req GetTransactionsRequest) (GetTransactionsResponse, error) {
	var resp GetTransactionsResponse
	if err := c.post(ctx, "/transactions/get", req, &resp); err != nil {
		return GetTransactionsResponse{}, err
	}
	return resp, nil
}

// RefreshTransactions initiates an on-demand extraction to fetch the newest
// transactions for an Item.
//
// https://plaid.com/docs/api/products/#transactionsrefresh
func (c *Client) RefreshTransactions(ctx context.Context, accessToken string) error {
	return c.post(ctx, "/transactions/refresh", RefreshTransactionsRequest{AccessToken: accessToken}, nil)
}

// Categories returns detailed information on Plaid's transaction categories.
// This endpoint does not require authentication.
//
// https://plaid.com/docs/api/products/#categoriesget
func (c *Client) Categories(ctx context.Context) (GetCategoriesResponse, error) {
	var resp GetCategoriesResponse
	if err := c.post(ctx, "/categories/get", GetCategoriesRequest{}, &resp); err != nil {
		return GetCategoriesResponse{}, err
	}
	return resp, nil
}
