package plaid

import "context"

// CreatePublicTokenRequest is the payload for /sandbox/public_token/create.
type CreatePublicTokenRequest struct {
	InstitutionID   string                    `json:"institution_id"`
	InitialProducts []string                  `json:"initial_products"`
	Options         *CreatePublicTokenOptions `json:"options,omitempty"`
}

// CreatePublicTokenOptions configures the simulated Item.
type CreatePublicTokenOptions struct {
	Webhook *string `json:"webhook,omitempty"`
	// OverrideUsername defaults to "user_good".
	OverrideUsername *string `json:"override_username,omitempty"`
	// OverridePassword defaults to "pass_good".
	OverridePassword *string                               `json:"override_password,omitempty"`
	Transactions     *CreatePublicTokenOptionsTransactions `json:"transactions,omitempty"`
}

// CreatePublicTokenOptionsTransactions bounds the simulated transaction
// history.
type CreatePublicTokenOptionsTransactions struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// CreatePublicTokenResponse is the response for /sandbox/public_token/create.
type CreatePublicTokenResponse struct {
	PublicToken string `json:"public_token"`
}

// ResetLoginRequest is the payload for /sandbox/item/reset_login.
type ResetLoginRequest struct {
	AccessToken string `json:"access_token"`
}

// ResetLoginResponse is the response for /sandbox/item/reset_login.
type ResetLoginResponse struct {
	ResetLogin bool `json:"reset_login"`
}

// SetVerificationStatusRequest is the payload for
// /sandbox/item/set_verification_status.
type SetVerificationStatusRequest struct {
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	// VerificationStatus is one of automatically_verified or
	// verification_expired.
	VerificationStatus string `json:"verification_status"`
}

// SetVerificationStatusResponse is the response for
// /sandbox/item/set_verification_status.
type SetVerificationStatusResponse struct {
	RequestID string `json:"request_id"`
}

// FireWebhookRequest is the payload for /sandbox/item/fire_webhook.
type FireWebhookRequest struct {
	AccessToken string      `json:"access_token"`
	WebhookCode WebhookCode `json:"webhook_code"`
}

// WebhookCode selects which webhook the sandbox fires.
type WebhookCode string

// Webhook codes supported by /sandbox/item/fire_webhook.
const (
	WebhookCodeDefaultUpdate WebhookCode = "DEFAULT_UPDATE"
)

// FireWebhookResponse is the response for /sandbox/item/fire_webhook.
type FireWebhookResponse struct {
	WebhookFired bool   `json:"webhook_fired"`
	RequestID    string `json:"request_id"`
}

// CreatePublicToken creates a valid public token for an institution ID,
// initial products, and test credentials. The token maps to a new sandbox
// Item.
//
// https://plaid.com/docs/api/sandbox/#sandboxpublic_tokencreate
func (c *Client) CreatePublicToken(ctx context.Context, req CreatePublicTokenRequest) (string, error) {
	var resp CreatePublicTokenResponse
	if err := c.post(ctx, "/sandbox/public_token/create", req, &resp); err != nil {
		return "", err
	}
	return resp.PublicToken, nil
}

// ResetLogin forces an Item into an ITEM_LOGIN_REQUIRED state in order to
// simulate an Item whose login is no longer valid.
//
// https://plaid.com/docs/api/sandbox/#sandboxitemreset_login
func (c *Client) ResetLogin(ctx context.Context, accessToken string) error {
	var resp ResetLoginResponse
	if err := c.post(ctx, "/sandbox/item/reset_login", ResetLoginRequest{AccessToken: accessToken}, &resp); err != nil {
		return err
	}
	if !resp.ResetLogin {
		return &APIError{ErrorMessage: "failed to reset login"}
	}
	return nil
}

// SetVerificationStatus changes the verification status of a sandbox Item to
// simulate the automated micro-deposit flow.
//
// https://plaid.com/docs/api/sandbox/#sandboxitemset_verification_status
func (c *Client) SetVerificationStatus(ctx context.Context, req SetVerificationStatusRequest) (SetVerificationStatusResponse, error) {
	var resp SetVerificationStatusResponse
	if err := c.post(ctx, "/sandbox/item/set_verification_status", req, &resp); err != nil {
		return SetVerificationStatusResponse{}, err
	}
	return resp, nil
}

// FireWebhook triggers a Transactions DEFAULT_UPDATE webhook for a sandbox
// Item. If the Item does not support Transactions, the call fails with a
// SANDBOX_PRODUCT_NOT_ENABLED error.
//
// https://plaid.com/docs/api/sandbox/#sandboxitemfire_webhook
func (c *Client) FireWebhook(ctx context.Context, req FireWebhookRequest) (FireWebhookResponse, error) {
	var resp FireWebhookResponse
	if err := c.post(ctx, "/sandbox/item/fire_webhook", req, &resp); err != nil {
		return FireWebhookResponse{}, err
	}
	return resp, nil
}
