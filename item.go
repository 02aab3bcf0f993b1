package plaid

import "context"

// GetItemRequest is the payload for /item/get.
type GetItemRequest struct {
	AccessToken string `json:"access_token"`
}

// GetItemResponse is the response for /item/get.
type GetItemResponse struct {
	Item      Item    `json:"item"`
	Status    *Status `json:"status,omitempty"`
	RequestID string  `json:"request_id"`
}

// RemoveItemRequest is the payload for /item/remove.
type RemoveItemRequest struct {
	AccessToken string `json:"access_token"`
}

// RemoveItemResponse is the response for /item/remove.
type RemoveItemResponse struct {
	RequestID string `json:"request_id"`
}

// UpdateItemWebhookRequest is the payload for /item/webhook/update.
type UpdateItemWebhookRequest struct {
	AccessToken string `json:"access_token"`
	// Webhook is the new URL to associate with the Item.
	Webhook string `json:"webhook"`
}

// UpdateItemWebhookResponse is the response for /item/webhook/update.
type UpdateItemWebhookResponse struct {
	Item      Item   `json:"item"`
	RequestID string `json:"request_id"`
}

// Item represents a connection to a single financial institution, usually
// tied to a set of credentials and an access token.
type Item struct {
	ItemID            string    `json:"item_id"`
	InstitutionID     *string   `json:"institution_id,omitempty"`
	Webhook           *string   `json:"webhook,omitempty"`
	Error             *APIError `json:"error,omitempty"`
	AvailableProducts []string  `json:"available_products"`
	BilledProducts    []string  `json:"billed_products"`
	// ConsentExpirationTime is an RFC 3339 timestamp after which the consent
	// provided by the end user expires.
	ConsentExpirationTime *string `json:"consent_expiration_time,omitempty"`
	UpdateType            string  `json:"update_type"`
	Status                *Status `json:"status,omitempty"`
}

// Status reports the health of an Item's products and webhooks.
type Status struct {
	Investments  *StatusMessage `json:"investments,omitempty"`
	Transactions *StatusMessage `json:"transactions,omitempty"`
	LastWebhook  *WebhookStatus `json:"last_webhook,omitempty"`
}

// StatusMessage carries the last update timestamps for one product.
type StatusMessage struct {
	LastSuccessfulUpdate *string `json:"last_successful_update,omitempty"`
	LastFailedUpdate     *string `json:"last_failed_update,omitempty"`
}

// WebhookStatus describes the most recent webhook fired for an Item.
type WebhookStatus struct {
	SentAt   *string `json:"sent_at,omitempty"`
	CodeSent *string `json:"code_sent,omitempty"`
}

// Item returns information about the status of an Item.
//
// https://plaid.com/docs/api/items/#itemget
func (c *Client) Item(ctx context.Context, accessToken string) (Item, error) {
	var resp GetItemResponse
	if err := c.post(ctx, "/item/get", GetItemRequest{AccessToken: accessToken}, &resp); err != nil {
		return Item{}, err
	}
	return resp.Item, nil
}

// RemoveItem removes an Item. Once removed, the access token associated
// with the Item is no longer valid.
//
// https://plaid.com/docs/api/items/#itemremove
func (c *Client) RemoveItem(ctx context.Context, accessToken string) error {
	return c.post(ctx, "/item/remove", RemoveItemRequest{AccessToken: accessToken}, nil)
}

// UpdateItemWebhook changes the webhook URL associated with an Item. The
// update triggers a WEBHOOK_UPDATE_ACKNOWLEDGED event to the new URL.
//
// https://plaid.com/docs/api/items/#itemwebhookupdate
func (c *Client) UpdateItemWebhook(ctx context.Context, accessToken, webhook string) (Item, error) {
	var resp UpdateItemWebhookResponse
	req := UpdateItemWebhookRequest{AccessToken: accessToken, Webhook: webhook}
	if err := c.post(ctx, "/item/webhook/update", req, &resp); err != nil {
		return Item{}, err
	}
	return resp.Item, nil
}
