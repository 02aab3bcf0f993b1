package plaid

import "context"

// GetWebhookVerificationKeyRequest is the payload for
// /webhook_verification_key/get.
type GetWebhookVerificationKeyRequest struct {
	KeyID string `json:"key_id"`
}

// GetWebhookVerificationKeyResponse is the response for
// /webhook_verification_key/get. Key is a JSON Web Key; values are left
// untyped because the JWK fields mix strings and arrays.
type GetWebhookVerificationKeyResponse struct {
	Key       map[string]any `json:"key"`
	RequestID string         `json:"request_id"`
}

// GetWebhookVerificationKey provides a JSON Web Key that can be used to
// verify the JWT carried on Plaid webhook deliveries.
//
// https://plaid.com/docs/api/webhooks/webhook-verification/#webhook_verification_keyget
func (c *Client) GetWebhookVerificationKey(ctx context.Context, keyID string) (GetWebhookVerificationKeyResponse, error) {
	var resp GetWebhookVerificationKeyResponse
	if err := c.post(ctx, "/webhook_verification_key/get", GetWebhookVerificationKeyRequest{KeyID: keyID}, &resp); err != nil {
		return GetWebhookVerificationKeyResponse{}, err
	}
	return resp, nil
}
