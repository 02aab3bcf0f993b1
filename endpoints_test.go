package plaid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndpointPaths pins the wire path for every endpoint method.
func TestEndpointPaths(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		call     func(*Client) error
		wantPath string
	}{
		{
			name:     "SearchInstitutions",
			wantPath: "/institutions/search",
			body:     `{"institutions":[]}`,
			call: func(c *Client) error {
				_, err := c.SearchInstitutions(context.Background(), InstitutionsSearchRequest{Query: "chase", CountryCodes: []string{"US"}})
				return err
			},
		},
		{
			name:     "GetInstitutions",
			wantPath: "/institutions/get",
			body:     `{"institutions":[]}`,
			call: func(c *Client) error {
				_, err := c.GetInstitutions(context.Background(), GetInstitutionsRequest{Count: 10, CountryCodes: []string{"US"}})
				return err
			},
		},
		{
			name:     "GetInstitutionByID",
			wantPath: "/institutions/get_by_id",
			body:     `{"institution":{"institution_id":"ins_1","name":"Chase","products":[],"country_codes":["US"],"oauth":false}}`,
			call: func(c *Client) error {
				_, err := c.GetInstitutionByID(context.Background(), InstitutionGetRequest{InstitutionID: "ins_1", CountryCodes: []string{"US"}})
				return err
			},
		},
		{
			name:     "CreateLinkToken",
			wantPath: "/link/token/create",
			body:     `{"link_token":"link-sandbox-1","expiration":"2021-09-01T00:00:00Z","request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.CreateLinkToken(context.Background(), CreateLinkTokenRequest{
					ClientName:   "test-client",
					Language:     "en",
					CountryCodes: []string{"US"},
					User:         NewLinkUser("user-1"),
					Products:     []string{"transactions"},
				})
				return err
			},
		},
		{
			name:     "GetLinkToken",
			wantPath: "/link/token/get",
			body:     `{"link_token":"link-sandbox-1","request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.GetLinkToken(context.Background(), "link-sandbox-1")
				return err
			},
		},
		{
			name:     "ExchangePublicToken",
			wantPath: "/item/public_token/exchange",
			body:     `{"access_token":"access-1","item_id":"item-1","request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.ExchangePublicToken(context.Background(), "public-1")
				return err
			},
		},
		{
			name:     "InvalidateAccessToken",
			wantPath: "/item/access_token/invalidate",
			body:     `{"new_access_token":"access-2","request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.InvalidateAccessToken(context.Background(), "access-1")
				return err
			},
		},
		{
			name:     "Item",
			wantPath: "/item/get",
			body:     `{"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Item(context.Background(), "access-1")
				return err
			},
		},
		{
			name:     "RemoveItem",
			wantPath: "/item/remove",
			body:     `{"request_id":"r"}`,
			call: func(c *Client) error {
				return c.RemoveItem(context.Background(), "access-1")
			},
		},
		{
			name:     "UpdateItemWebhook",
			wantPath: "/item/webhook/update",
			body:     `{"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.UpdateItemWebhook(context.Background(), "access-1", "https://example.com/hook")
				return err
			},
		},
		{
			name:     "Accounts",
			wantPath: "/accounts/get",
			body:     `{"accounts":[],"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Accounts(context.Background(), "access-1")
				return err
			},
		},
		{
			name:     "Balances",
			wantPath: "/accounts/balance/get",
			body:     `{"accounts":[],"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Balances(context.Background(), "access-1")
				return err
			},
		},
		{
			name:     "Auth",
			wantPath: "/auth/get",
			body:     `{"accounts":[],"numbers":{"ach":[],"eft":[],"international":[],"bacs":[]},"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Auth(context.Background(), GetAuthRequest{AccessToken: "access-1"})
				return err
			},
		},
		{
			name:     "Identity",
			wantPath: "/identity/get",
			body:     `{"accounts":[],"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Identity(context.Background(), GetIdentityRequest{AccessToken: "access-1"})
				return err
			},
		},
		{
			name:     "Categories",
			wantPath: "/categories/get",
			body:     `{"categories":[],"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Categories(context.Background())
				return err
			},
		},
		{
			name:     "Transactions",
			wantPath: "/transactions/get",
			body:     `{"accounts":[],"transactions":[],"total_transactions":0,"item":{"item_id":"item-1","available_products":[],"billed_products":[],"update_type":"background"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.Transactions(context.Background(), GetTransactionsRequest{AccessToken: "access-1", StartDate: "2021-01-01", EndDate: "2021-02-01"})
				return err
			},
		},
		{
			name:     "RefreshTransactions",
			wantPath: "/transactions/refresh",
			body:     `{"request_id":"r"}`,
			call: func(c *Client) error {
				return c.RefreshTransactions(context.Background(), "access-1")
			},
		},
		{
			name:     "CreatePublicToken",
			wantPath: "/sandbox/public_token/create",
			body:     `{"public_token":"public-1"}`,
			call: func(c *Client) error {
				_, err := c.CreatePublicToken(context.Background(), CreatePublicTokenRequest{InstitutionID: "ins_1", InitialProducts: []string{"transactions"}})
				return err
			},
		},
		{
			name:     "ResetLogin",
			wantPath: "/sandbox/item/reset_login",
			body:     `{"reset_login":true}`,
			call: func(c *Client) error {
				return c.ResetLogin(context.Background(), "access-1")
			},
		},
		{
			name:     "SetVerificationStatus",
			wantPath: "/sandbox/item/set_verification_status",
			body:     `{"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.SetVerificationStatus(context.Background(), SetVerificationStatusRequest{
					AccessToken:        "access-1",
					AccountID:          "acc-1",
					VerificationStatus: "automatically_verified",
				})
				return err
			},
		},
		{
			name:     "FireWebhook",
			wantPath: "/sandbox/item/fire_webhook",
			body:     `{"webhook_fired":true,"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.FireWebhook(context.Background(), FireWebhookRequest{AccessToken: "access-1", WebhookCode: WebhookCodeDefaultUpdate})
				return err
			},
		},
		{
			name:     "SearchEmployers",
			wantPath: "/employers/search",
			body:     `{"employers":[],"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.SearchEmployers(context.Background(), SearchEmployerRequest{Query: "acme", Products: []string{"deposit_switch"}})
				return err
			},
		},
		{
			name:     "GetWebhookVerificationKey",
			wantPath: "/webhook_verification_key/get",
			body:     `{"key":{"kid":"key-1"},"request_id":"r"}`,
			call: func(c *Client) error {
				_, err := c.GetWebhookVerificationKey(context.Background(), "key-1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotMethod string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotMethod = r.Method
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(Config{
				ClientID:    "test-client-id",
				Secret:      "test-secret",
				Environment: Environment(srv.URL),
			})

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, http.MethodPost, gotMethod)
		})
	}
}

func TestResetLogin_ServerRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"reset_login":false}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Environment: Environment(srv.URL)})

	err := client.ResetLogin(context.Background(), "access-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to reset login", apiErr.ErrorMessage)
}
