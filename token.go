package plaid

import "context"

// ExchangePublicTokenRequest is the payload for /item/public_token/exchange.
type ExchangePublicTokenRequest struct {
	PublicToken string `json:"public_token"`
}

// ExchangePublicTokenResponse is the response for /item/public_token/exchange.
type ExchangePublicTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

// CreateLinkTokenRequest is the payload for /link/token/create.
type CreateLinkTokenRequest struct {
	ClientName            string               `json:"client_name"`
	Language              string               `json:"language"`
	CountryCodes          []string             `json:"country_codes"`
	User                  LinkUser             `json:"user"`
	Products              []string             `json:"products,omitempty"`
	Webhook               *string              `json:"webhook,omitempty"`
	AccessToken           *string              `json:"access_token,omitempty"`
	LinkCustomizationName *string              `json:"link_customization_name,omitempty"`
	RedirectURI           *string              `json:"redirect_uri,omitempty"`
	AndroidPackageName    *string              `json:"android_package_name,omitempty"`
	AccountFilters        *AccountFilters      `json:"account_filters,omitempty"`
	EUConfig              *EUConfig            `json:"eu_config,omitempty"`
	PaymentInitiation     *PaymentInitiation   `json:"payment_initiation,omitempty"`
	DepositSwitch         *DepositSwitchOptions `json:"deposit_switch,omitempty"`
	IncomeVerification    *IncomeVerification  `json:"income_verification,omitempty"`
	Auth                  *LinkAuth            `json:"auth,omitempty"`
	InstitutionID         *string              `json:"institution_id,omitempty"`
}

// LinkAuth configures the Auth product flow for Link.
type LinkAuth struct {
	FlowType string `json:"flow_type"`
}

// IncomeVerification ties a Link session to an income verification.
type IncomeVerification struct {
	IncomeVerificationID string  `json:"income_verification_id"`
	AssetReportID        *string `json:"asset_report_id,omitempty"`
}

// DepositSwitchOptions ties a Link session to a deposit switch.
type DepositSwitchOptions struct {
	DepositSwitchID string `json:"deposit_switch_id"`
}

// PaymentInitiation ties a Link session to a payment.
type PaymentInitiation struct {
	PaymentID string `json:"payment_id"`
}

// LinkUser identifies the end user of a Link session.
type LinkUser struct {
	ClientUserID             string  `json:"client_user_id"`
	LegalName                *string `json:"legal_name,omitempty"`
	PhoneNumber              *string `json:"phone_number,omitempty"`
	PhoneNumberVerifiedTime  *string `json:"phone_number_verified_time,omitempty"`
	EmailAddress             *string `json:"email_address,omitempty"`
	EmailAddressVerifiedTime *string `json:"email_address_verified_time,omitempty"`
	SSN                      *string `json:"ssn,omitempty"`
	DateOfBirth              *string `json:"date_of_birth,omitempty"`
}

// NewLinkUser builds a LinkUser with just a client user id.
func NewLinkUser(userID string) LinkUser {
	return LinkUser{ClientUserID: userID}
}

// AccountFilters restricts which account subtypes Link offers per type.
type AccountFilters struct {
	Depository *AccountFilter `json:"depository,omitempty"`
	Credit     *AccountFilter `json:"credit,omitempty"`
	Loan       *AccountFilter `json:"loan,omitempty"`
	Investment *AccountFilter `json:"investment,omitempty"`
}

// AccountFilter lists the allowed subtypes for one account type.
type AccountFilter struct {
	AccountSubtypes []string `json:"account_subtypes"`
}

// EUConfig holds EU-specific Link configuration.
type EUConfig struct {
	Headless *bool `json:"headless,omitempty"`
}

// CreateLinkTokenResponse is the response for /link/token/create.
type CreateLinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
	RequestID  string `json:"request_id"`
}

// GetLinkTokenRequest is the payload for /link/token/get.
type GetLinkTokenRequest struct {
	LinkToken string `json:"link_token"`
}

// GetLinkTokenResponse is the response for /link/token/get.
type GetLinkTokenResponse struct {
	LinkToken  string  `json:"link_token"`
	Expiration *string `json:"expiration,omitempty"`
	CreatedAt  *string `json:"created_at,omitempty"`
	RequestID  string  `json:"request_id"`
}

// InvalidateAccessTokenRequest is the payload for /item/access_token/invalidate.
type InvalidateAccessTokenRequest struct {
	AccessToken string `json:"access_token"`
}

// InvalidateAccessTokenResponse is the response for /item/access_token/invalidate.
type InvalidateAccessTokenResponse struct {
	NewAccessToken string `json:"new_access_token"`
	RequestID      string `json:"request_id"`
}

// ExchangePublicToken exchanges a Link public token for an API access token.
// Public tokens are ephemeral and expire after 30 minutes.
//
// https://plaid.com/docs/api/tokens/#itempublic_tokenexchange
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (ExchangePublicTokenResponse, error) {
	var resp ExchangePublicTokenResponse
	if err := c.post(ctx, "/item/public_token/exchange", ExchangePublicTokenRequest{PublicToken: publicToken}, &resp); err != nil {
		return ExchangePublicTokenResponse{}, err
	}
	return resp, nil
}

// CreateLinkToken creates the link_token required to initialize a Link
// session.
//
// https://plaid.com/docs/api/tokens/#linktokencreate
func (c *Client) CreateLinkToken(ctx context.Context, req CreateLinkTokenRequest) (CreateLinkTokenResponse, error) {
	var resp CreateLinkTokenResponse
	if err := c.post(ctx, "/link/token/create", req, &resp); err != nil {
		return CreateLinkTokenResponse{}, err
	}
	return resp, nil
}

// GetLinkToken returns information about a link_token; useful for debugging.
//
// https://plaid.com/docs/api/tokens/#linktokenget
func (c *Client) GetLinkToken(ctx context.Context, linkToken string) (GetLinkTokenResponse, error) {
	var resp GetLinkTokenResponse
	if err := c.post(ctx, "/link/token/get", GetLinkTokenRequest{LinkToken: linkToken}, &resp); err != nil {
		return GetLinkTokenResponse{}, err
	}
	return resp, nil
}

// InvalidateAccessToken rotates the access token associated with an Item.
// The call returns a new access token and immediately invalidates the
// previous one.
//
// https://plaid.com/docs/api/tokens/#itemaccess_tokeninvalidate
func (c *Client) InvalidateAccessToken(ctx context.Context, accessToken string) (InvalidateAccessTokenResponse, error) {
	var resp InvalidateAccessTokenResponse
	if err := c.post(ctx, "/item/access_token/invalidate", InvalidateAccessTokenRequest{AccessToken: accessToken}, &resp); err != nil {
		return InvalidateAccessTokenResponse{}, err
	}
	return resp, nil
}
