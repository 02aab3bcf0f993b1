package plaid

import "context"

// InstitutionsSearchRequest is the payload for /institutions/search.
type InstitutionsSearchRequest struct {
	Query        string                   `json:"query"`
	Products     []string                 `json:"products"`
	CountryCodes []string                 `json:"country_codes"`
	Options      *SearchInstitutionFilter `json:"options,omitempty"`
}

// SearchInstitutionFilter refines /institutions/search results.
type SearchInstitutionFilter struct {
	OAuth                            *bool                    `json:"oauth,omitempty"`
	IncludeOptionalMetadata          *bool                    `json:"include_optional_metadata,omitempty"`
	IncludeAuthMetadata              *bool                    `json:"include_auth_metadata,omitempty"`
	IncludePaymentInitiationMetadata *bool                    `json:"include_payment_initiation_metadata,omitempty"`
	PaymentInitiation                *PaymentInitiationFilter `json:"payment_initiation,omitempty"`
}

// PaymentInitiationFilter matches institutions able to process a payment.
type PaymentInitiationFilter struct {
	PaymentID *string `json:"payment_id,omitempty"`
}

// InstitutionsSearchResponse is the response for /institutions/search.
type InstitutionsSearchResponse struct {
	Institutions []Institution `json:"institutions"`
}

// InstitutionGetRequest is the payload for /institutions/get_by_id.
type InstitutionGetRequest struct {
	InstitutionID string                `json:"institution_id"`
	CountryCodes  []string              `json:"country_codes"`
	Options       *GetInstitutionFilter `json:"options,omitempty"`
}

// GetInstitutionFilter controls optional metadata for /institutions/get_by_id.
type GetInstitutionFilter struct {
	IncludeOptionalMetadata          *bool `json:"include_optional_metadata,omitempty"`
	IncludeStatus                    *bool `json:"include_status,omitempty"`
	IncludeAuthMetadata              *bool `json:"include_auth_metadata,omitempty"`
	IncludePaymentInitiationMetadata *bool `json:"include_payment_initiation_metadata,omitempty"`
}

// InstitutionGetResponse is the response for /institutions/get_by_id.
type InstitutionGetResponse struct {
	Institution Institution `json:"institution"`
}

// GetInstitutionsRequest is the payload for /institutions/get. Results are
// paginated by Count and Offset.
type GetInstitutionsRequest struct {
	Count        int                    `json:"count"`
	Offset       int                    `json:"offset"`
	CountryCodes []string               `json:"country_codes"`
	Options      *GetInstitutionsFilter `json:"options,omitempty"`
}

// GetInstitutionsFilter refines /institutions/get results.
type GetInstitutionsFilter struct {
	// Products filters institutions based on which products they support.
	Products []string `json:"products,omitempty"`
	// RoutingNumbers restricts results to institutions matching all of the
	// given routing numbers.
	RoutingNumbers          []string `json:"routing_numbers,omitempty"`
	OAuth                   bool     `json:"oauth,omitempty"`
	IncludeOptionalMetadata bool     `json:"include_optional_metadata,omitempty"`
	// IncludeAuthMetadata returns metadata indicating which auth methods an
	// institution supports. Defaults to false.
	IncludeAuthMetadata bool `json:"include_auth_metadata,omitempty"`
	// IncludePaymentInitiationMetadata returns metadata indicating which
	// payment configurations are supported. Defaults to false.
	IncludePaymentInitiationMetadata bool `json:"include_payment_initiation_metadata,omitempty"`
}

// GetInstitutionsResponse is the response for /institutions/get.
type GetInstitutionsResponse struct {
	Institutions []Institution `json:"institutions"`
}

// Institution is a bank or financial institution supported by Plaid.
type Institution struct {
	InstitutionID  string   `json:"institution_id"`
	Name           string   `json:"name"`
	Products       []string `json:"products"`
	CountryCodes   []string `json:"country_codes"`
	URL            *string  `json:"url,omitempty"`
	PrimaryColor   *string  `json:"primary_color,omitempty"`
	Logo           *string  `json:"logo,omitempty"`
	RoutingNumbers []string `json:"routing_numbers,omitempty"`
	OAuth          bool     `json:"oauth"`
}

// SearchInstitutions returns institutions matching the query parameters, up
// to a maximum of ten institutions per query.
//
// https://plaid.com/docs/api/institutions/#institutionssearch
func (c *Client) SearchInstitutions(ctx context.Context, req InstitutionsSearchRequest) ([]Institution, error) {
	var resp InstitutionsSearchResponse
	if err := c.post(ctx, "/institutions/search", req, &resp); err != nil {
		return nil, err
	}
	return resp.Institutions, nil
}

// GetInstitutionByID returns details on a single institution.
//
// https://plaid.com/docs/api/institutions/#institutionsget_by_id
func (c *Client) GetInstitutionByID(ctx context.Context, req InstitutionGetRequest) (Institution, error) {
	var resp InstitutionGetResponse
	if err := c.post(ctx, "/institutions/get_by_id", req, &resp); err != nil {
		return Institution{}, err
	}
	return resp.Institution, nil
}

// GetInstitutions returns one page of the institutions currently supported
// by Plaid. Institutions with no overlap to the client's enabled products
// are filtered from results; use InstitutionsIter to walk every page.
//
// https://plaid.com/docs/api/institutions/#institutionsget
func (c *Client) GetInstitutions(ctx context.Context, req GetInstitutionsRequest) ([]Institution, error) {
	var resp GetInstitutionsResponse
	if err := c.post(ctx, "/institutions/get", req, &resp); err != nil {
		return nil, err
	}
	return resp.Institutions, nil
}
