package plaid

import "context"

// SearchEmployerRequest is the payload for /employers/search.
type SearchEmployerRequest struct {
	Query string `json:"query"`
	// Products must be set to ["deposit_switch"].
	Products []string `json:"products"`
}

// SearchEmployerResponse is the response for /employers/search.
type SearchEmployerResponse struct {
	Employers []Employer `json:"employers"`
	RequestID string     `json:"request_id"`
}

// Employer is a known employer usable with Deposit Switch.
type Employer struct {
	EmployerID      string   `json:"employer_id"`
	Name            string   `json:"name"`
	Address         *Address `json:"address,omitempty"`
	ConfidenceScore float64  `json:"confidence_score"`
}

// Address is a postal address.
type Address struct {
	City       string  `json:"city"`
	Region     *string `json:"region,omitempty"`
	Street     string  `json:"street"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// SearchEmployers searches Plaid's database of known employers for use with
// Deposit Switch.
//
// https://plaid.com/docs/api/employers/
func (c *Client) SearchEmployers(ctx context.Context, req SearchEmployerRequest) (SearchEmployerResponse, error) {
	var resp SearchEmployerResponse
	if err := c.post(ctx, "/employers/search", req, &resp); err != nil {
		return SearchEmployerResponse{}, err
	}
	return resp, nil
}
