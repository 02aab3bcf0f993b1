// Package plaid provides typed Go bindings for the Plaid API.
//
// The client is a thin, dependency-free mapping of Plaid's JSON-over-HTTPS
// endpoints: one method per endpoint, typed request and response structs,
// and a typed error for well-formed Plaid error objects. It performs no
// retries, no caching, and no logging of its own; timeout and retry policy
// belong to the HTTP client you supply.
//
// # Quick start
//
//	client := plaid.NewClient(plaid.Config{
//		ClientID:    os.Getenv("PLAID_CLIENT_ID"),
//		Secret:      os.Getenv("PLAID_SECRET"),
//		Environment: plaid.Sandbox,
//	})
//
//	accounts, err := client.Accounts(ctx, accessToken)
//	if err != nil {
//		var apiErr *plaid.APIError
//		if errors.As(err, &apiErr) {
//			log.Fatalf("plaid rejected the call: %s - %s", apiErr.ErrorCode, apiErr.ErrorMessage)
//		}
//		log.Fatal(err)
//	}
//
// # Pagination
//
// Transaction history can span thousands of records. TransactionsIter wraps
// the offset-based /transactions/get endpoint in a lazy iterator that
// fetches pages on demand and stops as soon as the consumer does:
//
//	for txn, err := range client.TransactionsIter(ctx, req) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(txn.Name, txn.Amount)
//	}
//
// # Custom transports
//
// Any implementation of the Doer interface can stand in for the default
// *http.Client, which is how the tests in this repository run against
// httptest servers and canned responses.
//
// These bindings are not official Plaid bindings. See https://plaid.com/docs/
// for endpoint semantics.
package plaid
