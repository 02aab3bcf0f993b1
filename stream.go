package plaid

import (
	"context"
	"fmt"
	"iter"
)

// defaultPageSize matches the server-side default for paginated list
// endpoints.
const defaultPageSize = 100

// TransactionsIter returns a lazy iterator over every transaction matched by
// req, fetching pages of /transactions/get on demand in strictly increasing
// offset order. The page size comes from req.Options.Count (default 100) and
// the starting offset from req.Options.Offset (default 0).
//
// No request is issued until the consumer pulls the first element, and
// breaking out of the range stops all further requests. The server's
// total_transactions is re-read on every page, so the iterator terminates
// cleanly even if the total shifts between calls; an empty page also
// terminates the iteration in case the reported total over-counts. If a page
// fetch fails, the error is yielded as the final element. The iterator is
// not restartable.
func (c *Client) TransactionsIter(ctx context.Context, req GetTransactionsRequest) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		count := defaultPageSize
		offset := 0
		if req.Options != nil {
			if req.Options.Count != nil {
				count = *req.Options.Count
			}
			if req.Options.Offset != nil {
				offset = *req.Options.Offset
			}
		}
		if count <= 0 {
			yield(Transaction{}, fmt.Errorf("transactions iterator: %w", ErrInvalidPageSize))
			return
		}

		for {
			pageReq := req
			opts := GetTransactionsOptions{}
			if req.Options != nil {
				opts = *req.Options
			}
			opts.Count = &count
			opts.Offset = &offset
			pageReq.Options = &opts

			resp, err := c.Transactions(ctx, pageReq)
			if err != nil {
				yield(Transaction{}, err)
				return
			}

			for _, txn := range resp.Transactions {
				if !yield(txn, nil) {
					return
				}
			}

			offset += len(resp.Transactions)
			if len(resp.Transactions) == 0 || offset >= resp.TotalTransactions {
				return
			}
		}
	}
}

// InstitutionsIter returns a lazy iterator over every institution matched by
// req, fetching pages of /institutions/get on demand. The page size comes
// from req.Count (default 100) and the starting offset from req.Offset. The
// response carries no total, so iteration ends on the first page shorter
// than the page size. The same laziness and error contract as
// TransactionsIter applies.
func (c *Client) InstitutionsIter(ctx context.Context, req GetInstitutionsRequest) iter.Seq2[Institution, error] {
	return func(yield func(Institution, error) bool) {
		count := req.Count
		if count == 0 {
			count = defaultPageSize
		}
		if count < 0 {
			yield(Institution{}, fmt.Errorf("institutions iterator: %w", ErrInvalidPageSize))
			return
		}
		offset := req.Offset

		for {
			pageReq := req
			pageReq.Count = count
			pageReq.Offset = offset

			page, err := c.GetInstitutions(ctx, pageReq)
			if err != nil {
				yield(Institution{}, err)
				return
			}

			for _, inst := range page {
				if !yield(inst, nil) {
					return
				}
			}

			if len(page) < count {
				return
			}
			offset += len(page)
		}
	}
}
