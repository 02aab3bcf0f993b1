package plaid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedTransactions fakes /transactions/get over a fixed backing slice,
// recording every offset requested.
type pagedTransactions struct {
	transactions []Transaction
	// totals optionally overrides the reported total per call (index by call
	// number); the final entry repeats for later calls.
	totals  []int
	failAt  int // fail the nth call (1-based); 0 disables
	calls   int
	offsets []int
}

func (p *pagedTransactions) Do(req *http.Request) (*http.Response, error) {
	p.calls++

	var body GetTransactionsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return nil, err
	}
	opts := body.Options
	if opts == nil || opts.Count == nil || opts.Offset == nil {
		return nil, errors.New("paginated request without count/offset")
	}
	count, offset := *opts.Count, *opts.Offset
	p.offsets = append(p.offsets, offset)

	if p.failAt != 0 && p.calls >= p.failAt {
		return jsonResponse(http.StatusBadRequest, `{"error_type":"API_ERROR","error_code":"INTERNAL_SERVER_ERROR","error_message":"boom"}`), nil
	}

	total := len(p.transactions)
	if len(p.totals) > 0 {
		idx := p.calls - 1
		if idx >= len(p.totals) {
			idx = len(p.totals) - 1
		}
		total = p.totals[idx]
	}

	page := []Transaction{}
	if offset < len(p.transactions) {
		end := offset + count
		if end > len(p.transactions) {
			end = len(p.transactions)
		}
		page = p.transactions[offset:end]
	}

	resp := GetTransactionsResponse{
		Transactions:      page,
		TotalTransactions: total,
		RequestID:         fmt.Sprintf("req-%d", p.calls),
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return jsonResponse(http.StatusOK, string(payload)), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func makeTransactions(n int) []Transaction {
	txns := make([]Transaction, n)
	for i := range txns {
		txns[i] = Transaction{
			TransactionID: fmt.Sprintf("txn-%04d", i),
			Name:          fmt.Sprintf("Merchant %d", i),
			Amount:        float64(i) + 0.5,
		}
	}
	return txns
}

func streamClient(fake *pagedTransactions) *Client {
	return NewClient(Config{
		ClientID:   "test-client-id",
		Secret:     "test-secret",
		HTTPClient: fake,
	})
}

func intPtr(i int) *int { return &i }

func drain(t *testing.T, c *Client, req GetTransactionsRequest) ([]Transaction, error) {
	t.Helper()
	var got []Transaction
	for txn, err := range c.TransactionsIter(context.Background(), req) {
		if err != nil {
			return got, err
		}
		got = append(got, txn)
	}
	return got, nil
}

func TestTransactionsIter_PageMath(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		pageSize    int
		wantCalls   int
		wantOffsets []int
	}{
		{
			name:        "three pages with a partial tail",
			total:       250,
			pageSize:    100,
			wantCalls:   3,
			wantOffsets: []int{0, 100, 200},
		},
		{
			name:        "exact multiple of page size",
			total:       200,
			pageSize:    100,
			wantCalls:   2,
			wantOffsets: []int{0, 100},
		},
		{
			name:        "single short page",
			total:       7,
			pageSize:    10,
			wantCalls:   1,
			wantOffsets: []int{0},
		},
		{
			name:        "page size of one",
			total:       3,
			pageSize:    1,
			wantCalls:   3,
			wantOffsets: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &pagedTransactions{transactions: makeTransactions(tt.total)}
			client := streamClient(fake)

			got, err := drain(t, client, GetTransactionsRequest{
				AccessToken: "access-token",
				StartDate:   "2021-01-01",
				EndDate:     "2021-12-31",
				Options:     &GetTransactionsOptions{Count: intPtr(tt.pageSize)},
			})

			require.NoError(t, err)
			assert.Len(t, got, tt.total)
			assert.Equal(t, tt.wantCalls, fake.calls)
			assert.Equal(t, tt.wantOffsets, fake.offsets)
			// Items arrive in server order.
			for i, txn := range got {
				assert.Equal(t, fmt.Sprintf("txn-%04d", i), txn.TransactionID)
			}
		})
	}
}

func TestTransactionsIter_EmptyTotal(t *testing.T) {
	fake := &pagedTransactions{}
	client := streamClient(fake)

	got, err := drain(t, client, GetTransactionsRequest{AccessToken: "access-token"})

	require.NoError(t, err)
	assert.Empty(t, got)
	// Discovering total == 0 takes exactly one call.
	assert.Equal(t, 1, fake.calls)
}

func TestTransactionsIter_InvalidPageSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		t.Run(fmt.Sprintf("count=%d", size), func(t *testing.T) {
			fake := &pagedTransactions{transactions: makeTransactions(10)}
			client := streamClient(fake)

			got, err := drain(t, client, GetTransactionsRequest{
				AccessToken: "access-token",
				Options:     &GetTransactionsOptions{Count: intPtr(size)},
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPageSize)
			assert.Empty(t, got)
			assert.Equal(t, 0, fake.calls, "configuration errors must be caught before any network call")
		})
	}
}

func TestTransactionsIter_MidStreamFailure(t *testing.T) {
	fake := &pagedTransactions{
		transactions: makeTransactions(250),
		failAt:       3,
	}
	client := streamClient(fake)

	got, err := drain(t, client, GetTransactionsRequest{
		AccessToken: "access-token",
		Options:     &GetTransactionsOptions{Count: intPtr(100)},
	})

	// Everything before the failing page survives; the error is terminal.
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apiErr.ErrorCode)
	assert.Len(t, got, 200)
	assert.Equal(t, 3, fake.calls)
}

func TestTransactionsIter_EarlyBreak(t *testing.T) {
	fake := &pagedTransactions{transactions: makeTransactions(500)}
	client := streamClient(fake)

	var got []Transaction
	for txn, err := range client.TransactionsIter(context.Background(), GetTransactionsRequest{
		AccessToken: "access-token",
		Options:     &GetTransactionsOptions{Count: intPtr(100)},
	}) {
		require.NoError(t, err)
		got = append(got, txn)
		if len(got) == 150 {
			break
		}
	}

	assert.Len(t, got, 150)
	// 150 items span pages one and two; no third request is issued.
	assert.Equal(t, 2, fake.calls)
}

func TestTransactionsIter_Lazy(t *testing.T) {
	fake := &pagedTransactions{transactions: makeTransactions(10)}
	client := streamClient(fake)

	seq := client.TransactionsIter(context.Background(), GetTransactionsRequest{AccessToken: "access-token"})
	assert.Equal(t, 0, fake.calls, "constructing the iterator must not issue requests")

	for range seq {
		break
	}
	assert.Equal(t, 1, fake.calls)
}

func TestTransactionsIter_ShrinkingTotal(t *testing.T) {
	// The server reports 10 on the first call but the data shrinks to 8 by
	// the second; the most recent total wins and iteration ends early with
	// fewer items than first advertised.
	fake := &pagedTransactions{
		transactions: makeTransactions(8),
		totals:       []int{10, 8},
	}
	client := streamClient(fake)

	got, err := drain(t, client, GetTransactionsRequest{
		AccessToken: "access-token",
		Options:     &GetTransactionsOptions{Count: intPtr(5)},
	})

	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Equal(t, 2, fake.calls, "offset 8 >= revised total 8 stops the iteration")
}

func TestTransactionsIter_GrowingTotal(t *testing.T) {
	// New data arriving mid-stream raises the total; the iterator keeps
	// paging until the latest total is reached.
	fake := &pagedTransactions{
		transactions: makeTransactions(12),
		totals:       []int{8, 12},
	}
	client := streamClient(fake)

	got, err := drain(t, client, GetTransactionsRequest{
		AccessToken: "access-token",
		Options:     &GetTransactionsOptions{Count: intPtr(5)},
	})

	require.NoError(t, err)
	assert.Len(t, got, 12)
	assert.Equal(t, 3, fake.calls)
}

func TestTransactionsIter_StartingOffset(t *testing.T) {
	fake := &pagedTransactions{transactions: makeTransactions(20)}
	client := streamClient(fake)

	got, err := drain(t, client, GetTransactionsRequest{
		AccessToken: "access-token",
		Options:     &GetTransactionsOptions{Count: intPtr(10), Offset: intPtr(5)},
	})

	require.NoError(t, err)
	require.Len(t, got, 15)
	assert.Equal(t, "txn-0005", got[0].TransactionID)
	assert.Equal(t, []int{5, 15}, fake.offsets)
}

func TestTransactionsIter_PreservesRequestFilters(t *testing.T) {
	// Pagination bookkeeping must not clobber the caller's other options.
	var sawAccountIDs [][]string
	fake := &recordingDoer{fn: func(req *http.Request) (*http.Response, error) {
		var body GetTransactionsRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return nil, err
		}
		sawAccountIDs = append(sawAccountIDs, body.Options.AccountIDs)
		return jsonResponse(http.StatusOK, `{"transactions":[],"total_transactions":0}`), nil
	}}
	client := streamClient2(fake)

	_, err := drain(t, client, GetTransactionsRequest{
		AccessToken: "access-token",
		Options: &GetTransactionsOptions{
			Count:      intPtr(50),
			AccountIDs: []string{"acc-1", "acc-2"},
		},
	})

	require.NoError(t, err)
	require.Len(t, sawAccountIDs, 1)
	assert.Equal(t, []string{"acc-1", "acc-2"}, sawAccountIDs[0])
}

// recordingDoer adapts a function to the Doer interface.
type recordingDoer struct {
	fn func(*http.Request) (*http.Response, error)
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	return d.fn(req)
}

func streamClient2(d Doer) *Client {
	return NewClient(Config{ClientID: "test-client-id", Secret: "test-secret", HTTPClient: d})
}

// pagedInstitutions fakes /institutions/get over a fixed backing slice.
type pagedInstitutions struct {
	institutions []Institution
	calls        int
}

func (p *pagedInstitutions) Do(req *http.Request) (*http.Response, error) {
	p.calls++

	var body GetInstitutionsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return nil, err
	}

	page := []Institution{}
	if body.Offset < len(p.institutions) {
		end := body.Offset + body.Count
		if end > len(p.institutions) {
			end = len(p.institutions)
		}
		page = p.institutions[body.Offset:end]
	}

	payload, err := json.Marshal(GetInstitutionsResponse{Institutions: page})
	if err != nil {
		return nil, err
	}
	return jsonResponse(http.StatusOK, string(payload)), nil
}

func TestInstitutionsIter(t *testing.T) {
	institutions := make([]Institution, 25)
	for i := range institutions {
		institutions[i] = Institution{InstitutionID: fmt.Sprintf("ins_%d", i), Name: fmt.Sprintf("Bank %d", i)}
	}
	fake := &pagedInstitutions{institutions: institutions}
	client := streamClient2(fake)

	var got []Institution
	for inst, err := range client.InstitutionsIter(context.Background(), GetInstitutionsRequest{
		Count:        10,
		CountryCodes: []string{"US"},
	}) {
		require.NoError(t, err)
		got = append(got, inst)
	}

	assert.Len(t, got, 25)
	// The 5-item tail page is shorter than the page size, so no fourth call.
	assert.Equal(t, 3, fake.calls)
	assert.Equal(t, "ins_0", got[0].InstitutionID)
	assert.Equal(t, "ins_24", got[24].InstitutionID)
}

func TestInstitutionsIter_InvalidPageSize(t *testing.T) {
	fake := &pagedInstitutions{}
	client := streamClient2(fake)

	var gotErr error
	for _, err := range client.InstitutionsIter(context.Background(), GetInstitutionsRequest{Count: -1}) {
		gotErr = err
	}

	require.Error(t, gotErr)
	assert.ErrorIs(t, gotErr, ErrInvalidPageSize)
	assert.Equal(t, 0, fake.calls)
}
