package clientstate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// RESTFetcher backs the cache with the relay API for hosts that expose no
// bridge channel. It is stateless; every call is one HTTP round trip.
type RESTFetcher struct {
	baseURL string
	client  *http.Client
}

func NewRESTFetcher(baseURL string, client *http.Client) *RESTFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &RESTFetcher{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

var _ Fetcher = (*RESTFetcher)(nil)

func (f *RESTFetcher) ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	var txns []dto.TransactionResponse
	if err := f.do(ctx, http.MethodGet, "/api/transactions", nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (f *RESTFetcher) SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) error {
	return f.do(ctx, http.MethodPost, "/api/transactions", req, nil)
}

func (f *RESTFetcher) DeleteTransaction(ctx context.Context, id string) error {
	return f.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil)
}

func (f *RESTFetcher) ListPartners(ctx context.Context) ([]dto.PartnerResponse, error) {
	var partners []dto.PartnerResponse
	if err := f.do(ctx, http.MethodGet, "/api/partners", nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func (f *RESTFetcher) SavePartner(ctx context.Context, req dto.SavePartnerRequest) (int64, error) {
	var resp dto.SavePartnerResponse
	if err := f.do(ctx, http.MethodPost, "/api/partners", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (f *RESTFetcher) DeletePartner(ctx context.Context, id int64) error {
	return f.do(ctx, http.MethodDelete, "/api/partners/"+strconv.FormatInt(id, 10), nil, nil)
}

func (f *RESTFetcher) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to serialize %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
