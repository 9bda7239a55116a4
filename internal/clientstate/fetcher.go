package clientstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tijarati/tijarati_host/internal/bridge"
	"github.com/tijarati/tijarati_host/internal/dto"
)

// Fetcher is the backend the cache syncs against. The primary implementation
// rides the bridge channel; a REST implementation covers hosts without one.
type Fetcher interface {
	ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error)
	SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) error
	DeleteTransaction(ctx context.Context, id string) error
	ListPartners(ctx context.Context) ([]dto.PartnerResponse, error)
	SavePartner(ctx context.Context, req dto.SavePartnerRequest) (int64, error)
	DeletePartner(ctx context.Context, id int64) error
}

// BridgeFetcher backs the cache with correlated bridge requests.
type BridgeFetcher struct {
	client *bridge.Client
}

func NewBridgeFetcher(client *bridge.Client) *BridgeFetcher {
	return &BridgeFetcher{client: client}
}

var _ Fetcher = (*BridgeFetcher)(nil)

func (f *BridgeFetcher) ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	raw, err := f.client.Request(ctx, bridge.TypeGetTransactions, nil)
	if err != nil {
		return nil, err
	}
	var txns []dto.TransactionResponse
	if err := json.Unmarshal(raw, &txns); err != nil {
		return nil, fmt.Errorf("unexpected transactions result: %w", err)
	}
	return txns, nil
}

func (f *BridgeFetcher) SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) error {
	raw, err := f.client.Request(ctx, bridge.TypeSaveTransaction, req)
	if err != nil {
		return err
	}
	return checkOperationResult(raw)
}

func (f *BridgeFetcher) DeleteTransaction(ctx context.Context, id string) error {
	raw, err := f.client.Request(ctx, bridge.TypeDeleteTransaction, dto.DeleteTransactionPayload{ID: id})
	if err != nil {
		return err
	}
	return checkOperationResult(raw)
}

func (f *BridgeFetcher) ListPartners(ctx context.Context) ([]dto.PartnerResponse, error) {
	raw, err := f.client.Request(ctx, bridge.TypeGetPartners, nil)
	if err != nil {
		return nil, err
	}
	var partners []dto.PartnerResponse
	if err := json.Unmarshal(raw, &partners); err != nil {
		return nil, fmt.Errorf("unexpected partners result: %w", err)
	}
	return partners, nil
}

func (f *BridgeFetcher) SavePartner(ctx context.Context, req dto.SavePartnerRequest) (int64, error) {
	raw, err := f.client.Request(ctx, bridge.TypeSavePartner, req)
	if err != nil {
		return 0, err
	}
	var resp dto.SavePartnerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, fmt.Errorf("unexpected save partner result: %w", err)
	}
	if !resp.Success {
		return 0, fmt.Errorf("save partner rejected")
	}
	return resp.ID, nil
}

func (f *BridgeFetcher) DeletePartner(ctx context.Context, id int64) error {
	raw, err := f.client.Request(ctx, bridge.TypeDeletePartner, dto.DeletePartnerPayload{ID: id})
	if err != nil {
		return err
	}
	return checkOperationResult(raw)
}

func checkOperationResult(raw json.RawMessage) error {
	var res dto.OperationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("unexpected operation result: %w", err)
	}
	if !res.Success {
		if res.Error != "" {
			return fmt.Errorf("operation rejected: %s", res.Error)
		}
		return fmt.Errorf("operation rejected")
	}
	return nil
}
