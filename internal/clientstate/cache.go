package clientstate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// snapshotKey versions the persisted slot; bumping it abandons snapshots
// written under an older shape.
const snapshotKey = "tijarati_v2"

// Snapshot is the full client-visible state: UI preferences plus the cached
// record lists.
type Snapshot struct {
	Language     string                    `json:"language"`
	Currency     string                    `json:"currency"`
	Theme        string                    `json:"theme"`
	Transactions []dto.TransactionResponse `json:"transactions"`
	Partners     []dto.PartnerResponse     `json:"partners"`
}

// partialSnapshot reads a persisted snapshot without clobbering defaults for
// fields the stored blob never had.
type partialSnapshot struct {
	Language     *string                    `json:"language"`
	Currency     *string                    `json:"currency"`
	Theme        *string                    `json:"theme"`
	Transactions *[]dto.TransactionResponse `json:"transactions"`
	Partners     *[]dto.PartnerResponse     `json:"partners"`
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		Language:     "ar",
		Currency:     "MAD",
		Theme:        "light",
		Transactions: []dto.TransactionResponse{},
		Partners:     []dto.PartnerResponse{},
	}
}

// Cache holds the optimistic client state. Reads serve from memory; writes
// apply locally first, persist, then propagate to the backend. A failed
// propagation keeps the local entry so the UI never loses what the user just
// entered.
type Cache struct {
	mu      sync.Mutex
	state   Snapshot
	online  bool
	fetcher Fetcher
	store   *diskv.Diskv
	log     *slog.Logger
}

// NewCache builds a cache over a disk-backed store rooted at dir.
func NewCache(dir string, fetcher Fetcher, logger *slog.Logger) *Cache {
	store := diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 1 << 20,
	})
	return &Cache{
		state:   defaultSnapshot(),
		fetcher: fetcher,
		store:   store,
		log:     logger,
	}
}

// Load restores the persisted snapshot, shallow-merging it over defaults. A
// missing or unreadable slot leaves the defaults in place.
func (c *Cache) Load() {
	raw, err := c.store.Read(snapshotKey)
	if err != nil {
		return
	}
	var partial partialSnapshot
	if err := json.Unmarshal(raw, &partial); err != nil {
		c.log.Warn("Discarding unreadable state snapshot", slog.String("error", err.Error()))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if partial.Language != nil {
		c.state.Language = *partial.Language
	}
	if partial.Currency != nil {
		c.state.Currency = *partial.Currency
	}
	if partial.Theme != nil {
		c.state.Theme = *partial.Theme
	}
	if partial.Transactions != nil {
		c.state.Transactions = *partial.Transactions
	}
	if partial.Partners != nil {
		c.state.Partners = *partial.Partners
	}
}

// Snapshot returns a copy of the current state.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

// Online reports whether the last backend sync succeeded.
func (c *Cache) Online() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

// SetPreferences updates the UI preferences and persists. Empty values leave
// the current setting untouched.
func (c *Cache) SetPreferences(language, currency, theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if language != "" {
		c.state.Language = language
	}
	if currency != "" {
		c.state.Currency = currency
	}
	if theme != "" {
		c.state.Theme = theme
	}
	c.persistLocked()
}

// Sync refreshes both record lists from the backend. On success the cached
// lists are overwritten wholesale; on failure the cache keeps serving what it
// has and flips offline.
func (c *Cache) Sync(ctx context.Context) error {
	txns, err := c.fetcher.ListTransactions(ctx)
	if err != nil {
		c.setOnline(false)
		return fmt.Errorf("failed to sync transactions: %w", err)
	}
	partners, err := c.fetcher.ListPartners(ctx)
	if err != nil {
		c.setOnline(false)
		return fmt.Errorf("failed to sync partners: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Transactions = txns
	c.state.Partners = partners
	c.online = true
	c.persistLocked()
	return nil
}

// AddTransaction applies the save optimistically, newest first, then
// propagates. The optimistic entry survives a failed propagation.
func (c *Cache) AddTransaction(ctx context.Context, req dto.SaveTransactionRequest, view dto.TransactionResponse) {
	c.mu.Lock()
	c.state.Transactions = append([]dto.TransactionResponse{view}, c.withoutTransactionLocked(view.ID)...)
	c.persistLocked()
	c.mu.Unlock()

	if err := c.fetcher.SaveTransaction(ctx, req); err != nil {
		c.log.Warn("Transaction held locally; backend write failed",
			slog.String("id", view.ID),
			slog.String("error", err.Error()),
		)
		c.setOnline(false)
		return
	}
	c.setOnline(true)
}

// RemoveTransaction drops the entry locally and propagates the delete.
func (c *Cache) RemoveTransaction(ctx context.Context, id string) {
	c.mu.Lock()
	c.state.Transactions = c.withoutTransactionLocked(id)
	c.persistLocked()
	c.mu.Unlock()

	if err := c.fetcher.DeleteTransaction(ctx, id); err != nil {
		c.log.Warn("Backend delete failed", slog.String("id", id), slog.String("error", err.Error()))
		c.setOnline(false)
	}
}

// AddPartner applies the save optimistically and propagates. A successful
// propagation adopts the backend-assigned id via a full resync.
func (c *Cache) AddPartner(ctx context.Context, req dto.SavePartnerRequest, view dto.PartnerResponse) {
	c.mu.Lock()
	replaced := false
	for i := range c.state.Partners {
		if view.ID != 0 && c.state.Partners[i].ID == view.ID {
			c.state.Partners[i] = view
			replaced = true
			break
		}
	}
	if !replaced {
		c.state.Partners = append(c.state.Partners, view)
	}
	c.persistLocked()
	c.mu.Unlock()

	if _, err := c.fetcher.SavePartner(ctx, req); err != nil {
		c.log.Warn("Partner held locally; backend write failed",
			slog.String("name", view.Name),
			slog.String("error", err.Error()),
		)
		c.setOnline(false)
		return
	}
	if err := c.Sync(ctx); err != nil {
		c.log.Warn("Resync after partner save failed", slog.String("error", err.Error()))
	}
}

// RemovePartner drops the entry locally; the backend delete is fire-and-forget.
func (c *Cache) RemovePartner(ctx context.Context, id int64) {
	c.mu.Lock()
	kept := c.state.Partners[:0]
	for _, p := range c.state.Partners {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.state.Partners = kept
	c.persistLocked()
	c.mu.Unlock()

	go func() {
		if err := c.fetcher.DeletePartner(context.WithoutCancel(ctx), id); err != nil {
			c.log.Warn("Backend partner delete failed", slog.Int64("id", id), slog.String("error", err.Error()))
		}
	}()
}

func (c *Cache) withoutTransactionLocked(id string) []dto.TransactionResponse {
	kept := make([]dto.TransactionResponse, 0, len(c.state.Transactions))
	for _, t := range c.state.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}

func (c *Cache) setOnline(v bool) {
	c.mu.Lock()
	c.online = v
	c.mu.Unlock()
}

func (c *Cache) copyLocked() Snapshot {
	out := c.state
	out.Transactions = append([]dto.TransactionResponse(nil), c.state.Transactions...)
	out.Partners = append([]dto.PartnerResponse(nil), c.state.Partners...)
	return out
}

func (c *Cache) persistLocked() {
	raw, err := json.Marshal(c.state)
	if err != nil {
		c.log.Error("Failed to serialize state snapshot", slog.String("error", err.Error()))
		return
	}
	if err := c.store.Write(snapshotKey, raw); err != nil {
		c.log.Error("Failed to persist state snapshot", slog.String("error", err.Error()))
	}
}
