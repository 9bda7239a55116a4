package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// Client is the requesting side of the bridge channel. Each request gets a
// fresh correlation id and a pending slot; HandleResponse routes inbound
// `{id, result}` frames back to the awaiting caller.
type Client struct {
	send func(msg dto.BridgeEnvelope) error

	mu      sync.Mutex
	pending map[string]chan json.RawMessage
}

// NewClient builds a client over any ordered message channel. send must be
// safe to call concurrently or serialize internally.
func NewClient(send func(msg dto.BridgeEnvelope) error) *Client {
	return &Client{
		send:    send,
		pending: make(map[string]chan json.RawMessage),
	}
}

// Request sends one operation and waits for its correlated result. The raw
// result JSON is returned so the caller can decode into its expected shape.
func (c *Client) Request(ctx context.Context, msgType string, payload any) (json.RawMessage, error) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize payload for %s: %w", msgType, err)
		}
		raw = b
	}

	id := uuid.NewString()
	ch := make(chan json.RawMessage, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	if err := c.send(dto.BridgeEnvelope{ID: id, Type: msgType, Payload: raw}); err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", msgType, err)
	}

	select {
	case result := <-ch:
		return result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Notify sends a fire-and-forget message; no correlation id, no response.
func (c *Client) Notify(msgType string, payload any) error {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to serialize payload for %s: %w", msgType, err)
		}
		raw = b
	}
	return c.send(dto.BridgeEnvelope{Type: msgType, Payload: raw})
}

// HandleResponse delivers one inbound response frame to its awaiting caller.
// Responses with unknown ids (caller gave up, duplicate) are discarded.
func (c *Client) HandleResponse(raw []byte) {
	var resp struct {
		ID     string          `json:"id"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || resp.ID == "" {
		return
	}
	c.mu.Lock()
	ch, ok := c.pending[resp.ID]
	c.mu.Unlock()
	if ok {
		ch <- resp.Result
	}
}

// Dial connects a Client over a websocket bridge endpoint and starts its
// read pump. The returned close function tears the connection down.
func Dial(ctx context.Context, url string) (*Client, func() error, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial bridge at %s: %w", url, err)
	}

	var writeMu sync.Mutex
	client := NewClient(func(msg dto.BridgeEnvelope) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	})

	go func() {
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			client.HandleResponse(raw)
		}
	}()

	return client, conn.Close, nil
}
