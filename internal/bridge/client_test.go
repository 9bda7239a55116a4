package bridge_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tijarati/tijarati_host/internal/bridge"
	"github.com/tijarati/tijarati_host/internal/dto"
)

func TestClientCorrelatesResponses(t *testing.T) {
	sent := make(chan dto.BridgeEnvelope, 1)
	client := bridge.NewClient(func(msg dto.BridgeEnvelope) error {
		sent <- msg
		return nil
	})

	done := make(chan struct{})
	var result json.RawMessage
	var reqErr error
	go func() {
		defer close(done)
		result, reqErr = client.Request(context.Background(), "GET_TRANSACTIONS", nil)
	}()

	var env dto.BridgeEnvelope
	select {
	case env = <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("request never sent")
	}
	require.NotEmpty(t, env.ID)
	require.Equal(t, "GET_TRANSACTIONS", env.Type)

	// A response for some other request must not satisfy the caller.
	client.HandleResponse([]byte(`{"id":"unrelated","result":[]}`))
	client.HandleResponse([]byte(`{"id":"` + env.ID + `","result":[{"id":"tx-1"}]}`))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("request never completed")
	}
	require.NoError(t, reqErr)

	var txns []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(result, &txns))
	require.Len(t, txns, 1)
	assert.Equal(t, "tx-1", txns[0].ID)
}

func TestClientRequestHonorsContext(t *testing.T) {
	client := bridge.NewClient(func(dto.BridgeEnvelope) error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Request(ctx, "GET_PARTNERS", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientNotifySendsNoCorrelationID(t *testing.T) {
	sent := make(chan dto.BridgeEnvelope, 1)
	client := bridge.NewClient(func(msg dto.BridgeEnvelope) error {
		sent <- msg
		return nil
	})

	require.NoError(t, client.Notify("EXIT_APP", nil))

	env := <-sent
	assert.Empty(t, env.ID)
	assert.Equal(t, "EXIT_APP", env.Type)
}

func TestClientIgnoresMalformedResponses(t *testing.T) {
	client := bridge.NewClient(func(dto.BridgeEnvelope) error { return nil })

	// Must not panic or block.
	client.HandleResponse([]byte(`{broken`))
	client.HandleResponse([]byte(`{"result":1}`))
}
