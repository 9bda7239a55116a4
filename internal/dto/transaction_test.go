package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tijarati/tijarati_host/internal/dto"
)

func TestResolvedFieldsPreferBaseNames(t *testing.T) {
	var req dto.SaveTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"tx-1","amountBase":250,"amount":999,"unitPriceBase":125,"paidAmount":100}`,
	), &req))

	assert.Equal(t, 250.0, req.ResolvedAmount())
	assert.Equal(t, 125.0, req.ResolvedUnitPrice())
	assert.Equal(t, 100.0, req.ResolvedPaidAmount())
}

func TestResolvedFieldsFallBackToLegacyNames(t *testing.T) {
	var req dto.SaveTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"tx-1","amount":30,"unitPrice":15}`,
	), &req))

	assert.Equal(t, 30.0, req.ResolvedAmount())
	assert.Equal(t, 15.0, req.ResolvedUnitPrice())
	assert.Equal(t, 0.0, req.ResolvedPaidAmount())
}

func TestResolvedQuantityDefaultsToOne(t *testing.T) {
	var req dto.SaveTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":"tx-1"}`), &req))
	assert.Equal(t, 1.0, req.ResolvedQuantity())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"tx-1","quantity":0}`), &req))
	assert.Equal(t, 0.0, req.ResolvedQuantity())
}
