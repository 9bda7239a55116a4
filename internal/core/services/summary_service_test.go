package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tijarati/tijarati_host/internal/core/services"
	"github.com/tijarati/tijarati_host/internal/models"
)

func TestSummaryTotals(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("ListTransactions", context.Background()).Return([]models.Transaction{
		{ID: "s1", Type: models.Sale, Amount: 0.1},
		{ID: "s2", Type: models.Sale, Amount: 0.2},
		{ID: "p1", Type: models.Purchase, Amount: 0.1},
	}, nil).Once()

	svc := services.NewSummaryService(repo, slog.Default())
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	// Decimal accumulation avoids the classic 0.1+0.2 float drift.
	assert.Equal(t, 0.3, summary.TotalIn)
	assert.Equal(t, 0.1, summary.TotalOut)
	assert.Equal(t, 0.2, summary.Profit)
	repo.AssertExpectations(t)
}

func TestSummaryEmptyStore(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("ListTransactions", context.Background()).Return([]models.Transaction{}, nil).Once()

	svc := services.NewSummaryService(repo, slog.Default())
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalIn)
	assert.Zero(t, summary.TotalOut)
	assert.Zero(t, summary.Profit)
}
