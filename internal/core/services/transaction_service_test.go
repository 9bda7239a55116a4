package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/core/services"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/models"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn models.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListReminderIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTransactionRepository) ListMockReminderIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// --- Mock ReminderSvcFacade ---
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) Schedule(ctx context.Context, req dto.ScheduleReminderPayload) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockReminderService) Cancel(ctx context.Context, handle string) {
	m.Called(ctx, handle)
}

var _ portssvc.ReminderSvcFacade = (*MockReminderService)(nil)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockTransactionRepository
	mockReminders *MockReminderService
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockReminders = new(MockReminderService)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockReminders, slog.Default())
}

func floatPtr(v float64) *float64 { return &v }

func (suite *TransactionServiceTestSuite) TestSaveTransaction_Success() {
	ctx := context.Background()
	req := dto.SaveTransactionRequest{
		ID:         "tx-1",
		Type:       "sale",
		Item:       "Argan oil",
		AmountBase: floatPtr(250),
		Date:       "2025-03-01",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t models.Transaction) bool {
		return t.ID == "tx-1" && t.Amount == 250 && t.Quantity == 1 && t.Currency == "MAD"
	})).Return(nil).Once()

	err := suite.service.SaveTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSaveTransaction_LegacyAmountFieldFallsBack() {
	ctx := context.Background()
	req := dto.SaveTransactionRequest{
		ID:     "tx-legacy",
		Item:   "Soap",
		Amount: floatPtr(30), // legacy field name
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t models.Transaction) bool {
		return t.Amount == 30
	})).Return(nil).Once()

	err := suite.service.SaveTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSaveTransaction_BlankIDRejected() {
	err := suite.service.SaveTransaction(context.Background(), dto.SaveTransactionRequest{ID: "   "})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_CancelsAttachedReminder() {
	ctx := context.Background()
	stored := &models.Transaction{ID: "tx-1", ReminderID: "rem-1"}

	suite.mockRepo.On("FindTransactionByID", ctx, "tx-1").Return(stored, nil).Once()
	suite.mockReminders.On("Cancel", ctx, "rem-1").Once()
	suite.mockRepo.On("DeleteTransaction", ctx, "tx-1").Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "tx-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReminders.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_AbsentRowStillSucceeds() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, "missing").Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "missing")

	suite.Require().NoError(err)
	suite.mockReminders.AssertNotCalled(suite.T(), "Cancel", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MapsToWireShape() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return([]models.Transaction{
		{ID: "tx-1", Type: models.Sale, Amount: 250, ReminderID: "rem-1"},
	}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(250.0, txns[0].AmountBase)
	suite.Require().NotNil(txns[0].ReminderID)
	suite.Equal("rem-1", *txns[0].ReminderID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListTransactions(ctx)

	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
