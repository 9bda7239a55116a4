package services

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/platform/notify"
)

// --- Mock Scheduler ---
type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) ScheduleOneShot(ctx context.Context, delaySeconds int64, content notify.Content) (string, error) {
	args := m.Called(ctx, delaySeconds, content)
	return args.String(0), args.Error(1)
}

func (m *MockScheduler) CancelScheduled(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

var _ notify.Scheduler = (*MockScheduler)(nil)

// --- Test Suite ---
type ReminderServiceTestSuite struct {
	suite.Suite
	mockScheduler *MockScheduler
	service       *ReminderService
	now           time.Time
}

func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.mockScheduler = new(MockScheduler)
	suite.service = NewReminderService(suite.mockScheduler, slog.Default())
	suite.now = time.UnixMilli(1735689600000) // fixed clock
	suite.service.now = func() time.Time { return suite.now }
}

func (suite *ReminderServiceTestSuite) payloadAt(offsetMillis int64) dto.ScheduleReminderPayload {
	return dto.ScheduleReminderPayload{
		Timestamp: float64(suite.now.UnixMilli() + offsetMillis),
		Title:     "Pay up",
		Body:      "Client owes 250",
		TxID:      "tx-1",
	}
}

func (suite *ReminderServiceTestSuite) TestSchedule_Success() {
	ctx := context.Background()
	req := suite.payloadAt(10_000)

	suite.mockScheduler.On("ScheduleOneShot", ctx, int64(10), mock.MatchedBy(func(c notify.Content) bool {
		return c.Title == "Pay up" && c.Body == "Client owes 250" && c.Data["txId"] == "tx-1"
	})).Return("handle-1", nil).Once()

	handle, err := suite.service.Schedule(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("handle-1", handle)
	suite.mockScheduler.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestSchedule_RoundsDelayUp() {
	ctx := context.Background()
	// 4001ms ahead rounds up to the 5 second floor.
	req := suite.payloadAt(4_001)

	suite.mockScheduler.On("ScheduleOneShot", ctx, int64(5), mock.Anything).
		Return("handle-2", nil).Once()

	handle, err := suite.service.Schedule(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("handle-2", handle)
	suite.mockScheduler.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestSchedule_TooSoonIsRejectedWithoutPlatformCall() {
	ctx := context.Background()
	req := suite.payloadAt(3_000)

	_, err := suite.service.Schedule(ctx, req)

	suite.ErrorIs(err, apperrors.ErrInvalidTime)
	suite.mockScheduler.AssertNotCalled(suite.T(), "ScheduleOneShot", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestSchedule_PastTimestampIsRejected() {
	_, err := suite.service.Schedule(context.Background(), suite.payloadAt(-60_000))
	suite.ErrorIs(err, apperrors.ErrInvalidTime)
	suite.mockScheduler.AssertNotCalled(suite.T(), "ScheduleOneShot", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestSchedule_NonFiniteTimestampsAreRejected() {
	ctx := context.Background()
	for _, ts := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := suite.service.Schedule(ctx, dto.ScheduleReminderPayload{Timestamp: ts})
		suite.ErrorIs(err, apperrors.ErrInvalidTime)
	}
	suite.mockScheduler.AssertNotCalled(suite.T(), "ScheduleOneShot", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestSchedule_DefaultsTitle() {
	ctx := context.Background()
	req := suite.payloadAt(30_000)
	req.Title = ""

	suite.mockScheduler.On("ScheduleOneShot", ctx, int64(30), mock.MatchedBy(func(c notify.Content) bool {
		return c.Title == "Debt reminder"
	})).Return("handle-3", nil).Once()

	_, err := suite.service.Schedule(ctx, req)

	suite.Require().NoError(err)
	suite.mockScheduler.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestCancel_EmptyHandleIsNoOp() {
	suite.service.Cancel(context.Background(), "")
	suite.mockScheduler.AssertNotCalled(suite.T(), "CancelScheduled", mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestCancel_SwallowsPlatformFailure() {
	ctx := context.Background()
	suite.mockScheduler.On("CancelScheduled", ctx, "handle-x").
		Return(apperrors.ErrNotFound).Once()

	suite.service.Cancel(ctx, "handle-x")

	suite.mockScheduler.AssertExpectations(suite.T())
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
