package services_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/jasonlam510/scount-currency-backend/internal/apperrors"
	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
	"github.com/jasonlam510/scount-currency-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) LoadHistory(ctx context.Context, deviceID string) ([]string, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHistoryRepository) SaveHistory(ctx context.Context, deviceID string, codes []string) error {
	args := m.Called(ctx, deviceID, codes)
	return args.Error(0)
}

func (m *MockHistoryRepository) DeleteHistory(ctx context.Context, deviceID string) error {
	args := m.Called(ctx, deviceID)
	return args.Error(0)
}

// --- Test Suite ---
type HistoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockHistoryRepository
	service  portssvc.HistorySvcFacade
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockHistoryRepository)
	suite.service = services.NewHistoryService(suite.mockRepo, slog.Default())
}

const testDeviceID = "device-1"

func (suite *HistoryServiceTestSuite) TestRecord_MovesToFrontAndDeduplicates() {
	ctx := context.Background()

	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return([]string{"EUR", "USD", "JPY"}, nil).Once()
	suite.mockRepo.On("SaveHistory", ctx, testDeviceID, []string{"USD", "EUR", "JPY"}).Return(nil).Once()

	got := suite.service.Record(ctx, testDeviceID, "usd")
	suite.Equal([]string{"USD", "EUR", "JPY"}, got)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestRecord_EmptyCodeIsNoOp() {
	ctx := context.Background()

	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return([]string{"EUR"}, nil).Once()

	got := suite.service.Record(ctx, testDeviceID, "   ")
	suite.Equal([]string{"EUR"}, got)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestRecord_BoundedAtMaxLength() {
	ctx := context.Background()

	existing := make([]string, 0, 9)
	for i := 0; i < 9; i++ {
		existing = append(existing, fmt.Sprintf("C%02d", i))
	}

	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveHistory", ctx, testDeviceID, mock.Anything).Return(nil).Once()

	got := suite.service.Record(ctx, testDeviceID, "NEW")
	suite.Len(got, 9)
	suite.Equal("NEW", got[0])
	suite.NotContains(got, "C08", "oldest entry is truncated away")
}

func (suite *HistoryServiceTestSuite) TestRecord_SaveFailureStillReturnsUpdatedList() {
	ctx := context.Background()

	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return([]string{}, nil).Once()
	suite.mockRepo.On("SaveHistory", ctx, testDeviceID, []string{"EUR"}).Return(errors.New("write failed")).Once()

	got := suite.service.Record(ctx, testDeviceID, "EUR")
	suite.Equal([]string{"EUR"}, got, "in-memory result never rolls back on a write failure")
}

func (suite *HistoryServiceTestSuite) TestList_AbsentHistoryIsEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return(nil, apperrors.ErrNotFound).Once()

	suite.Empty(suite.service.List(ctx, testDeviceID))
}

func (suite *HistoryServiceTestSuite) TestList_ReadFailureIsEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return(nil, errors.New("corrupt row")).Once()

	suite.Empty(suite.service.List(ctx, testDeviceID))
}

func (suite *HistoryServiceTestSuite) TestList_SanitizesStoredEntries() {
	ctx := context.Background()

	stored := []string{" usd ", "", "EUR", "usd", "  ", "jpy"}
	suite.mockRepo.On("LoadHistory", ctx, testDeviceID).Return(stored, nil).Once()

	got := suite.service.List(ctx, testDeviceID)
	suite.Equal([]string{"USD", "EUR", "JPY"}, got)
}

func (suite *HistoryServiceTestSuite) TestClear() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteHistory", ctx, testDeviceID).Return(nil).Once()
	suite.NoError(suite.service.Clear(ctx, testDeviceID))

	suite.mockRepo.On("DeleteHistory", ctx, testDeviceID).Return(errors.New("db gone")).Once()
	suite.Error(suite.service.Clear(ctx, testDeviceID))
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
