package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/ahmohbati/forex-backend/internal/core/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockConverter *MockConversionService
	mockTxnRepo   *MockTransactionRepository
	service       *services.TransactionService
	userID        string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockConverter = new(MockConversionService)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockConverter, suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) conversionResult() *domain.ConversionResult {
	return &domain.ConversionResult{
		OriginalAmount:  decimal.RequireFromString("1000"),
		ConvertedAmount: decimal.RequireFromString("6.534"),
		ExchangeRate:    decimal.RequireFromString("0.0066"),
		Fee:             decimal.RequireFromString("0.066"),
		FromCurrency:    "ETB",
		ToCurrency:      "USD",
		Timestamp:       time.Now().UTC(),
	}
}

func (suite *TransactionServiceTestSuite) TestRecord_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		FromCurrency: "ETB",
		ToCurrency:   "USD",
		Amount:       decimal.RequireFromString("1000"),
		Type:         "CONVERT",
	}

	suite.mockConverter.On("Convert", ctx, mock.AnythingOfType("dto.ConvertRequest")).
		Return(suite.conversionResult(), nil).Once()

	var captured domain.Transaction
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Transaction)
		}).
		Return(&domain.Transaction{ID: 42, UserID: suite.userID, CreatedAt: time.Now()}, nil).Once()

	saved, err := suite.service.Record(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), saved.ID)

	// Persisted values are the engine's output rounded to ledger precision.
	suite.Equal(suite.userID, captured.UserID)
	suite.True(captured.Amount.Equal(decimal.RequireFromString("1000")), "amount was %s", captured.Amount)
	suite.True(captured.ExchangeRate.Equal(decimal.RequireFromString("0.0066")))
	suite.True(captured.Fee.Equal(decimal.RequireFromString("0.07")), "fee was %s", captured.Fee)
	suite.True(captured.ConvertedAmount.Equal(decimal.RequireFromString("6.53")), "converted was %s", captured.ConvertedAmount)
	suite.Equal(domain.TransactionTypeConvert, captured.Type)
	suite.Equal(domain.TransactionStatusCompleted, captured.Status)
}

func (suite *TransactionServiceTestSuite) TestRecord_DefaultsTypeToConvert() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ToCurrency: "USD",
		Amount:     decimal.RequireFromString("1000"),
	}

	suite.mockConverter.On("Convert", ctx, mock.AnythingOfType("dto.ConvertRequest")).
		Return(suite.conversionResult(), nil).Once()

	var captured domain.Transaction
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Transaction)
		}).
		Return(&domain.Transaction{ID: 1}, nil).Once()

	_, err := suite.service.Record(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionTypeConvert, captured.Type)
}

func (suite *TransactionServiceTestSuite) TestRecord_UnknownType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ToCurrency: "USD",
		Amount:     decimal.RequireFromString("10"),
		Type:       "TRANSFER",
	}

	saved, err := suite.service.Record(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
	suite.mockConverter.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecord_NoRateWritesNothing() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ToCurrency: "ZZZ",
		Amount:     decimal.RequireFromString("100"),
	}

	suite.mockConverter.On("Convert", ctx, mock.AnythingOfType("dto.ConvertRequest")).
		Return(nil, apperrors.NewNotFoundError("no exchange rate for pair ETB to ZZZ")).Once()

	saved, err := suite.service.Record(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(saved)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecord_TwoIdenticalCallsTwoRows() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ToCurrency: "USD",
		Amount:     decimal.RequireFromString("1000"),
	}

	suite.mockConverter.On("Convert", ctx, mock.AnythingOfType("dto.ConvertRequest")).
		Return(suite.conversionResult(), nil).Twice()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(&domain.Transaction{ID: 1}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(&domain.Transaction{ID: 2}, nil).Once()

	first, err := suite.service.Record(ctx, suite.userID, req)
	suite.Require().NoError(err)
	second, err := suite.service.Record(ctx, suite.userID, req)
	suite.Require().NoError(err)

	// No dedup: each call produces its own row with its own id.
	suite.NotEqual(first.ID, second.ID)
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "SaveTransaction", 2)
}

func (suite *TransactionServiceTestSuite) TestListForUser_EmptyIsEmptySlice() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, suite.userID).Return(nil, nil).Once()

	txns, err := suite.service.ListForUser(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func (suite *TransactionServiceTestSuite) TestListForUser_PassesThroughRows() {
	ctx := context.Background()
	rows := []domain.Transaction{
		{ID: 2, UserID: suite.userID, CreatedAt: time.Now()},
		{ID: 1, UserID: suite.userID, CreatedAt: time.Now().Add(-time.Hour)},
	}
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, suite.userID).Return(rows, nil).Once()

	txns, err := suite.service.ListForUser(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal(int64(2), txns[0].ID)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
