package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
	"github.com/ahmohbati/forex-backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ResolveLatest(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrency, targetCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) ListRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) ListPopularRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

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

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockCurrencyService   *MockCurrencyService
	mockRateService       *MockRateService
	mockConversionService *MockConversionService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router = gin.New()

	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockRateService = new(MockRateService)
	suite.mockConversionService = new(MockConversionService)

	api := suite.router.Group("/api")
	handlers.RegisterCurrencyRoutes(api, suite.mockCurrencyService, suite.mockRateService, suite.mockConversionService)
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_BaseCurrencyFirst() {
	currencies := []domain.Currency{
		{ID: 3, Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br", IsActive: true},
		{ID: 1, Code: "AED", Name: "UAE Dirham", IsActive: true},
		{ID: 9, Code: "USD", Name: "US Dollar", Symbol: "$", IsActive: true},
	}
	suite.mockCurrencyService.On("ListActiveCurrencies", mock.Anything).Return(currencies, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 3)
	suite.Equal("ETB", body[0].Code)
	suite.Equal("AED", body[1].Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_EmptyCatalogIsEmptyArray() {
	suite.mockCurrencyService.On("ListActiveCurrencies", mock.Anything).
		Return([]domain.Currency{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *CurrencyHandlerTestSuite) TestListRates_ForwardsBaseQueryParam() {
	rates := []domain.ExchangeRate{
		{ID: 12, BaseCurrency: "USD", TargetCurrency: "EUR", Rate: decimal.RequireFromString("0.92"), RecordedAt: time.Now().UTC()},
	}
	suite.mockRateService.On("ListRates", mock.Anything, "USD").Return(rates, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/currencies/rates?base=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("EUR", body[0].TargetCurrency)
	suite.True(body[0].Rate.Equal(decimal.RequireFromString("0.92")))
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListPopularRates_Success() {
	rates := []domain.ExchangeRate{
		{ID: 5, BaseCurrency: "ETB", TargetCurrency: "USD", Rate: decimal.RequireFromString("0.0066"), RecordedAt: time.Now().UTC()},
		{ID: 4, BaseCurrency: "ETB", TargetCurrency: "EUR", Rate: decimal.RequireFromString("0.0061"), RecordedAt: time.Now().UTC()},
	}
	suite.mockRateService.On("ListPopularRates", mock.Anything).Return(rates, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/currencies/popular-rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("USD", body[0].TargetCurrency)
	suite.Equal("EUR", body[1].TargetCurrency)
}

func (suite *CurrencyHandlerTestSuite) TestConvert_Success() {
	result := &domain.ConversionResult{
		OriginalAmount:  decimal.RequireFromString("1000"),
		ConvertedAmount: decimal.RequireFromString("6.534"),
		ExchangeRate:    decimal.RequireFromString("0.0066"),
		Fee:             decimal.RequireFromString("0.066"),
		FromCurrency:    "ETB",
		ToCurrency:      "USD",
		Timestamp:       time.Now().UTC(),
	}
	suite.mockConversionService.On("Convert", mock.Anything,
		mock.MatchedBy(func(req dto.ConvertRequest) bool {
			return req.ToCurrency == "USD" && req.Amount.Equal(decimal.RequireFromString("1000"))
		}),
	).Return(result, nil).Once()

	payload := []byte(`{"amount": 1000, "fromCurrency": "ETB", "toCurrency": "USD"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/currencies/convert", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.ConvertedAmount.Equal(decimal.RequireFromString("6.534")), "converted was %s", body.ConvertedAmount)
	suite.True(body.Fee.Equal(decimal.RequireFromString("0.066")), "fee was %s", body.Fee)
	suite.Equal("ETB", body.FromCurrency)
	suite.Equal("USD", body.ToCurrency)
	suite.mockConversionService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestConvert_MissingToCurrencyIsBadRequest() {
	payload := []byte(`{"amount": 1000}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/currencies/convert", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversionService.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestConvert_MalformedCurrencyCodeIsBadRequest() {
	payload := []byte(`{"amount": 10, "toCurrency": "us"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/currencies/convert", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversionService.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestConvert_UnknownPairIsNotFound() {
	suite.mockConversionService.On("Convert", mock.Anything, mock.AnythingOfType("dto.ConvertRequest")).
		Return(nil, apperrors.NewNotFoundError("no exchange rate for pair ETB to XXX")).Once()

	payload := []byte(`{"amount": 10, "toCurrency": "XXX"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/currencies/convert", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Exchange rate not found")
}

func (suite *CurrencyHandlerTestSuite) TestConvert_ValidationErrorFromServiceIsBadRequest() {
	suite.mockConversionService.On("Convert", mock.Anything, mock.AnythingOfType("dto.ConvertRequest")).
		Return(nil, apperrors.NewValidationError("amount must be positive")).Once()

	payload := []byte(`{"amount": -5, "toCurrency": "USD"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/currencies/convert", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "amount must be positive")
}

// --- Run Test Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
