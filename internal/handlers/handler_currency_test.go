package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
	"github.com/jasonlam510/scount-currency-backend/internal/dto"
	"github.com/jasonlam510/scount-currency-backend/internal/handlers"
	"github.com/jasonlam510/scount-currency-backend/internal/middleware"
	"github.com/jasonlam510/scount-currency-backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AllSupported(loc domain.DeviceLocale) []domain.Currency {
	args := m.Called(loc)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Currency)
}

func (m *MockCatalogService) CurrencyByCode(code string, loc domain.DeviceLocale) (domain.Currency, bool) {
	args := m.Called(code, loc)
	return args.Get(0).(domain.Currency), args.Bool(1)
}

func (m *MockCatalogService) Status() (bool, string) {
	args := m.Called()
	return args.Bool(0), args.String(1)
}

func (m *MockCatalogService) Bootstrap(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCatalogService) Refresh(ctx context.Context) {
	m.Called(ctx)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock SuggestionService ---
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) LocalCurrencyCode(loc domain.DeviceLocale) string {
	args := m.Called(loc)
	return args.String(0)
}

func (m *MockSuggestionService) Suggested(ctx context.Context, deviceID string, loc domain.DeviceLocale) []domain.Currency {
	args := m.Called(ctx, deviceID, loc)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Currency)
}

func (m *MockSuggestionService) Sections(ctx context.Context, deviceID string, loc domain.DeviceLocale, query string) []domain.Section {
	args := m.Called(ctx, deviceID, loc, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Section)
}

var _ portssvc.SuggestionSvcFacade = (*MockSuggestionService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCatalog     *MockCatalogService
	mockSuggestions *MockSuggestionService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()

	suite.router = gin.New()
	suite.router.Use(middleware.DeviceIDMiddleware())

	suite.mockCatalog = new(MockCatalogService)
	suite.mockSuggestions = new(MockSuggestionService)

	cfg := &config.Config{RefreshRateLimit: "10-M"}
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCurrencyRoutes(v1, cfg, suite.mockCatalog, suite.mockSuggestions)
}

func testCatalog() []domain.Currency {
	return []domain.Currency{
		{Code: "EUR", Name: "Euro", Symbol: "€", Emoji: "🇪🇺", SearchKey: "euro eur €"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Emoji: "🇯🇵", SearchKey: "japanese yen jpy ¥"},
		{Code: "USD", Name: "US Dollar", Symbol: "$", Emoji: "🇺🇸", SearchKey: "us dollar usd $"},
	}
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	suite.mockCatalog.On("AllSupported", domain.DeviceLocale{}).Return(testCatalog()).Once()
	suite.mockCatalog.On("Status").Return(false, "").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CatalogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsLoading)
	suite.Empty(resp.Error)
	suite.Require().Len(resp.Currencies, 3)
	suite.Equal("EUR", resp.Currencies[0].Code)
	suite.Equal("US Dollar", resp.Currencies[2].Name)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_FiltersByQuery() {
	suite.mockCatalog.On("AllSupported", domain.DeviceLocale{}).Return(testCatalog()).Once()
	suite.mockCatalog.On("Status").Return(false, "").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies?q=dollar", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CatalogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Currencies, 1)
	suite.Equal("USD", resp.Currencies[0].Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_ReportsFetchError() {
	suite.mockCatalog.On("AllSupported", domain.DeviceLocale{}).Return(testCatalog()).Once()
	suite.mockCatalog.On("Status").Return(false, "fetch failed: network down").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CatalogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("fetch failed: network down", resp.Error)
	suite.Len(resp.Currencies, 3)
}

func (suite *CurrencyHandlerTestSuite) TestListSections_PassesDeviceAndQuery() {
	expectedLoc := domain.DeviceLocale{RegionCode: "TW", LanguageTag: "zh-TW"}
	sections := []domain.Section{
		{Title: "U", Items: []domain.Currency{{Code: "USD", Name: "US Dollar"}}},
	}
	suite.mockSuggestions.On("Sections", mock.Anything, "device-abc", expectedLoc, "dollar").
		Return(sections).Once()
	suite.mockCatalog.On("Status").Return(false, "").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/sections?q=dollar&region=TW&lang=zh-TW", nil)
	req.Header.Set("X-Device-ID", "device-abc")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SectionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Sections, 1)
	suite.Equal("U", resp.Sections[0].Title)
	suite.mockSuggestions.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListSuggested_UsesAcceptLanguageFallback() {
	expectedLoc := domain.DeviceLocale{LanguageTag: "zh-TW"}
	suite.mockSuggestions.On("Suggested", mock.Anything, "default", expectedLoc).
		Return([]domain.Currency{{Code: "TWD", Name: "New Taiwan Dollar"}}).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/suggested", nil)
	req.Header.Set("Accept-Language", "zh-TW,zh;q=0.9,en;q=0.8")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("TWD", resp[0].Code)
	suite.mockSuggestions.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetLocalCurrency() {
	expectedLoc := domain.DeviceLocale{RegionCode: "TW"}
	suite.mockSuggestions.On("LocalCurrencyCode", expectedLoc).Return("TWD").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/local?region=TW", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LocalCurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("TWD", resp.Code)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_Success() {
	cur := domain.Currency{Code: "USD", Name: "US Dollar", Symbol: "$", Emoji: "🇺🇸"}
	suite.mockCatalog.On("CurrencyByCode", "USD", domain.DeviceLocale{}).Return(cur, true).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Code)
	suite.Empty(resp.FormattedAmount)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_FormatsAmount() {
	cur := domain.Currency{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"}
	suite.mockCatalog.On("CurrencyByCode", "JPY", domain.DeviceLocale{}).Return(cur, true).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/JPY?amount=1234.5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1235", resp.FormattedAmount)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_InvalidAmount() {
	cur := domain.Currency{Code: "USD", Name: "US Dollar", Symbol: "$"}
	suite.mockCatalog.On("CurrencyByCode", "USD", domain.DeviceLocale{}).Return(cur, true).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/USD?amount=abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.mockCatalog.On("CurrencyByCode", "XXX", domain.DeviceLocale{}).
		Return(domain.Currency{}, false).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/XXX", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestRefreshCatalog() {
	suite.mockCatalog.On("Refresh", mock.Anything).Once()
	suite.mockCatalog.On("Status").Return(false, "").Once()
	suite.mockCatalog.On("AllSupported", domain.DeviceLocale{}).Return(testCatalog()).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CatalogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Currencies, 3)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
