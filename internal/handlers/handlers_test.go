package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/dto"
	"github.com/SscSPs/usd_totals/internal/handlers"
	"github.com/SscSPs/usd_totals/internal/middleware"
	"github.com/SscSPs/usd_totals/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateService) CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) ImportRates(ctx context.Context, r io.Reader) (int, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, string(body))
	return args.Int(0), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ImportTransactions(ctx context.Context, r io.Reader) (int, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, string(body))
	return args.Int(0), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock TotalsService ---
type MockTotalsService struct {
	mock.Mock
}

func (m *MockTotalsService) SKUTotal(ctx context.Context, sku string) (*domain.SKUTotal, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SKUTotal), args.Error(1)
}

func (m *MockTotalsService) ConversionPath(ctx context.Context, currency string) (domain.ConversionChain, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ConversionChain), args.Error(1)
}

func (m *MockTotalsService) ComputeTotal(ctx context.Context, rates []domain.Rate, txns []domain.Transaction, sku string) (*domain.SKUTotal, error) {
	args := m.Called(ctx, rates, txns, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SKUTotal), args.Error(1)
}

var _ portssvc.TotalsSvcFacade = (*MockTotalsService)(nil)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockRates  *MockRateService
	mockTxns   *MockTransactionService
	mockTotals *MockTotalsService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRates = new(MockRateService)
	suite.mockTxns = new(MockTransactionService)
	suite.mockTotals = new(MockTotalsService)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Rate:        suite.mockRates,
		Transaction: suite.mockTxns,
		Totals:      suite.mockTotals,
	})
}

func (suite *HandlersTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func rate(from, to, conversion string) domain.Rate {
	return domain.Rate{From: from, To: to, Conversion: decimal.RequireFromString(conversion)}
}

func sampleTotal() *domain.SKUTotal {
	aud := domain.Transaction{Store: "Yonkers", SKU: "DM1182", Amount: decimal.RequireFromString("19.68"), Currency: "AUD"}
	usd := domain.Transaction{Store: "Camden", SKU: "DM1182", Amount: decimal.RequireFromString("54.64"), Currency: "USD"}
	return &domain.SKUTotal{
		SKU: "DM1182",
		Lines: []domain.ConvertedLine{
			{Transaction: aud, USDAmount: decimal.RequireFromString("20.01"), ChainLength: 2},
			{Transaction: usd, USDAmount: usd.Amount},
		},
		Total: decimal.RequireFromString("74.65"),
	}
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.serve(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.serve(http.MethodGet, "/swagger/index.html", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreateRate_Success() {
	stored := rate("AUD", "CAD", "1.0079")
	stored.RateID = uuid.NewString()
	suite.mockRates.On("CreateRate", mock.Anything, mock.MatchedBy(func(req dto.CreateRateRequest) bool {
		return req.From == "AUD" && req.To == "CAD" && req.Conversion.Equal(decimal.RequireFromString("1.0079"))
	})).Return(&stored, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/rates", `{"from":"AUD","to":"CAD","conversion":"1.0079"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(stored.RateID, resp.RateID)
	suite.Equal("AUD", resp.From)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateRate_BadJSON() {
	w := suite.serve(http.MethodPost, "/api/v1/rates", `{"from":"AUD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRates.AssertNotCalled(suite.T(), "CreateRate", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateRate_ServiceValidation() {
	suite.mockRates.On("CreateRate", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("from and to currency codes cannot be the same")).Once()

	w := suite.serve(http.MethodPost, "/api/v1/rates", `{"from":"AUD","to":"AUD","conversion":"1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "cannot be the same")
}

func (suite *HandlersTestSuite) TestListRates_InternalErrorIsHidden() {
	suite.mockRates.On("ListRates", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

func (suite *HandlersTestSuite) TestImportRates() {
	doc := `<rates><rate><from>AUD</from><to>CAD</to><conversion>1.0079</conversion></rate></rates>`
	suite.mockRates.On("ImportRates", mock.Anything, doc).Return(1, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/rates/import", doc)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"imported":1}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestImportTransactions_InvalidNumeric() {
	csv := "store,sku,amount\nYonkers,DM1210,seventy USD\n"
	suite.mockTxns.On("ImportTransactions", mock.Anything, csv).Return(0, apperrors.ErrInvalidNumeric).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions/import", csv)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateTransaction() {
	stored := &domain.Transaction{TransactionID: uuid.NewString(), Store: "Yonkers", SKU: "DM1182", Amount: decimal.RequireFromString("19.68"), Currency: "AUD"}
	suite.mockTxns.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.SKU == "DM1182" && req.Currency == "AUD"
	})).Return(stored, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", `{"store":"Yonkers","sku":"DM1182","amount":"19.68","currency":"AUD"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), stored.TransactionID)
}

func (suite *HandlersTestSuite) TestListTransactions_BindsQuery() {
	expected := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}, NextToken: "abc"}
	suite.mockTxns.On("ListTransactions", mock.Anything, dto.ListTransactionsParams{SKU: "DM1182", Limit: 2}).Return(expected, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions?sku=DM1182&limit=2", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"transactions":[],"nextToken":"abc"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.serve(http.MethodGet, "/api/v1/transactions?limit=1000", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxns.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetSKUTotal() {
	suite.mockTotals.On("SKUTotal", mock.Anything, "DM1182").Return(sampleTotal(), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/skus/DM1182/total", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SKUTotalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("74.65", resp.Total)
	suite.Require().Len(resp.Lines, 2)
	suite.Equal("20.01", resp.Lines[0].USDAmount)
	suite.Equal("54.64", resp.Lines[1].USDAmount)
}

func (suite *HandlersTestSuite) TestGetSKUTotal_NoConversionPath() {
	err := &apperrors.ConversionError{Currency: "JPY", Err: apperrors.ErrNoConversionPath}
	suite.mockTotals.On("SKUTotal", mock.Anything, "DM1182").Return(nil, err).Once()

	w := suite.serve(http.MethodGet, "/api/v1/skus/DM1182/total", "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), "JPY")
}

func (suite *HandlersTestSuite) TestGetConversionPath() {
	chain := domain.ConversionChain{rate("AUD", "CAD", "1.0079"), rate("CAD", "USD", "1.0090")}
	suite.mockTotals.On("ConversionPath", mock.Anything, "AUD").Return(chain, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/conversions/AUD", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConversionPathResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"AUD", "CAD", "USD"}, resp.Path)
	suite.Len(resp.Rates, 2)
}

func (suite *HandlersTestSuite) TestGetConversionPath_Unbounded() {
	err := &apperrors.ConversionError{Currency: "A", Err: apperrors.ErrUnboundedPathSearch}
	suite.mockTotals.On("ConversionPath", mock.Anything, "A").Return(nil, err).Once()

	w := suite.serve(http.MethodGet, "/api/v1/conversions/A", "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestComputeTotal() {
	body := `{
		"sku": "DM1182",
		"rates": [{"from":"AUD","to":"CAD","conversion":"1.0079"},{"from":"CAD","to":"USD","conversion":"1.0090"}],
		"transactions": [
			{"store":"Yonkers","sku":"DM1182","amount":"19.68","currency":"AUD"},
			{"store":"Camden","sku":"DM1182","amount":"54.64","currency":"USD"}
		]
	}`
	suite.mockTotals.On("ComputeTotal", mock.Anything,
		mock.MatchedBy(func(rates []domain.Rate) bool { return len(rates) == 2 && rates[1].To == "USD" }),
		mock.MatchedBy(func(txns []domain.Transaction) bool { return len(txns) == 2 && txns[0].Currency == "AUD" }),
		"DM1182",
	).Return(sampleTotal(), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/totals", body)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"total":"74.65"`)
	suite.mockTotals.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestComputeTotal_MissingSKU() {
	w := suite.serve(http.MethodPost, "/api/v1/totals", `{"rates":[],"transactions":[]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
