package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/usd_totals/internal/adapters/fileloader"
	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/core/services"
	"github.com/SscSPs/usd_totals/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo, fileloader.NewLoader())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{Store: "Yonkers", SKU: "DM1182", Amount: decimal.RequireFromString("19.68"), Currency: "AUD"}

	suite.mockRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 && txns[0].SKU == "DM1182" && txns[0].TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Yonkers", txn.Store)
	suite.Equal("AUD", txn.Currency)
	suite.True(req.Amount.Equal(txn.Amount))
	suite.False(txn.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTransactions", ctx, mock.Anything).Return(assert.AnError).Once()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{SKU: "X", Currency: "USD"})

	suite.Nil(txn)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	ctx := context.Background()
	txns := sampleDM1182()
	suite.mockRepo.On("ListTransactions", ctx, "DM1182", 100, "").Return(txns, "next", nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{SKU: "DM1182"})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 3)
	suite.Equal("next", resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesPaging() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx, "", 2, "tok").Return([]domain.Transaction{}, "", nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 2, NextToken: "tok"})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Empty(resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx, "", 100, "!!").Return(nil, "", apperrors.NewValidationError("invalid next token")).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{NextToken: "!!"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestImportTransactions() {
	ctx := context.Background()
	csv := "store,sku,amount\nYonkers,DM1210,70.00 USD\nYonkers,DM1182,19.68 AUD\n"

	suite.mockRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 && txns[0].SKU == "DM1210" && txns[1].Currency == "AUD" &&
			txns[0].CreatedAt.Before(txns[1].CreatedAt)
	})).Return(nil).Once()

	n, err := suite.service.ImportTransactions(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(2, n)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestImportTransactions_BadAmount() {
	csv := "store,sku,amount\nYonkers,DM1210,seventy USD\n"

	n, err := suite.service.ImportTransactions(context.Background(), strings.NewReader(csv))

	suite.Zero(n)
	suite.ErrorIs(err, apperrors.ErrInvalidNumeric)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestImportTransactions_HeaderOnly() {
	n, err := suite.service.ImportTransactions(context.Background(), strings.NewReader("store,sku,amount\n"))

	suite.Zero(n)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
