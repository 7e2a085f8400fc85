package dto

import (
	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/SscSPs/usd_totals/internal/utils"
	"github.com/shopspring/decimal"
)

// RateInput is one rate edge supplied inline with a totals request.
type RateInput struct {
	From       string          `json:"from" binding:"required"`
	To         string          `json:"to" binding:"required"`
	Conversion decimal.Decimal `json:"conversion"`
}

// TransactionInput is one sale supplied inline with a totals request.
type TransactionInput struct {
	Store    string          `json:"store"`
	SKU      string          `json:"sku" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"required"`
}

// ComputeTotalRequest carries everything needed to total a SKU without touching storage.
type ComputeTotalRequest struct {
	SKU          string             `json:"sku" binding:"required"`
	Rates        []RateInput        `json:"rates" binding:"dive"`
	Transactions []TransactionInput `json:"transactions" binding:"dive"`
}

// ToDomainRates converts the inline rates, keeping their order.
func (r ComputeTotalRequest) ToDomainRates() []domain.Rate {
	rates := make([]domain.Rate, len(r.Rates))
	for i, in := range r.Rates {
		rates[i] = domain.Rate{From: in.From, To: in.To, Conversion: in.Conversion}
	}
	return rates
}

// ToDomainTransactions converts the inline transactions.
func (r ComputeTotalRequest) ToDomainTransactions() []domain.Transaction {
	txns := make([]domain.Transaction, len(r.Transactions))
	for i, in := range r.Transactions {
		txns[i] = domain.Transaction{Store: in.Store, SKU: in.SKU, Amount: in.Amount, Currency: in.Currency}
	}
	return txns
}

// ConvertedLineResponse is one transaction of a total with its USD value.
type ConvertedLineResponse struct {
	Store       string `json:"store"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	USDAmount   string `json:"usdAmount"`
	ChainLength int    `json:"chainLength"`
}

// SKUTotalResponse is the USD total for a SKU, formatted with two fractional digits.
type SKUTotalResponse struct {
	SKU   string                  `json:"sku"`
	Total string                  `json:"total"`
	Lines []ConvertedLineResponse `json:"lines"`
}

// ToSKUTotalResponse converts a domain.SKUTotal to its DTO.
func ToSKUTotalResponse(total *domain.SKUTotal) SKUTotalResponse {
	lines := make([]ConvertedLineResponse, len(total.Lines))
	for i, line := range total.Lines {
		lines[i] = ConvertedLineResponse{
			Store:       line.Transaction.Store,
			Amount:      line.Transaction.Amount.String(),
			Currency:    line.Transaction.Currency,
			USDAmount:   utils.FormatUSD(line.USDAmount),
			ChainLength: line.ChainLength,
		}
	}
	return SKUTotalResponse{
		SKU:   total.SKU,
		Total: utils.FormatUSD(total.Total),
		Lines: lines,
	}
}

// ConversionPathResponse describes how a currency reaches USD.
type ConversionPathResponse struct {
	Currency string         `json:"currency"`
	Path     []string       `json:"path"`
	Rates    []RateResponse `json:"rates"`
}

// ToConversionPathResponse converts a chain to its DTO.
func ToConversionPathResponse(currency string, chain domain.ConversionChain) ConversionPathResponse {
	path := chain.Currencies()
	if path == nil {
		path = []string{currency}
	}
	return ConversionPathResponse{
		Currency: currency,
		Path:     path,
		Rates:    ToListRateResponse(chain),
	}
}
