package fileloader

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// rateElement mirrors <rate><from/><to/><conversion/></rate>.
type rateElement struct {
	From       string `xml:"from" validate:"required"`
	To         string `xml:"to" validate:"required"`
	Conversion string `xml:"conversion" validate:"required"`
}

// LoadRates reads every <rate> element found anywhere in the document, in document order.
func (l *Loader) LoadRates(r io.Reader) ([]domain.Rate, error) {
	decoder := xml.NewDecoder(r)
	var rates []domain.Rate
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError("rates XML", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "rate" {
			continue
		}

		var el rateElement
		if err := decoder.DecodeElement(&el, &start); err != nil {
			return nil, readError(fmt.Sprintf("rate %d", len(rates)+1), err)
		}
		rate, err := l.toRate(len(rates)+1, el)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// LoadRatesFile opens path and reads it with LoadRates.
func (l *Loader) LoadRatesFile(path string) ([]domain.Rate, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.LoadRates(f)
}

func (l *Loader) toRate(n int, el rateElement) (domain.Rate, error) {
	el.From = strings.TrimSpace(el.From)
	el.To = strings.TrimSpace(el.To)
	el.Conversion = strings.TrimSpace(el.Conversion)
	if err := l.validateRecord("rate", n, el); err != nil {
		return domain.Rate{}, err
	}

	conversion, err := decimal.NewFromString(el.Conversion)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("%w: rate %d conversion %q", apperrors.ErrInvalidNumeric, n, el.Conversion)
	}

	return domain.Rate{From: el.From, To: el.To, Conversion: conversion}, nil
}
