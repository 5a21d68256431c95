package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	currency "github.com/malusev998/nbp-rates"
)

const conversionPrecision = 4

var (
	ErrRateNotFound      = errors.New("rate for the currency is not found in storage")
	ErrNoStorageProvided = errors.New("no storage provided")
	ErrTimeRanOut        = errors.New("time has run out")
)

type (
	// ConversionService converts an amount of a foreign currency into PLN
	// using the mid rate archived for that day.
	ConversionService struct {
		Ctx      context.Context
		Storages []currency.Storage
	}

	fetchRates struct {
		rates []currency.RateWithID
		error error
	}
)

func (c ConversionService) Convert(iso string, amount decimal.Decimal, date string) (decimal.Decimal, error) {
	if len(c.Storages) == 0 {
		return decimal.Zero, ErrNoStorageProvided
	}

	// Optimization when there is only one storage provider
	if len(c.Storages) == 1 {
		rates, err := c.Storages[0].Get(iso, date, date, 1, 1)

		if err != nil {
			return decimal.Zero, err
		}

		return convert(amount, rates)
	}

	ctx := c.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	// First storage to answer wins; the buffer lets the rest finish.
	ratesChannel := make(chan fetchRates, len(c.Storages))

	for _, storage := range c.Storages {
		go func(storage currency.Storage) {
			rates, err := storage.Get(iso, date, date, 1, 1)
			ratesChannel <- fetchRates{
				rates: rates,
				error: err,
			}
		}(storage)
	}

	select {
	case <-ctx.Done():
		return decimal.Zero, ErrTimeRanOut

	case data := <-ratesChannel:
		if data.error != nil {
			return decimal.Zero, data.error
		}

		return convert(amount, data.rates)
	}
}

func convert(amount decimal.Decimal, rates []currency.RateWithID) (decimal.Decimal, error) {
	if len(rates) == 0 {
		return decimal.Zero, ErrRateNotFound
	}

	return amount.Mul(rates[0].Rate.Rate).Round(conversionPrecision), nil
}
