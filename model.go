package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Rate struct {
		ISO          string
		CurrencyName string
		Rate         decimal.Decimal
		Date         string
	}

	RateWithID struct {
		Rate
		ID        interface{}
		CreatedAt time.Time
	}
)
