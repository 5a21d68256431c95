package currency

import (
	"context"

	"github.com/shopspring/decimal"
)

type (
	Service interface {
		Fetch(ctx context.Context, iso, dateFrom, dateTo string) (map[string][]RateWithID, []Rate, error)
	}

	Conversion interface {
		Convert(iso string, amount decimal.Decimal, date string) (decimal.Decimal, error)
	}
)
