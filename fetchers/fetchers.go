package fetchers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

const NBPTableAURL = "https://api.nbp.pl/api/exchangerates/rates/a"

type (
	nbpRate struct {
		No            string           `json:"no"`
		Mid           *decimal.Decimal `json:"mid"`
		EffectiveDate string           `json:"effectiveDate"`
	}

	nbpResponse struct {
		Table    string    `json:"table"`
		Code     string    `json:"code"`
		Currency string    `json:"currency"`
		Rates    []nbpRate `json:"rates"`
	}
)

var (
	ErrNetwork = errors.New("rate table request failed")
	ErrParse   = errors.New("unexpected rate table response")
)

func getData(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	return req, nil
}
