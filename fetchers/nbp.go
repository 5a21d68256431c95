package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	currency "github.com/malusev998/nbp-rates"
)

const maxErrorBody = 256

type NBPFetcher struct {
	URL    string
	Client *http.Client
	Logger logrus.FieldLogger
}

func (n NBPFetcher) requestURL(iso, dateFrom, dateTo string) string {
	base := n.URL

	if base == "" {
		base = NBPTableAURL
	}

	return fmt.Sprintf(
		"%s/%s/%s/%s/",
		strings.TrimRight(base, "/"),
		url.PathEscape(iso),
		url.PathEscape(dateFrom),
		url.PathEscape(dateTo),
	)
}

func (n NBPFetcher) handleHTTPStatusCodeError(res *http.Response, body []byte) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(body))

	if len(message) > maxErrorBody {
		message = message[:maxErrorBody]
	}

	return fmt.Errorf("%w: status %d: %s", ErrNetwork, res.StatusCode, message)
}

func (n NBPFetcher) Fetch(ctx context.Context, iso, dateFrom, dateTo string) ([]currency.Rate, error) {
	client := n.Client

	if client == nil {
		client = &http.Client{}
	}

	logger := n.Logger

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if ctx == nil {
		ctx = context.Background()
	}

	u := n.requestURL(iso, dateFrom, dateTo)
	logger.WithField("url", u).Debug("requesting rate table")

	req, err := getData(ctx, u)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}

	if err := n.handleHTTPStatusCodeError(res, body); err != nil {
		return nil, err
	}

	var data nbpResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	rates, err := toRates(data)

	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"iso":   data.Code,
		"rates": len(rates),
	}).Info("rate table fetched")

	return rates, nil
}

func toRates(data nbpResponse) ([]currency.Rate, error) {
	if data.Code == "" {
		return nil, fmt.Errorf("%w: missing code", ErrParse)
	}

	if data.Rates == nil {
		return nil, fmt.Errorf("%w: missing rates", ErrParse)
	}

	name := currency.CurrencyName(data.Code, data.Currency)
	rates := make([]currency.Rate, 0, len(data.Rates))

	for i, r := range data.Rates {
		if r.Mid == nil || r.EffectiveDate == "" {
			return nil, fmt.Errorf("%w: rate %d is missing mid or effectiveDate", ErrParse, i)
		}

		rates = append(rates, currency.Rate{
			ISO:          data.Code,
			CurrencyName: name,
			Rate:         *r.Mid,
			Date:         r.EffectiveDate,
		})
	}

	return rates, nil
}
