package fetchers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	currency "github.com/malusev998/nbp-rates"
)

type (
	BaseConfig struct {
		URL    string
		Client *http.Client
		Logger logrus.FieldLogger
	}
	NBPConfig struct {
		BaseConfig
	}
)

func NewRateFetcher(provider currency.Provider, config interface{}) currency.Fetcher {
	switch provider {
	case currency.NBPProvider:
		c, _ := config.(NBPConfig)

		return NBPFetcher{
			URL:    c.URL,
			Client: c.Client,
			Logger: c.Logger,
		}
	}

	return nil
}
