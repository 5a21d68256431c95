package currency

import "io"

type Storage interface {
	io.Closer
	Store([]Rate) ([]RateWithID, error)
	Get(iso, dateFrom, dateTo string, page, perPage int64) ([]RateWithID, error)
	Migrate() error
	Drop() error
	GetStorageProviderName() string
}
