package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	currency "github.com/malusev998/nbp-rates"
)

type (
	MockFetcher struct {
		mock.Mock
	}

	MockStorage struct {
		mock.Mock
		name string
	}

	mockTimeoutStorage struct {
		MockStorage
	}
)

func (m *MockFetcher) Fetch(ctx context.Context, iso, dateFrom, dateTo string) ([]currency.Rate, error) {
	args := m.Called(iso, dateFrom, dateTo)
	return1 := args.Get(0)

	if return1 == nil {
		return nil, args.Error(1)
	}

	return return1.([]currency.Rate), args.Error(1)
}

func (m *MockStorage) Store(rates []currency.Rate) ([]currency.RateWithID, error) {
	args := m.Called(rates)
	return1 := args.Get(0)

	if return1 == nil {
		return nil, args.Error(1)
	}

	return return1.([]currency.RateWithID), args.Error(1)
}

func (m *MockStorage) Get(iso, dateFrom, dateTo string, page, perPage int64) ([]currency.RateWithID, error) {
	args := m.Called(iso, dateFrom, dateTo, page, perPage)
	return1 := args.Get(0)

	if return1 == nil {
		return nil, args.Error(1)
	}

	return return1.([]currency.RateWithID), args.Error(1)
}

func (m *MockStorage) GetStorageProviderName() string {
	if m.name == "" {
		return "MockStorage"
	}

	return m.name
}

func (m *MockStorage) Migrate() error {
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) Drop() error {
	return nil
}

func (m *mockTimeoutStorage) Get(iso, dateFrom, dateTo string, page, perPage int64) ([]currency.RateWithID, error) {
	time.Sleep(time.Duration(2) * time.Second)
	return nil, nil
}
