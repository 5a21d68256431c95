package services

import (
	"context"
	"sync"

	currency "github.com/malusev998/nbp-rates"
)

type Service struct {
	Fetcher currency.Fetcher
	Storage []currency.Storage
}

func saveToStorage(
	wg *sync.WaitGroup,
	rates []currency.Rate,
	data map[string][]currency.RateWithID,
	storage currency.Storage,
	errorChannel chan<- error,
	mutex sync.Locker,
) {
	defer wg.Done()
	r, err := storage.Store(rates)

	if err != nil {
		errorChannel <- err
		return
	}

	mutex.Lock()
	data[storage.GetStorageProviderName()] = r
	mutex.Unlock()
}

// Fetch downloads the rates once and archives them in every configured
// storage. The fetched rates are returned in upstream order.
func (f Service) Fetch(ctx context.Context, iso, dateFrom, dateTo string) (map[string][]currency.RateWithID, []currency.Rate, error) {
	var wg sync.WaitGroup
	mutex := &sync.Mutex{}

	fetchedRates, err := f.Fetcher.Fetch(ctx, iso, dateFrom, dateTo)
	if err != nil {
		return nil, nil, err
	}

	data := make(map[string][]currency.RateWithID, len(f.Storage))

	if len(f.Storage) == 0 {
		return data, fetchedRates, nil
	}

	errorChannel := make(chan error, len(f.Storage))

	wg.Add(len(f.Storage))
	for _, storage := range f.Storage {
		go saveToStorage(&wg, fetchedRates, data, storage, errorChannel, mutex)
	}

	wg.Wait()
	close(errorChannel)

	if err, more := <-errorChannel; more {
		return nil, nil, err
	}

	return data, fetchedRates, nil
}
