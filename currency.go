package currency

import (
	"context"
	"io"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, iso, dateFrom, dateTo string) ([]Rate, error)
	}

	Emitter interface {
		Emit(w io.Writer, rates []Rate) error
	}
)
