// Package emitters writes fetched rates as CSV or newline-delimited JSON.
package emitters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	currency "github.com/malusev998/nbp-rates"
)

var (
	ErrIO            = errors.New("cannot write rates")
	ErrUnknownFormat = errors.New("unknown output format")

	// Fields is the column order shared by both formats.
	Fields = [...]string{"ISO", "Currency Name", "Rate", "Date"}
)

func NewEmitter(format currency.Format) (currency.Emitter, error) {
	switch format {
	case currency.CSV:
		return CSVEmitter{}, nil
	case currency.JSON:
		return JSONEmitter{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ToFile truncates path and writes the rates into it. The file is closed on
// every path.
func ToFile(path string, emitter currency.Emitter, rates []currency.Rate) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrIO, closeErr)
		}
	}()

	return ToConsole(f, emitter, rates)
}

func ToConsole(w io.Writer, emitter currency.Emitter, rates []currency.Rate) error {
	if err := emitter.Emit(w, rates); err != nil {
		if errors.Is(err, ErrIO) {
			return err
		}

		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// formatRate renders the rate the way a float is usually printed: no
// trailing zeros, but always with a fractional part.
func formatRate(rate decimal.Decimal) string {
	if rate.Equal(rate.Truncate(0)) {
		return rate.StringFixed(1)
	}

	return rate.String()
}
