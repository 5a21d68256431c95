package emitters

import (
	"encoding/csv"
	"io"

	currency "github.com/malusev998/nbp-rates"
)

// CSVEmitter writes a header row followed by one row per rate. An empty
// slice produces the header only.
type CSVEmitter struct{}

func (CSVEmitter) Emit(w io.Writer, rates []currency.Rate) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Fields[:]); err != nil {
		return err
	}

	for _, r := range rates {
		if err := writer.Write([]string{r.ISO, r.CurrencyName, formatRate(r.Rate), r.Date}); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}
