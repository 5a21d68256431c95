package emitters

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"

	currency "github.com/malusev998/nbp-rates"
)

// JSONEmitter writes one JSON object per line:
//
//	{"ISO": "USD", "Currency Name": "US Dollar", "Rate": 3.95, "Date": "2024-01-02"}
//
// Non-ASCII characters are written as \u escapes.
type JSONEmitter struct{}

func (JSONEmitter) Emit(w io.Writer, rates []currency.Rate) error {
	buf := bufio.NewWriter(w)

	for _, r := range rates {
		values := [...]string{
			quote(r.ISO),
			quote(r.CurrencyName),
			formatRate(r.Rate),
			quote(r.Date),
		}

		if _, err := buf.WriteString("{"); err != nil {
			return err
		}

		for i, value := range values {
			if i > 0 {
				_, _ = buf.WriteString(", ")
			}

			_, _ = fmt.Fprintf(buf, "%s: %s", quote(Fields[i]), value)
		}

		if _, err := buf.WriteString("}\n"); err != nil {
			return err
		}
	}

	return buf.Flush()
}

func quote(s string) string {
	var b bytes.Buffer

	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(s)

	encoded := bytes.TrimRight(b.Bytes(), "\n")
	out := make([]byte, 0, len(encoded))

	for _, r := range string(encoded) {
		if r < 0x80 {
			out = append(out, byte(r))
			continue
		}

		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			out = append(out, fmt.Sprintf(`\u%04x\u%04x`, r1, r2)...)
			continue
		}

		out = append(out, fmt.Sprintf(`\u%04x`, r)...)
	}

	return string(out)
}
