package currency_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	currency "github.com/malusev998/nbp-rates"
)

func TestConvertToProviderFromString(t *testing.T) {
	assert := require.New(t)
	values := []struct {
		value    string
		expected interface{}
		err      error
	}{
		{"nbp", currency.NBPProvider, nil},
		{"NBP", currency.NBPProvider, nil},
		{"", currency.EmptyProvider, errors.New("value  is not valid Provider")},
		{"not-valid-value", currency.EmptyProvider, errors.New("value not-valid-value is not valid Provider")},
	}

	for _, value := range values {
		provider, err := currency.ConvertToProviderFromString(value.value)
		assert.Equal(value.expected, provider)
		assert.Equal(value.err, err)
	}
}

func TestConvertToFormatFromString(t *testing.T) {
	assert := require.New(t)
	values := []struct {
		value    string
		expected currency.Format
		err      error
	}{
		{"CSV", currency.CSV, nil},
		{"json", currency.JSON, nil},
		{"Json", currency.JSON, nil},
		{"xml", currency.Format(""), errors.New("value xml is not valid Format")},
	}

	for _, value := range values {
		format, err := currency.ConvertToFormatFromString(value.value)
		assert.Equal(value.expected, format)
		assert.Equal(value.err, err)
	}
}

func TestCurrencyName(t *testing.T) {
	assert := require.New(t)

	assert.Equal("US Dollar", currency.CurrencyName("USD", "dolar amerykański"))
	assert.Equal("Euro", currency.CurrencyName("EUR", ""))
	assert.Equal("rand (Republika Południowej Afryki)", currency.CurrencyName("ZAR", "rand (Republika Południowej Afryki)"))
	assert.Equal("", currency.CurrencyName("usd", ""))
}
