package currency

var currencyNames = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"CHF": "Swiss Franc",
	"PLN": "Polish Zloty",
	"NOK": "Norwegian Krone",
	"SEK": "Swedish Krona",
	"DKK": "Danish Krone",
	"ISK": "Icelandic Krona",
	"CZK": "Czech Koruna",
	"HUF": "Hungarian Forint",
	"UAH": "Ukrainian Hryvnia",
	"RUB": "Russian Ruble",
	"BYN": "Belarusian Ruble",
	"JPY": "Japanese Yen",
	"CNY": "Chinese Yuan Renminbi",
	"KRW": "South Korean Won",
	"TWD": "New Taiwan Dollar",
	"INR": "Indian Rupee",
	"SGD": "Singapore Dollar",
	"THB": "Thai Baht",
	"MYR": "Malaysian Ringgit",
	"IDR": "Indonesian Rupiah",
	"VND": "Vietnamese Dong",
}

// CurrencyName returns the English name for the ISO code, or fallback
// when the code is not in the table.
func CurrencyName(code, fallback string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}

	return fallback
}
