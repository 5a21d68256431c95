package currency

import (
	"fmt"
	"strings"
)

type (
	Provider string
	Format   string
)

const (
	NBPProvider   Provider = "NBP"
	EmptyProvider Provider = ""

	CSV  Format = "CSV"
	JSON Format = "JSON"
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "nbp":
		return NBPProvider, nil
	}

	return EmptyProvider, fmt.Errorf("value %s is not valid Provider", str)
}

func ConvertToFormatFromString(str string) (Format, error) {
	switch strings.ToLower(str) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	}

	return "", fmt.Errorf("value %s is not valid Format", str)
}

func (p *Provider) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	provider, err := ConvertToProviderFromString(str)

	if err != nil {
		return err
	}

	*p = provider

	return nil
}

func (p Provider) MarshalYAML() (interface{}, error) {
	return string(p), nil
}

func (f Format) String() string {
	return string(f)
}
