package cmd

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/nbp-rates/emitters"
	"github.com/malusev998/nbp-rates/fetchers"
	"github.com/malusev998/nbp-rates/services"
)

const usdResponse = `{"table":"A","currency":"dolar amerykański","code":"USD","rates":[{"no":"001/A/NBP/2024","effectiveDate":"2024-01-02","mid":3.95}]}`

type httpMock struct {
	status int
	body   string
	paths  []string
}

func (h *httpMock) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.paths = append(h.paths, request.URL.Path)
	writer.WriteHeader(h.status)
	_, _ = writer.Write([]byte(h.body))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	command := NewRootCommand(&Config{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Now: func() time.Time {
			return time.Date(2024, time.January, 10, 15, 4, 5, 0, time.UTC)
		},
	})
	command.SetArgs(args)

	err := command.Execute()

	return stdout.String(), stderr.String(), err
}

func TestFetchCommand(t *testing.T) {
	t.Parallel()

	t.Run("CSV to console", func(t *testing.T) {
		asserts := require.New(t)
		handler := &httpMock{status: http.StatusOK, body: usdResponse}
		server := httptest.NewServer(handler)
		defer server.Close()

		stdout, _, err := run(t, "--iso", "USD", "--date_from", "2024-01-02", "--date_to", "2024-01-02", "--api_url", server.URL)

		asserts.Nil(err)
		asserts.Equal("ISO,Currency Name,Rate,Date\nUSD,US Dollar,3.95,2024-01-02\n", stdout)
		asserts.Equal([]string{"/USD/2024-01-02/2024-01-02/"}, handler.paths)
	})

	t.Run("JSON to console", func(t *testing.T) {
		asserts := require.New(t)
		server := httptest.NewServer(&httpMock{status: http.StatusOK, body: usdResponse})
		defer server.Close()

		stdout, _, err := run(t, "--iso", "USD", "--date_from", "2024-01-02", "--date_to", "2024-01-02",
			"--output_format", "JSON", "--api_url", server.URL)

		asserts.Nil(err)
		asserts.Equal("{\"ISO\": \"USD\", \"Currency Name\": \"US Dollar\", \"Rate\": 3.95, \"Date\": \"2024-01-02\"}\n", stdout)
	})

	t.Run("Default date range", func(t *testing.T) {
		asserts := require.New(t)
		handler := &httpMock{status: http.StatusOK, body: `{"code":"EUR","currency":"euro","rates":[]}`}
		server := httptest.NewServer(handler)
		defer server.Close()

		stdout, _, err := run(t, "--iso", "EUR", "--api_url", server.URL)

		asserts.Nil(err)
		asserts.Equal("ISO,Currency Name,Rate,Date\n", stdout)
		asserts.Equal([]string{"/EUR/2024-01-03/2024-01-10/"}, handler.paths)
	})

	t.Run("Output file", func(t *testing.T) {
		asserts := require.New(t)
		server := httptest.NewServer(&httpMock{status: http.StatusOK, body: usdResponse})
		defer server.Close()

		path := filepath.Join(t.TempDir(), "usd.json")
		stdout, stderr, err := run(t, "--iso", "USD", "--output_file", path, "--output_format", "json",
			"--verbose_level", "1", "--api_url", server.URL)

		asserts.Nil(err)
		asserts.Empty(stdout)
		asserts.Contains(stderr, "1 rates written to")

		content, err := ioutil.ReadFile(path)
		asserts.Nil(err)
		asserts.Equal("{\"ISO\": \"USD\", \"Currency Name\": \"US Dollar\", \"Rate\": 3.95, \"Date\": \"2024-01-02\"}\n", string(content))
	})
}

func TestFetchCommand_Errors(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(&httpMock{status: http.StatusNotFound, body: "404 NotFound - Not Found - Brak danych"})
	defer server.Close()

	t.Run("Missing ISO", func(t *testing.T) {
		_, _, err := run(t, "--api_url", server.URL)
		require.True(t, errors.Is(err, ErrISORequired))
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, _, err := run(t, "--iso", "USD", "--output_format", "XML", "--api_url", server.URL)
		require.EqualError(t, err, "value XML is not valid Format")
	})

	t.Run("Invalid verbose level", func(t *testing.T) {
		_, _, err := run(t, "--iso", "USD", "--verbose_level", "5", "--api_url", server.URL)
		require.EqualError(t, err, "invalid verbose level: 5")
	})

	t.Run("Upstream failure", func(t *testing.T) {
		stdout, _, err := run(t, "--iso", "USD", "--api_url", server.URL)
		require.True(t, errors.Is(err, fetchers.ErrNetwork))
		require.Empty(t, stdout)
	})

	t.Run("Unwritable output", func(t *testing.T) {
		ok := httptest.NewServer(&httpMock{status: http.StatusOK, body: usdResponse})
		defer ok.Close()

		_, _, err := run(t, "--iso", "USD", "--output_file", filepath.Join(t.TempDir(), "missing", "out.csv"), "--api_url", ok.URL)
		require.True(t, errors.Is(err, emitters.ErrIO))
	})

	t.Run("Unknown storage", func(t *testing.T) {
		config := filepath.Join(t.TempDir(), "config.yml")
		require.Nil(t, ioutil.WriteFile(config, []byte("storage:\n  - redis\n"), 0o644))

		_, _, err := run(t, "--iso", "USD", "--store", "--config", config, "--api_url", server.URL)
		require.EqualError(t, err, "value redis is not valid Provider")
	})

	t.Run("Missing config file", func(t *testing.T) {
		_, _, err := run(t, "--iso", "USD", "--config", filepath.Join(t.TempDir(), "nope.yml"))
		require.NotNil(t, err)
	})
}

func TestConvertCommand(t *testing.T) {
	t.Parallel()

	t.Run("Without storage", func(t *testing.T) {
		_, _, err := run(t, "convert", "--iso", "EUR", "--amount", "100")
		require.True(t, errors.Is(err, services.ErrNoStorageProvided))
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, _, err := run(t, "convert", "--iso", "EUR", "--amount", "ten")
		require.NotNil(t, err)
		require.Contains(t, err.Error(), `invalid amount "ten"`)
	})

	t.Run("Missing amount", func(t *testing.T) {
		_, _, err := run(t, "convert", "--iso", "EUR")
		require.NotNil(t, err)
	})
}

func TestGetMysqlDSN(t *testing.T) {
	dsn := getMysqlDSN(map[string]string{
		"user":     "currency",
		"password": "secret",
		"addr":     "localhost:3306",
		"db":       "currencydb",
	})

	require.Contains(t, dsn, "currency:secret@tcp(localhost:3306)/currencydb")
	require.Contains(t, dsn, "parseTime=true")
}
