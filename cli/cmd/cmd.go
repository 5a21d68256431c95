package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/nbp-rates/logging"
)

const (
	dateFormat   = "2006-01-02"
	envPrefix    = "NBP_RATES"
	defaultRange = 7
)

type (
	Config struct {
		Ctx    context.Context
		Stdout io.Writer
		Stderr io.Writer
		Now    func() time.Time
	}
)

func (c *Config) defaults() {
	if c.Ctx == nil {
		c.Ctx = context.Background()
	}

	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}

	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	if c.Now == nil {
		c.Now = time.Now
	}
}

func Execute(config *Config) error {
	return NewRootCommand(config).Execute()
}

func NewRootCommand(config *Config) *cobra.Command {
	config.defaults()

	v := viper.New()
	now := config.Now()

	rootCmd := &cobra.Command{
		Use:           "nbp-rates",
		Short:         "Historical NBP exchange rates as CSV or JSON",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v)
		},
	}

	rootCmd.SetOut(config.Stdout)
	rootCmd.SetErr(config.Stderr)

	persistent := rootCmd.PersistentFlags()
	persistent.String("config", "", "Path to YAML config file with storage settings")
	persistent.Int("verbose_level", 0, "Logging verbosity level: 0=Errors/Warnings, 1=+Info, 2=+Debug")
	persistent.String("api_url", "", "Base URL of the rate table A API")

	flags := rootCmd.Flags()
	flags.String("iso", "", "Currency ISO Code (required)")
	flags.String("date_from", now.AddDate(0, 0, -defaultRange).Format(dateFormat), "Start date in YYYY-mm-dd format")
	flags.String("date_to", now.Format(dateFormat), "End date in YYYY-mm-dd format")
	flags.String("output_file", "", "Path to output file (if not set, prints to console)")
	flags.String("output_format", "CSV", "Output format: CSV or JSON")
	flags.Bool("store", false, "Archive fetched rates in the configured storages")

	_ = v.BindPFlag("config", persistent.Lookup("config"))
	_ = v.BindPFlag("verbose_level", persistent.Lookup("verbose_level"))
	_ = v.BindPFlag("fetchers.nbp.url", persistent.Lookup("api_url"))

	for _, name := range []string{"iso", "date_from", "date_to", "output_file", "output_format", "store"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rootCmd.RunE = fetchCobraCommand(config, v)
	rootCmd.AddCommand(convert(config, v))

	return rootCmd
}

func readConfig(v *viper.Viper) error {
	configFile := v.GetString("config")

	if configFile == "" {
		return nil
	}

	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return err
	}

	v.SetConfigFile(absolutePath)

	return v.ReadInConfig()
}

func newLogger(config *Config, v *viper.Viper) (*logrus.Logger, error) {
	return logging.New(config.Stderr, v.GetInt("verbose_level"))
}
