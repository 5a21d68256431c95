package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	currency "github.com/malusev998/nbp-rates"
	"github.com/malusev998/nbp-rates/emitters"
	"github.com/malusev998/nbp-rates/fetchers"
	"github.com/malusev998/nbp-rates/services"
)

var ErrISORequired = errors.New(`required flag(s) "iso" not set`)

func logStored(logger logrus.FieldLogger, saved map[string][]currency.RateWithID) {
	for storage, rates := range saved {
		for i, rate := range rates {
			logger.Debugf("%d\tRate %s %s saved to %s: %s", i, rate.ISO, rate.Date, storage, rate.Rate.Rate)
		}
	}
}

func fetchCobraCommand(config *Config, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(config, v)
		if err != nil {
			return err
		}

		iso := v.GetString("iso")
		if iso == "" {
			return ErrISORequired
		}

		format, err := currency.ConvertToFormatFromString(v.GetString("output_format"))
		if err != nil {
			return err
		}

		emitter, err := emitters.NewEmitter(format)
		if err != nil {
			return err
		}

		var storages []currency.Storage

		if v.GetBool("store") {
			storages, err = createStorages(config.Ctx, v)
			if err != nil {
				return err
			}

			defer closeStorages(logger, storages)
		}

		service := services.Service{
			Fetcher: fetchers.NewRateFetcher(currency.NBPProvider, fetchers.NBPConfig{
				BaseConfig: fetchers.BaseConfig{
					URL:    v.GetString("fetchers.nbp.url"),
					Logger: logger,
				},
			}),
			Storage: storages,
		}

		dateFrom, dateTo := v.GetString("date_from"), v.GetString("date_to")
		logger.WithFields(logrus.Fields{
			"iso":       iso,
			"date_from": dateFrom,
			"date_to":   dateTo,
			"format":    format,
		}).Info("fetching rates")

		saved, rates, err := service.Fetch(config.Ctx, iso, dateFrom, dateTo)
		if err != nil {
			return err
		}

		logStored(logger, saved)

		if len(rates) == 0 {
			logger.Warnf("no rates published for %s between %s and %s", iso, dateFrom, dateTo)
		}

		if outputFile := v.GetString("output_file"); outputFile != "" {
			if err := emitters.ToFile(outputFile, emitter, rates); err != nil {
				return err
			}

			logger.Infof("%d rates written to %s", len(rates), outputFile)

			return nil
		}

		return emitters.ToConsole(cmd.OutOrStdout(), emitter, rates)
	}
}

func closeStorages(logger logrus.FieldLogger, storages []currency.Storage) {
	for _, st := range storages {
		if err := st.Close(); err != nil {
			logger.WithError(err).Warnf("closing %s storage", st.GetStorageProviderName())
			continue
		}

		logger.Debugf("disconnected from %s", st.GetStorageProviderName())
	}
}

func requireStorages(storages []currency.Storage) error {
	if len(storages) == 0 {
		return fmt.Errorf("%w: set \"storage\" in the config file", services.ErrNoStorageProvided)
	}

	return nil
}
