package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/nbp-rates/services"
)

func convert(config *Config, v *viper.Viper) *cobra.Command {
	var iso, amount, date string

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount into PLN using archived rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(config, v)
			if err != nil {
				return err
			}

			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			storages, err := createStorages(config.Ctx, v)
			if err != nil {
				return err
			}

			defer closeStorages(logger, storages)

			if err := requireStorages(storages); err != nil {
				return err
			}

			conversion := services.ConversionService{
				Ctx:      config.Ctx,
				Storages: storages,
			}

			converted, err := conversion.Convert(iso, value, date)
			if err != nil {
				return err
			}

			logger.WithField("iso", iso).Debugf("converted %s on %s", value, date)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s PLN\n", converted.StringFixed(2))

			return err
		},
	}

	convertCmd.Flags().StringVar(&iso, "iso", "", "Currency ISO Code")
	convertCmd.Flags().StringVar(&amount, "amount", "", "Amount in the foreign currency")
	convertCmd.Flags().StringVar(&date, "date", config.Now().Format(dateFormat), "Effective date of the rate")
	_ = convertCmd.MarkFlagRequired("iso")
	_ = convertCmd.MarkFlagRequired("amount")

	return convertCmd
}
