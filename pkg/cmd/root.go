package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/numbeo/numbeo-prices/pkg/numbeo"
)

var RootCmd = &cobra.Command{
	Use:           RootCmdName,
	Short:         RootCmdShort,
	Long:          RootCmdLong,
	Example:       RootCmdExample,
	RunE:          rootCmdFunc(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().String("city", "", `City name (e.g. "San Francisco, CA")`)
	RootCmd.Flags().String("country", "", `Country name (e.g. "United States")`)
	RootCmd.Flags().String("api-key", "", "Numbeo API key (or set "+EnvAPIKey+")")
	RootCmd.MarkFlagRequired("city")
	RootCmd.MarkFlagRequired("country")

	viper.BindPFlags(RootCmd.Flags())
	viper.BindEnv("api-key", EnvAPIKey)
}

func rootCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		city := viper.GetString("city")
		country := viper.GetString("country")

		apiKey := viper.GetString("api-key")
		if apiKey == "" {
			return fmt.Errorf("API key is required: provide --api-key or set the %s environment variable", EnvAPIKey)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Fetching price data for %s, %s...\n", city, country)

		client := numbeo.NewClient(apiKey)
		data, err := client.GetCityPrices(ctx, city, country)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "\nOperation cancelled by user.")
				return nil
			}
			return fmt.Errorf("fetching data: %w", err)
		}

		numbeo.WriteReport(out, data)
		return nil
	}
}
