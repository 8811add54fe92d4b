package main

import (
	"context"
	"log"

	"cartera/cmd"
	"cartera/internal"
	"cartera/internal/domain"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var currencyFlag string

func displayCurrency() domain.Currency {
	if currencyFlag == "ARS" {
		return domain.Currency_ARS
	}
	return domain.Currency_USD
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "cartera",
		Short: "portfolio snapshot tooling",
	}
	rootCmd.PersistentFlags().StringVar(&currencyFlag, "currency", "USD", "display currency (USD or ARS)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "snapshot",
		Short: "print the aggregated portfolio",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			portfolio, err := handler.PortfolioService.GetPortfolio(context.Background(), displayCurrency())
			if err != nil {
				return err
			}
			internal.Pprint(portfolio)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "risk",
		Short: "print the risk breakdown for the current portfolio",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			ctx := context.Background()
			portfolio, err := handler.PortfolioService.GetPortfolio(ctx, displayCurrency())
			if err != nil {
				return err
			}
			breakdown := handler.RiskService.GetBreakdown(ctx, portfolio.Assets)
			internal.Pprint(breakdown)
			internal.Pprint(handler.RiskService.GetSummary(ctx, portfolio.Assets, breakdown))
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
