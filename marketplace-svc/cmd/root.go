package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"tiffinbox/config"
	"tiffinbox/logging"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "marketplace-svc",
	Short: "Food delivery marketplace backend",
	Long: `marketplace-svc serves the tiffinbox REST API: catalog, carts, multi-restaurant
checkout, order tracking, ratings, partner onboarding, custom orders and table bookings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New("marketplace-svc", cfg.Env)
	slog.SetDefault(log)
	return cfg, log, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
