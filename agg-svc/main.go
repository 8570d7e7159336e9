package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tiffinbox/agg-svc/internal/service"
	"tiffinbox/agg-svc/internal/storage"
	"tiffinbox/config"
	"tiffinbox/logging"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "agg-svc",
	Short:        "Rolls marketplace events up into Redis leaderboards and daily sales",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		log := logging.New("agg-svc", cfg.Env)

		db := config.MustInitPostgres(cfg.Database)
		defer db.Close()

		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()

		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), log)
		if err := consumer.Start(ctx); err != nil {
			return err
		}
		log.Info("Consumer stopped", "action", "consumer_stop")
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
