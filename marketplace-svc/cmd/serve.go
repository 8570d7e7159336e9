package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiffinbox/config"
	httpapi "tiffinbox/marketplace-svc/internal/api/http"
	"tiffinbox/marketplace-svc/internal/payment"
	"tiffinbox/marketplace-svc/internal/service"
	"tiffinbox/marketplace-svc/internal/storage"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Auth.JWTSecret == "" {
			return errors.New("JWT_SECRET is required")
		}

		db := config.MustInitPostgres(cfg.Database)
		defer db.Close()
		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()

		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(cmd.Context()); err != nil {
			return err
		}

		var images service.ImageStore = storage.NewLocalImageStore(cfg.Storage.UploadDir)
		uploadDir := cfg.Storage.UploadDir
		s3Client, err := config.NewS3Client(cmd.Context(), cfg.Storage)
		if err != nil {
			return err
		}
		if s3Client != nil {
			images = storage.NewS3ImageStore(s3Client, cfg.Storage.S3Bucket, cfg.Storage.AWSRegion)
			uploadDir = ""
			log.Info("storing images in S3", "bucket", cfg.Storage.S3Bucket)
		}

		cart := storage.NewRedisCart(rdb, cfg.Redis.CartTTL)
		publisher := storage.NewKafkaPublisher(writer)
		gateway := payment.NewRazorpay(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret,
			cfg.Razorpay.BaseURL, cfg.Razorpay.Currency, cfg.Razorpay.Timeout)
		qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}

		orders := service.NewOrderService(repo, cart, publisher, qr, log)
		customOrders := service.NewCustomOrderService(repo, publisher, log)
		reservations := service.NewReservationService(repo, cfg.Reservations.SlotWindow, cfg.Reservations.BookingFee)

		handler := httpapi.NewHandler(httpapi.Services{
			Catalog:            service.NewCatalogService(repo, images),
			Cart:               service.NewCartService(repo, cart),
			Orders:             orders,
			Ratings:            service.NewRatingService(repo, publisher, cfg.Ratings.AllowRepeat, log),
			RestaurantRequests: service.NewRestaurantApprovals(repo),
			DeliveryRequests:   service.NewDeliveryApprovals(repo),
			CustomOrders:       customOrders,
			Reservations:       reservations,
			Payments:           service.NewPaymentService(gateway, orders, customOrders, reservations, cfg.Razorpay.KeyID),
			Stats:              service.NewStatsService(repo, storage.NewRedisStats(rdb)),
			Addresses:          service.NewAddressService(repo),
		}, httpapi.NewAuthenticator(cfg.Auth.JWTSecret, repo), log, cfg.IsProduction())

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           httpapi.NewRouter(handler, uploadDir),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("marketplace-svc starting", "action", "server_start", "port", cfg.Port, "env", cfg.Env)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case sig := <-sigCh:
			log.Info("shutting down", "action", "server_stop", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	},
}
