package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/api"
	"github.com/spigell/cv-scorer/internal/logger"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default :8080)")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config.Server == nil {
		logger.Fatal("server configuration is required")
	}

	logger.Info("starting the cv-scorer", zap.String("version", version))

	e, err := newEngine(ctx, config, viper.GetBool("debug"), logger)
	if err != nil {
		logger.Fatal("building the engine", zap.Error(err))
	}
	defer e.Close()

	server := api.New(e.analyzer, api.Options{
		BodyLimit: config.Server.BodyLimit,
		Version:   version,
	}, logger)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down", zap.String("reason", "signal received"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("forced shutdown", zap.Error(err))
		}
	}()

	if err := server.Listen(config.Server.Listen); err != nil {
		logger.Fatal("serving http", zap.Error(err))
	}
}
