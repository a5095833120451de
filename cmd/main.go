package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelplanner/internal/handlers"
	"travelplanner/internal/logger"
	"travelplanner/internal/repository"
	"travelplanner/internal/repository/db"
	"travelplanner/internal/server"
	"travelplanner/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultPort     = "8080"
	defaultTokenTTL = 12 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title        Travel Planner API
// @version      1.0
// @description  Trip planning backend: destinations, reviews, trip plans and bookings.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// connect Mongo
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, closeDB, err := db.Connect(ctx, viper.GetString("mongo.uri"), viper.GetString("mongo.database"))
	if err != nil {
		log.Fatalw("failed to connect to mongo", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, authConfig())
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, closeDB, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// authConfig reads the token signing material; the secret has no default on
// purpose.
func authConfig() service.AuthConfig {
	ttl := viper.GetDuration("auth.token_ttl")
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return service.AuthConfig{
		SigningKey: []byte(viper.GetString("auth.signing_key")),
		TokenTTL:   ttl,
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals, then drains the server and
// closes the Mongo client.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, closeDB func(context.Context) error, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	if err := closeDB(ctx); err != nil {
		log.Errorw("failed to close mongo client", "err", err)
	}
}
