package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func configureLogging() {
	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", viper.GetString("service_name")).
		Str("version", viper.GetString("app_version")).
		Logger()
}

func addRoutes(router *httprouter.Router) {
	router.GET("/v1/info", info)
	router.POST("/v1/transcripts/clean", basicAuth(cleanTranscript))
	router.POST("/v1/cases/:term/:docket/clean", basicAuth(cleanCase))
	router.GET("/v1/cases/:term/:docket/runs", basicAuth(listRuns))
	router.POST("/v1/dataset/validate", basicAuth(validateDataset))
}

func startServer(router *httprouter.Router, wg *sync.WaitGroup) *http.Server {
	srv := &http.Server{
		Addr:              ":" + viper.GetString("listen_port"),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("addr", srv.Addr).Msg("server stopped")
		}
	}()

	return srv
}

func main() {
	viper.AutomaticEnv()
	setDefaults()
	configureLogging()

	if len(os.Args) > 1 {
		os.Exit(runCommand(os.Args[1:], os.Stdout))
	}

	if err := initFeatureFlags(); err != nil {
		log.Error().Err(err).Msg("initialising unleash, falling back to defaults")
	}

	var err error
	db, err = connectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer db.Close()

	if err := ensureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("database schema")
	}

	router := httprouter.New()
	addRoutes(router)

	var wg sync.WaitGroup
	wg.Add(1)
	srv := startServer(router, &wg)
	log.Info().Str("addr", srv.Addr).Msg("listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutting down")
	}
	wg.Wait()
}
