package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"heartd/internal/config"
	"heartd/internal/httpapi"
	"heartd/internal/model"
	"heartd/internal/predict"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8000"
	if v := os.Getenv("HEARTD_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultModel := "heart_disease_model.json"
	if v := os.Getenv("HEARTD_MODEL"); v != "" {
		defaultModel = v
	}
	defaultLogLevel := os.Getenv("HEARTD_LOG_LEVEL")
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8000")
	modelPath := flag.String("model", defaultModel, "Path to the serialized model artifact")
	cfgPath := flag.String("config", "", "Optional config file (yaml/json/toml)")
	strict := flag.Bool("strict", false, "Reject out-of-range field values instead of passing them through")
	logLevel := flag.String("log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg config.Config
	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal().Str("path", *cfgPath).Err(err).Msg("failed to load config")
		}
		cfg = c
	}
	// Explicit flags override config file values
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if cfg.Addr != "" && !set["addr"] {
		*addr = cfg.Addr
	}
	if cfg.ModelPath != "" && !set["model"] {
		*modelPath = cfg.ModelPath
	}
	if cfg.StrictValidation && !set["strict"] {
		*strict = true
	}
	if cfg.LogLevel != "" && !set["log-level"] {
		*logLevel = cfg.LogLevel
	}

	if *logLevel != "" {
		lvl, err := zerolog.ParseLevel(*logLevel)
		if err != nil {
			logger.Fatal().Str("level", *logLevel).Msg("unknown log level")
		}
		logger = logger.Level(lvl)
	}

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins,
		[]string{"GET", "POST", "OPTIONS"}, []string{"Accept", "Content-Type", "X-Log-Level"})

	// Load the artifact once before serving. A failed load is logged and the
	// process starts degraded: health and model-info still answer, scoring
	// returns 503 until restart.
	gw := model.NewGateway(*modelPath, logger)
	_ = gw.Load()

	svc := predict.New(gw, *strict)
	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", *addr).Str("model", *modelPath).Bool("strict", *strict).Bool("ready", gw.Ready()).Msg("heartd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("graceful shutdown error")
	}
}
