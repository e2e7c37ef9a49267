package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/time/rate"

	"service_alerts/internal/areas"
	"service_alerts/internal/config"
	"service_alerts/internal/footprint"
	"service_alerts/internal/geocode"
	"service_alerts/internal/llm"
	"service_alerts/internal/metrics"
	"service_alerts/internal/publisher"
	"service_alerts/internal/scheduler"
	"service_alerts/internal/service"
	"service_alerts/internal/source/sharepoint"
	"service_alerts/internal/storage/blob"
	"service_alerts/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run the pipeline a single time and exit")
	importLayer := flag.String("import-layer", "", "replace the named reference layer with -layer-file and exit")
	layerFile := flag.String("layer-file", "", "GeoJSON FeatureCollection used by -import-layer")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	txManager := postgres.NewTransactionManager(db)
	datasetStore := postgres.NewDatasetStore(db, txManager, cfg.Datasets.History)
	layerStore := postgres.NewLayerStore(db, txManager)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *importLayer != "" {
		if err := importLayerFile(ctx, layerStore, *importLayer, *layerFile, logger); err != nil {
			logger.Error("failed to import layer", "layer", *importLayer, "error", err)
			os.Exit(1)
		}
		return
	}

	m := metrics.New()
	metricsServer := metrics.NewServer(cfg.Metrics.Addr, m)
	go func() {
		if err := metricsServer.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	llmClient, err := llm.NewClient(llm.Config{
		Primary:    llm.Endpoint(cfg.LLM.Primary),
		Fallback:   llm.Endpoint(cfg.LLM.Fallback),
		Attempts:   cfg.LLM.Attempts,
		RetryDelay: cfg.LLM.RetryDelay,
		Timeout:    cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}

	downloader, err := streetDownloader(cfg, logger)
	if err != nil {
		logger.Error("failed to create street lookup storage", "error", err)
		os.Exit(1)
	}

	source := sharepoint.New(sharepoint.Config{
		ItemsURL:       cfg.Source.ItemsURL,
		Username:       cfg.Source.Username,
		Password:       cfg.Source.Password,
		PageSize:       cfg.Source.PageSize,
		MaxPages:       cfg.Source.MaxPages,
		Timeout:        cfg.Source.Timeout,
		MaxAttempts:    cfg.Source.Retry.MaxAttempts,
		InitialBackoff: cfg.Source.Retry.InitialBackoff,
		MaxBackoff:     cfg.Source.Retry.MaxBackoff,
	}, logger)

	// shared by the geocoder of every run
	geocodeLimiter := rate.NewLimiter(rate.Every(cfg.Geocoder.Interval), 1)
	newFootprints := func() service.Footprints {
		resolver := areas.NewResolver(layerStore, logger)
		streets := geocode.NewStreetLookup(downloader, cfg.Streets.Key, logger)
		nominatim := geocode.NewNominatim(geocode.NominatimConfig{
			BaseURL:   cfg.Geocoder.NominatimURL,
			UserAgent: cfg.Geocoder.UserAgent,
			Timeout:   cfg.Geocoder.Timeout,
			Limiter:   geocodeLimiter,
		}, logger)
		geocoder := geocode.New(resolver, streets, nominatim, m, logger)
		return footprint.NewAggregator(resolver, llmClient, geocoder, logger)
	}

	pipeline := service.NewPipeline(m, logger,
		service.NewIngestService(source, datasetStore, datasetStore, txManager, m, logger, cfg.Datasets),
		service.NewAugmentService(
			datasetStore,
			llmClient,
			newFootprints,
			rabbitMQ,
			m,
			logger,
			cfg.Datasets,
			cfg.Cache,
			cfg.Pipeline,
		),
		service.NewBroadcastService(datasetStore, rabbitMQ, m, logger, cfg.Datasets),
	)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		runCtx, done := context.WithTimeout(ctx, cfg.Pipeline.RunTimeout)
		defer done()
		if _, err := pipeline.Run(runCtx); err != nil {
			logger.Error("pipeline run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting service alert pipeline",
		"source", source.Name(),
		"interval", cfg.Pipeline.Interval,
		"metrics_addr", cfg.Metrics.Addr,
	)

	sched := scheduler.NewScheduler(pipeline, cfg.Pipeline.Interval, cfg.Pipeline.RunTimeout, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func streetDownloader(cfg *config.Config, logger *slog.Logger) (geocode.Downloader, error) {
	if cfg.Streets.LocalRoot != "" {
		return geocode.LocalFiles{Root: cfg.Streets.LocalRoot}, nil
	}
	return blob.New(blob.Config{
		ConnectionString: cfg.Blob.ConnectionString,
		Container:        cfg.Blob.Container,
	}, logger)
}

func importLayerFile(ctx context.Context, store *postgres.LayerStore, layer, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	features, err := areas.ParseGeoJSON(layer, data)
	if err != nil {
		return err
	}
	if err := store.ReplaceLayer(ctx, layer, features); err != nil {
		return err
	}
	logger.Info("imported layer", "layer", layer, "areas", len(features))
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
