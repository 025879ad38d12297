package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/hoopelo/internal/adapters/feed"
	"github.com/okian/hoopelo/internal/adapters/http/api"
	"github.com/okian/hoopelo/internal/adapters/http/swagger"
	app "github.com/okian/hoopelo/internal/app"
	"github.com/okian/hoopelo/internal/config"
	"github.com/okian/hoopelo/pkg/logger"
	"github.com/okian/hoopelo/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
	standingsToLog    = 10
)

func main() {
	feedPath := flag.String("feed", "", "CSV match feed to replay (overrides HOOPELO_FEED_PATH)")
	once := flag.Bool("once", false, "replay the feed, log the standings and exit without serving")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*feedPath, *once); err != nil {
		logger.Get().Error(context.Background(), "hoopelo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(feedPath string, once bool) error {
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if feedPath != "" {
		cfg.FeedPath = feedPath
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	var readerOpts []feed.Option
	if cfg.DedupeFeed {
		readerOpts = append(readerOpts, feed.WithDedupe())
	}
	matches, err := feed.NewReader(readerOpts...).ReadFile(cfg.FeedPath)
	if err != nil {
		return err
	}
	log.Info(ctx, "feed loaded", logger.String("path", cfg.FeedPath), logger.Int("matches", len(matches)))

	engine := app.New(
		app.WithLogger(log.Named("engine")),
		app.WithMetrics(metrics.Default()),
		app.WithKFactor(cfg.KFactor),
		app.WithStreakBase(cfg.StreakBase),
		app.WithSeedRating(cfg.SeedRating),
		app.WithLenient(cfg.Lenient),
		app.WithExpectedMatches(cfg.ExpectedMatches),
	)
	log.Info(ctx, "replaying feed",
		logger.Bool("lenient", engine.Lenient()),
		logger.Float64("k_factor", cfg.KFactor),
	)
	if _, err := engine.Run(ctx, matches); err != nil {
		return err
	}
	logStandings(ctx, log, engine)

	if once {
		return nil
	}
	return serve(ctx, log, cfg, engine)
}

func logStandings(ctx context.Context, log logger.Logger, engine *app.Engine) {
	top, err := engine.TopN(ctx, standingsToLog)
	if err != nil {
		log.Warn(ctx, "standings unavailable", logger.Error(err))
		return
	}
	for _, e := range top {
		log.Info(ctx, "standing",
			logger.Int("rank", e.Rank),
			logger.String("team", e.Team),
			logger.Float64("rating", e.Rating),
			logger.Int("streak", e.Streak),
			logger.Int("games", e.Games),
		)
	}
}

// serve exposes the read API until ctx is cancelled. The engine is not
// mutated past this point, so handlers may read it concurrently.
func serve(ctx context.Context, log logger.Logger, cfg *config.Config, engine *app.Engine) error {
	mux := http.NewServeMux()
	api.NewServer(engine, metrics.GetRegistry(), cfg.MaxStandingsLimit).Register(ctx, mux)
	swagger.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return err
	}
	log.Info(ctx, "server stopped")
	return nil
}
