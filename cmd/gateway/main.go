package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/mind-engage/mindengage-cognition/internal/api/http"
	auth "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cognition/internal/baseline"
	"github.com/mind-engage/mindengage-cognition/internal/config"
	"github.com/mind-engage/mindengage-cognition/internal/db"
	"github.com/mind-engage/mindengage-cognition/internal/observability"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	"github.com/mind-engage/mindengage-cognition/internal/profile"
	"github.com/mind-engage/mindengage-cognition/internal/results"
	syncx "github.com/mind-engage/mindengage-cognition/internal/sync"
	"github.com/mind-engage/mindengage-cognition/internal/traits"
)

func main() {
	cfg := config.FromEnv()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", "driver", cfg.DBDriver, "error", err)
	}
	defer dbh.Close()

	// --- Engine ---
	table, err := baseline.LoadFile(cfg.BaselineFile)
	if err != nil {
		log.Fatal("baseline load failed", "path", cfg.BaselineFile, "error", err)
	}
	var metrics *observability.Metrics
	if cfg.EnableMetrics {
		metrics = observability.NewMetrics()
	}
	events := syncx.NewEventRepo(dbh, cfg.SiteID)
	svc := profile.NewService(
		results.NewSQLStore(dbh),
		traits.NewAggregator(traits.NewNormalizer(table)),
		profile.WithEvents(events),
		profile.WithMetrics(metrics),
		profile.WithLogger(log.With("component", "profile")),
	)

	// --- Router ---
	h := api.NewRouter(api.RouterConfig{
		Service:     svc,
		Auth:        auth.NewAuthService(cfg.AuthSecret),
		Log:         log.With("component", "http"),
		CORSOrigins: cfg.CORSOrigins(),
		EnableLogin: cfg.EnableLocalAuth,
		Login: auth.LoginOptions{
			DevLogin:      cfg.Mode == config.ModeOffline,
			AdminUser:     cfg.AdminUser,
			AdminPassHash: cfg.AdminPassHash,
		},
		EnableGuest:   cfg.EnableGuestAuth,
		SecureCookies: cfg.Mode == config.ModeOnline,
		Metrics:       metrics,
		Events:        events,
		Baselines:     table,
		Ready:         dbh.PingContext,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop, release := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer release()
	go func() {
		<-stop.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("listening", "addr", cfg.HTTPAddr, "mode", cfg.Mode, "db", cfg.DBDriver, "baselines", table.Len())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", "error", err)
	}
}
