package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"job-dash/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully. The rate limiter's sweeper runs alongside the listener.
func (a *App) Serve(ctx context.Context) error {
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: a.Cfg.RateLimitRPS,
		Burst:             a.Cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              a.Cfg.ListenAddr,
		Handler:           a.NewRouter(limiter),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return limiter.Run(gctx)
	})
	g.Go(func() error {
		a.Logger.Info("dashboard listening",
			"addr", a.Cfg.ListenAddr,
			"url", "http://"+BrowseHost(a.Cfg.ListenAddr)+"/ui",
			"raw_data", a.Cfg.RawDataPath,
			"processed_data", a.Cfg.ProcessedDataPath,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down dashboard")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// BrowseHost returns a host:port suitable for a browser URL pointing at a
// server listening on listenAddr.
func BrowseHost(listenAddr string) string {
	addr := strings.TrimSpace(listenAddr)
	if addr == "" {
		return "localhost:8080"
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}

	return net.JoinHostPort(host, port)
}
