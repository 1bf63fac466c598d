package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/abdulachik/modguard/internal/app"
	"github.com/abdulachik/modguard/internal/config"
	"github.com/abdulachik/modguard/internal/ratelimit"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP service",
	Long: `Serve the risk engine over HTTP.

Endpoints:
  POST /assess   {"user_id": 1, "text": "..."} -> risk assessment
  POST /spam     {"user_id": 1, "text": "..."} -> spam check
  GET  /healthz  component health

Requests are rate limited per user with a sliding window.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type assessRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RateWindow, cfg.MaxTrackedUsers)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	a.Health.SetHealthy("ratelimit", "ready")

	mux := http.NewServeMux()
	mux.Handle("/healthz", a.Health.Handler())
	mux.HandleFunc("/assess", func(w http.ResponseWriter, r *http.Request) {
		handleCheck(w, r, limiter, func(text string) any {
			return a.Engine.Assess(text)
		})
	})
	mux.HandleFunc("/spam", func(w http.ResponseWriter, r *http.Request) {
		handleCheck(w, r, limiter, func(text string) any {
			return a.Engine.AssessSpam(text)
		})
	})

	srv := &http.Server{
		Addr:         cfg.HealthAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving", "addr", cfg.HealthAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func handleCheck(w http.ResponseWriter, r *http.Request, limiter *ratelimit.Limiter, check func(string) any) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !limiter.Allow(req.UserID) {
		slog.Debug("rate limited", "user_id", req.UserID)
		w.Header().Set("Retry-After", strconv.Itoa(1))
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(check(req.Text)); err != nil {
		slog.Error("encode response", "error", err)
	}
}
