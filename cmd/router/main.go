package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/oncall-router/internal/app"
	"github.com/diegoclair/oncall-router/internal/config"
	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/service"
	"github.com/diegoclair/oncall-router/internal/handlers"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if err := run(cfg); err != nil {
		slog.Error("router stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := app.LoadRoster(ctx, cfg)
	if err != nil {
		return err
	}

	voiceClient, err := app.NewVoiceClient(cfg)
	if err != nil && !errors.Is(err, domain.ErrMissingCredentials) {
		return err
	}
	if voiceClient == nil {
		slog.Warn("provider credentials missing, outbound calls are disabled")
	}

	svc := service.NewInstance(r, voiceClient, app.ServiceOptions(cfg))

	if cfg.AnnouncerEnabled() {
		announcer, err := svc.NewAnnouncer(slack.New(cfg.SlackBotToken), cfg.SlackChannelID, cfg.AnnounceTime)
		if err != nil {
			return err
		}
		announcer.Start()
		defer announcer.Stop()
	}

	if cfg.TwilioValidateRequest && (cfg.TwilioAuthToken == "" || cfg.PublicBaseURL == "") {
		return errors.New("TWILIO_VALIDATE_SIGNATURE requires TWILIO_AUTH_TOKEN and PUBLIC_BASE_URL")
	}

	router := handlers.NewRouter(handlers.New(svc.Router), handlers.RouterOptions{
		ValidateSignature: cfg.TwilioValidateRequest,
		AuthToken:         cfg.TwilioAuthToken,
		PublicBaseURL:     cfg.PublicBaseURL,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "timezone", cfg.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
