package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"calendar-status-bot/internal/adapters/slack"
	"calendar-status-bot/internal/adapters/webhook"
	"calendar-status-bot/internal/domain"
	"calendar-status-bot/internal/infra/config"
	httpinfra "calendar-status-bot/internal/infra/http"
	"calendar-status-bot/internal/infra/log"
	"calendar-status-bot/internal/infra/metrics"
	"calendar-status-bot/internal/usecase/dispatch"
	"calendar-status-bot/internal/usecase/translate"
)

func main() {
	// .env опционален: в проде конфиг приходит из окружения.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.NewLogger(cfg.AppEnv)

	if cfg.SecretToken == "" {
		logger.Fatal().Msg("SECRET_TOKEN не задан")
	}
	if cfg.Slack.Token == "" {
		logger.Fatal().Msg("SLACK_TOKEN не задан")
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	loc, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		logger.Fatal().Err(err).Str("tz", cfg.TZ).Msg("неизвестный часовой пояс")
	}

	rules := domain.NewRuleTable(domain.DefaultRules(), domain.DefaultProfile(), cfg.Match.CaseInsensitive)
	translator := translate.NewService(rules, loc, cfg.TZ, translate.Window{
		Open:  cfg.Hours.Open,
		Close: cfg.Hours.Close,
	})

	slackClient := slack.NewClient(slack.Config{
		BaseURL:     cfg.Slack.BaseURL,
		AccessToken: cfg.Slack.Token,
		Timeout:     cfg.Slack.Timeout,
	})
	dispatcher := dispatch.NewService(slackClient, logger.With().Str("component", "dispatch").Logger())

	h := webhook.NewHandler(
		logger.With().Str("component", "webhook").Logger(),
		cfg.SecretToken,
		cfg.TZ,
		translator,
		dispatcher,
	)

	srv := httpinfra.NewServer(logger)
	h.Routes(srv.Router)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP сервер остановлен")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	logger.Info().Msg("остановка сервиса")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
