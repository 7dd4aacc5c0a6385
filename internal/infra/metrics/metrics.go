package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	WebhookRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_requests_total",
		Help: "Принятые вебхуки с валидным секретом",
	})
	TranslationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "translations_total",
		Help: "Результаты трансляции событий",
	}, []string{"outcome"})
	TranslationRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "translation_rejections_total",
		Help: "Отказы транслятора по причинам",
	}, []string{"reason"})
	SlackSendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slack_send_errors_total",
		Help: "Ошибки исходящих вызовов Slack",
	})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Длительность сетевых запросов",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"component", "operation", "target", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Количество сетевых запросов",
	}, []string{"component", "operation", "target", "status"})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		WebhookRequestsTotal,
		TranslationsTotal,
		TranslationRejections,
		SlackSendErrors,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// ObserveNetworkRequest записывает длительность и статус сетевого запроса.
func ObserveNetworkRequest(component, operation, target string, start time.Time, err error) {
	if component == "" {
		component = "unknown"
	}
	if operation == "" {
		operation = "unknown"
	}
	if target == "" {
		target = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	duration := time.Since(start).Seconds()
	NetworkRequestDuration.WithLabelValues(component, operation, target, status).Observe(duration)
	NetworkRequestTotal.WithLabelValues(component, operation, target, status).Inc()
}

// IncWebhookRequest увеличивает счётчик принятых вебхуков.
func IncWebhookRequest() {
	WebhookRequestsTotal.Inc()
}

// IncTranslation увеличивает счётчик результатов трансляции.
func IncTranslation(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	TranslationsTotal.WithLabelValues(outcome).Inc()
}

// IncRejection увеличивает счётчик отказов по причине.
func IncRejection(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	TranslationRejections.WithLabelValues(reason).Inc()
}

// IncSlackSendError увеличивает счётчик ошибок исходящих вызовов.
func IncSlackSendError() {
	SlackSendErrors.Inc()
}
