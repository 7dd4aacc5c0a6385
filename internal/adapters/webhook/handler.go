package webhook

import (
	"crypto/hmac"
	"encoding/json"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"calendar-status-bot/internal/domain"
	"calendar-status-bot/internal/infra/metrics"
)

// Тела ответов автоматизации. IFTTT ждёт 200 на все штатные исходы.
const (
	bodyAccepted = "🤘"
	bodyTooEarly = "Too early!"
	bodyTooLate  = "Too late!"
	bodyNotFound = "Not found"
)

// Handler принимает вебхук календаря и отдаёт результат трансляции.
type Handler struct {
	log        zerolog.Logger
	secret     string
	zone       string
	translator domain.Translator
	dispatcher domain.Dispatcher
	validate   *validator.Validate
}

// NewHandler создаёт обработчик вебхука.
func NewHandler(log zerolog.Logger, secret, zone string, translator domain.Translator, dispatcher domain.Dispatcher) *Handler {
	return &Handler{
		log:        log,
		secret:     secret,
		zone:       zone,
		translator: translator,
		dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// Routes регистрирует маршруты обработчика.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleEvent)
	r.Get("/", h.handleWelcome)
	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleNotFound)
}

// webhookRequest — тело вебхука IFTTT (форма или JSON).
type webhookRequest struct {
	Token string `json:"token" validate:"required"`
	Title string `json:"title" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

func (h *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	// Невалидный секрет (как и нечитаемое тело) молча проваливается в 404.
	if err != nil || !h.tokenMatches(req.Token) {
		h.handleNotFound(w, r)
		return
	}
	metrics.IncWebhookRequest()

	if err := h.validate.Struct(req); err != nil {
		h.log.Debug().Err(err).Msg("вебхук без обязательных полей")
		metrics.IncTranslation("rejected")
		metrics.IncRejection(string(domain.ReasonMalformedTime))
		http.Error(w, "Missing event fields", http.StatusBadRequest)
		return
	}

	record := domain.EventRecord{
		Title:    req.Title,
		Start:    req.Start,
		End:      req.End,
		Timezone: h.zone,
	}

	cmd, err := h.translator.Translate(record)
	if err != nil {
		h.renderRejection(w, err)
		return
	}
	metrics.IncTranslation("accepted")

	report, err := h.dispatcher.Dispatch(r.Context(), cmd)
	if err != nil {
		h.log.Error().Err(err).Str("status", cmd.Text).Msg("не удалось доставить статус")
		http.Error(w, "Status update failed", http.StatusBadGateway)
		return
	}
	if failed := report.Failed(); len(failed) > 0 {
		h.log.Debug().Int("failed_actions", len(failed)).Msg("часть второстепенных действий не прошла")
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(bodyAccepted))
}

func (h *Handler) renderRejection(w http.ResponseWriter, err error) {
	rej, ok := domain.AsRejection(err)
	if !ok {
		h.log.Error().Err(err).Msg("неожиданная ошибка транслятора")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	metrics.IncTranslation("rejected")
	metrics.IncRejection(string(rej.Reason))

	switch rej.Reason {
	case domain.ReasonOutsideWindow:
		// Штатный исход: автоматизация получает 200 и поясняющий текст.
		h.log.Info().Str("boundary", rej.Boundary).Int("hour", rej.Hour).Msg("событие вне рабочего окна")
		w.WriteHeader(http.StatusOK)
		if rej.Boundary == domain.BoundaryOpen {
			_, _ = w.Write([]byte(bodyTooEarly))
		} else {
			_, _ = w.Write([]byte(bodyTooLate))
		}
	case domain.ReasonInvalidRange:
		h.log.Warn().Msg("окончание события раньше начала")
		http.Error(w, "Event ends before it starts", http.StatusBadRequest)
	default:
		h.log.Warn().Err(rej.Cause).Msg("не удалось разобрать время события")
		http.Error(w, "Bad start/end time", http.StatusBadRequest)
	}
}

func (h *Handler) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomePage))
}

func (h *Handler) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(bodyNotFound))
}

func (h *Handler) tokenMatches(token string) bool {
	if token == "" || h.secret == "" {
		return false
	}
	return hmac.Equal([]byte(token), []byte(h.secret))
}

func decodeRequest(r *http.Request) (webhookRequest, error) {
	var req webhookRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return webhookRequest{}, err
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return webhookRequest{}, err
	}
	req.Token = r.PostFormValue("token")
	req.Title = r.PostFormValue("title")
	req.Start = r.PostFormValue("start")
	req.End = r.PostFormValue("end")
	return req, nil
}
