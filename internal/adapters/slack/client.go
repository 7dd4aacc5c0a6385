package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"calendar-status-bot/internal/domain"
	"calendar-status-bot/internal/infra/metrics"
)

// Config описывает подключение к Slack Web API.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// Client — клиент Slack Web API для управления присутствием.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ domain.PresenceAPI = (*Client)(nil)

// NewClient создаёт клиент.
func NewClient(cfg Config) *Client {
	client := &Client{cfg: cfg}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client.httpClient = &http.Client{Timeout: timeout}
	if cfg.BaseURL == "" {
		client.cfg.BaseURL = "https://slack.com"
	}
	return client
}

// SetHTTPClient подменяет HTTP клиент (для тестов).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	if httpClient != nil {
		c.httpClient = httpClient
	}
}

// apiResponse — общий конверт ответов Slack Web API.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SetSnooze включает режим snooze (DND) на указанное число минут.
func (c *Client) SetSnooze(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("отрицательная длительность snooze: %d", minutes)
	}
	form := url.Values{"num_minutes": []string{strconv.Itoa(minutes)}}
	start := time.Now()
	err := c.postForm(ctx, "dnd.setSnooze", form)
	metrics.ObserveNetworkRequest("slack", "dnd.setSnooze", "web_api", start, err)
	return err
}

// SetPresence переключает присутствие пользователя (auto или away).
func (c *Client) SetPresence(ctx context.Context, presence string) error {
	form := url.Values{"presence": []string{presence}}
	start := time.Now()
	err := c.postForm(ctx, "users.setPresence", form)
	metrics.ObserveNetworkRequest("slack", "users.setPresence", "web_api", start, err)
	return err
}

// SetProfile устанавливает текст, эмодзи и срок действия статуса.
func (c *Client) SetProfile(ctx context.Context, update domain.StatusUpdate) error {
	payload := map[string]any{"profile": update}
	start := time.Now()
	err := c.postJSON(ctx, "users.profile.set", payload)
	metrics.ObserveNetworkRequest("slack", "users.profile.set", "web_api", start, err)
	return err
}

func (c *Client) postForm(ctx context.Context, method string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("создание запроса %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, method)
}

func (c *Client) postJSON(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("создание запроса %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return c.do(req, method)
}

func (c *Client) do(req *http.Request, method string) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("вызов %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("чтение ответа %s: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack %s: статус %d: %s", method, resp.StatusCode, truncate(raw, 256))
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("декодирование ответа %s: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("slack %s: %s", method, envelope.Error)
	}
	return nil
}

func (c *Client) methodURL(method string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/api/" + method
}

func truncate(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}
