package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// TraceIDHeader carries the per-request trace id generated by the client.
const TraceIDHeader = "X-Trace-ID"

const (
	configPath    = "/api/config"
	profilePath   = "/api/user/profile"
	schedulesPath = "/api/8ball/schedules"
	schedulePath  = "/api/8ball/schedules/{scheduleID}"
	pingPath      = "/api/ping"
	versionPath   = "/api/version"
)

type httpBackendAdapter struct {
	client  *resty.Client
	baseURL string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the resty-backed [BackendAdapter].
//
// The base URL from cfg.BaseURL is normalised (scheme defaults to http,
// trailing slash dropped). cfg.RequestTimeout of zero leaves requests
// unbounded; cfg.SessionCookie ("name=value") is attached to every request.
// Retries are disabled.
//
// Returns an error if the base URL is empty or unparsable, or if the session
// cookie is malformed.
func NewHTTPBackendAdapter(cfg config.ClientAdapter, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if cfg.SessionCookie != "" {
		cookie, err := parseCookie(cfg.SessionCookie)
		if err != nil {
			return nil, fmt.Errorf("invalid session cookie: %w", err)
		}
		client.SetCookie(cookie)
	}

	a := &httpBackendAdapter{client: client, baseURL: baseURL, logger: log}

	client.OnBeforeRequest(a.attachTraceID)
	client.OnAfterResponse(a.logResponse)
	client.OnError(a.logTransportError)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func parseCookie(raw string) (*http.Cookie, error) {
	name, value, ok := strings.Cut(strings.TrimSpace(raw), "=")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("need cookie in a form `name=value`")
	}
	return &http.Cookie{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}, nil
}

// BaseURL implements [BackendAdapter].
func (h *httpBackendAdapter) BaseURL() string {
	return h.baseURL
}

// FetchConfig implements [BackendAdapter].
func (h *httpBackendAdapter) FetchConfig(ctx context.Context) (Result, error) {
	return h.do(h.client.R().SetContext(ctx), http.MethodGet, configPath, "fetch config")
}

// FetchProfile implements [BackendAdapter].
func (h *httpBackendAdapter) FetchProfile(ctx context.Context) (Result, error) {
	return h.do(h.client.R().SetContext(ctx), http.MethodGet, profilePath, "fetch profile")
}

// ListSchedules implements [BackendAdapter]. Any response, including a
// non-2xx one, is returned as a [Result] with a nil error.
func (h *httpBackendAdapter) ListSchedules(ctx context.Context) (Result, error) {
	return h.do(h.client.R().SetContext(ctx), http.MethodGet, schedulesPath, "list schedules")
}

// UpdateSchedule implements [BackendAdapter]. scheduleID is path-escaped and
// schedule is sent as-is.
func (h *httpBackendAdapter) UpdateSchedule(ctx context.Context, scheduleID string, schedule models.Schedule) (Result, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("scheduleID", scheduleID).
		SetBody(schedule)

	return h.do(req, http.MethodPost, schedulePath, "update schedule")
}

// Ping implements [BackendAdapter].
func (h *httpBackendAdapter) Ping(ctx context.Context) (Result, error) {
	return h.do(h.client.R().SetContext(ctx), http.MethodGet, pingPath, "ping")
}

// Version implements [BackendAdapter].
func (h *httpBackendAdapter) Version(ctx context.Context) (Result, error) {
	return h.do(h.client.R().SetContext(ctx), http.MethodGet, versionPath, "version")
}

func (h *httpBackendAdapter) do(req *resty.Request, method, path, op string) (Result, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
	}

	return Result{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

func (h *httpBackendAdapter) attachTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(TraceIDHeader) == "" {
		req.SetHeader(TraceIDHeader, uuid.NewString())
	}
	return nil
}

func (h *httpBackendAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("func", "httpBackendAdapter.logResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Send()
	return nil
}

func (h *httpBackendAdapter) logTransportError(req *resty.Request, err error) {
	h.logger.Warn().Err(err).
		Str("func", "httpBackendAdapter.logTransportError").
		Str("method", req.Method).
		Str("url", req.URL).
		Str("trace_id", req.Header.Get(TraceIDHeader)).
		Msg("request failed without response")
}
