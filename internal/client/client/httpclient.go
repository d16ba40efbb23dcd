package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/logging"
	"github.com/google/uuid"
)

const (
	catsPath        = "/api/v1/cats"
	requestIDHeader = "X-Request-ID"
	maxBodySize     = 1 << 20
)

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	logger       logging.Logger
	recorder     Recorder
	monitor      *Monitor
	newRequestID func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (e.g. for tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithRecorder makes the client report every completed call to r.
func WithRecorder(r Recorder) Option {
	return func(c *HTTPClient) { c.recorder = r }
}

// WithMonitor makes the client feed call latencies into m.
func WithMonitor(m *Monitor) Option {
	return func(c *HTTPClient) { c.monitor = m }
}

// NewHTTPClient creates a client for the backend rooted at baseURL.
// timeout bounds every request; zero means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(u.String(), "/"),
		http:         &http.Client{Timeout: timeout},
		logger:       logging.Discard(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func catPath(id int64) string {
	return fmt.Sprintf("%s/%d", catsPath, id)
}

func (c *HTTPClient) ListCats(ctx context.Context) (models.CatList, error) {
	var out models.CatList
	if err := c.do(ctx, "list", http.MethodGet, catsPath+"/", nil, &out, MsgRequestFailed); err != nil {
		return models.CatList{}, err
	}
	if out.Cats == nil {
		out.Cats = []models.Cat{}
	}
	return out, nil
}

func (c *HTTPClient) GetCat(ctx context.Context, id int64) (models.Cat, error) {
	var out models.Cat
	if err := c.do(ctx, "get", http.MethodGet, catPath(id), nil, &out, MsgRequestFailed); err != nil {
		return models.Cat{}, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCat(ctx context.Context, cat models.CatCreate) (models.Cat, error) {
	var out models.Cat
	if err := c.do(ctx, "create", http.MethodPost, catsPath+"/", cat, &out, MsgRequestFailed); err != nil {
		return models.Cat{}, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateCat(ctx context.Context, id int64, upd models.CatUpdate) (models.Cat, error) {
	var out models.Cat
	if err := c.do(ctx, "update", http.MethodPatch, catPath(id), upd, &out, MsgRequestFailed); err != nil {
		return models.Cat{}, err
	}
	return out, nil
}

func (c *HTTPClient) DeleteCat(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, catPath(id), nil, nil, MsgDeleteFailed)
}

// do performs one request and reports it to the recorder and monitor.
// The returned error, when non-nil, is always an *APIError.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, in, out any, failMsg string) error {
	start := time.Now()
	rec := &models.CallRecord{
		RequestID: c.newRequestID(),
		Method:    method,
		Path:      path,
		CreatedAt: start.UTC(),
	}

	apiErr := c.roundTrip(ctx, rec, in, out, failMsg)
	rec.Duration = time.Since(start)
	if apiErr != nil {
		rec.Error = apiErr.Message
	}
	c.observe(ctx, op, rec)

	if apiErr != nil {
		return apiErr
	}
	return nil
}

func (c *HTTPClient) roundTrip(ctx context.Context, rec *models.CallRecord, in, out any, failMsg string) *APIError {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &APIError{Message: MsgInvalidRequest, Err: fmt.Errorf("marshal json: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, rec.Method, c.baseURL+rec.Path, body)
	if err != nil {
		return &APIError{Message: MsgInvalidRequest, Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, rec.RequestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: MsgNetworkError, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	rec.Status = resp.StatusCode
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: MsgNetworkError, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorDetail(raw, failMsg)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: MsgInvalidResponse, Err: fmt.Errorf("unmarshal json: %w", err)}
	}
	return nil
}

func (c *HTTPClient) observe(ctx context.Context, op string, rec *models.CallRecord) {
	log := c.logger.With("op", op, "request_id", rec.RequestID, "status", rec.Status, "duration", rec.Duration)
	if rec.Error != "" {
		log.Warn(ctx, "api call failed", "path", rec.Path, "error", rec.Error)
	} else {
		log.Debug(ctx, "api call", "path", rec.Path)
	}

	if c.monitor != nil {
		c.monitor.Observe(op, rec.Duration, rec.Error != "")
	}
	if c.recorder != nil {
		if err := c.recorder.Add(ctx, rec); err != nil {
			c.logger.Error(ctx, "journal write failed", "request_id", rec.RequestID, "error", err)
		}
	}
}

// errorDetail extracts the message of an error body shaped as {"detail": ...}.
// detail may be a string or a list of {"msg": ...} objects. A body that is
// not JSON yields MsgUnknownError; a JSON body without usable detail yields
// fallback.
func errorDetail(raw []byte, fallback string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return MsgUnknownError
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return fallback
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return fallback
}
