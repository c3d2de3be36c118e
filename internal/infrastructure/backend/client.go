// Package backend is the resty-based client of the remote sales API.
// It implements the directory, gateway and report ports of the domain packages.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salesdesk/internal/core/apperror"
	appctx "salesdesk/internal/core/context"
	"salesdesk/pkg/logger"
)

var tracer = otel.Tracer("salesdesk/backend")

// Headers carrying the inbound request and trace ids to the backend.
const (
	RequestIDHeader = "X-Request-ID"
	TraceIDHeader   = "X-Trace-ID"
)

// Config holds backend connection settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the sales backend. It never retries: every failure is
// returned to the caller, which decides whether to resubmit.
type Client struct {
	http *resty.Client
}

// New builds a backend client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	r := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0)
	if cfg.Token != "" {
		r.SetAuthToken(cfg.Token)
	}

	return &Client{http: r}
}

// call is one backend request description.
type call struct {
	op     string
	method string
	path   string
	query  map[string]string
	body   any
}

// do executes c and returns the raw success body.
func (cl *Client) do(ctx context.Context, c call) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "backend."+c.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", c.method),
			attribute.String("backend.path", c.path),
		))
	defer span.End()

	req := cl.http.R().SetContext(ctx)
	if rid := appctx.GetRequestID(ctx); rid != "" {
		req.SetHeader(RequestIDHeader, rid)
	}
	if tid := appctx.GetTraceID(ctx); tid != "" {
		req.SetHeader(TraceIDHeader, tid)
	}
	if len(c.query) > 0 {
		req.SetQueryParams(c.query)
	}
	if c.body != nil {
		req.SetBody(c.body)
	}

	start := time.Now()
	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		logger.Warn(ctx, "backend unreachable",
			"op", c.op,
			"path", c.path,
			"error", err)
		return nil, apperror.NewUnavailable(fmt.Errorf("%s %s: %w", c.method, c.path, err))
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))
	logger.Debug(ctx, "backend call",
		"op", c.op,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds())

	if status >= http.StatusBadRequest {
		appErr := mapStatus(c.op, c.path, status, resp.Body())
		span.SetStatus(codes.Error, appErr.Message)
		return nil, appErr
	}
	return resp.Body(), nil
}

// get runs a GET and decodes a single record into out.
func (cl *Client) get(ctx context.Context, op, path string, out any, keys ...string) error {
	body, err := cl.do(ctx, call{op: op, method: http.MethodGet, path: path})
	if err != nil {
		return err
	}
	return decodeRecord(body, out, keys...)
}

// send runs a write and decodes the returned record into out when out is not nil.
func (cl *Client) send(ctx context.Context, op, method, path string, payload, out any, keys ...string) error {
	body, err := cl.do(ctx, call{op: op, method: method, path: path, body: payload})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeRecord(body, out, keys...)
}
