// Package fetch is the metrics client for the churn analytics API. Every
// call decodes JSON at the model boundary and classifies any failure as a
// FetchError; calls are independent, so one failing endpoint never affects
// another issued concurrently.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/retainops/churnview/internal/model"
)

// API endpoint paths.
const (
	PathSummary           = "/api/dashboard/summary"
	PathPriorityCustomers = "/api/dashboard/priority_customers"
	PathCustomers         = "/api/customers"
	PathRiskDistribution  = "/api/risk_distribution"
	PathSegments          = "/api/segments"
	PathKPIs              = "/api/kpis"
	PathPredict           = "/predict"
	PathHealth            = "/health"
)

// Client defines the metrics fetch operations. On error every method also
// returns its zero value so downstream rendering can proceed with neutral
// defaults.
type Client interface {
	Summary(ctx context.Context) (model.KPISummary, error)
	PriorityCustomers(ctx context.Context) ([]model.CustomerRecord, error)
	Customers(ctx context.Context) ([]model.CustomerRecord, error)
	RiskDistribution(ctx context.Context) ([]model.RiskDistributionEntry, error)
	Segments(ctx context.Context) ([]model.SegmentEntry, error)
	KPIReport(ctx context.Context) (model.KPIReport, error)
	Predict(ctx context.Context, req model.PredictionRequest) (model.PredictionResult, error)
	Health(ctx context.Context) error
}

// Option configures the client.
type Option func(*httpClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimiter caps the outbound request rate.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *httpClient) {
		c.limiter = l
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a metrics client against the resolved base URL. There
// is deliberately no retry: a fetch is issued once and either succeeds or
// fails into the banner path.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(20, 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) do(ctx context.Context, method, path string, body io.Reader, into any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &FetchError{Endpoint: path, cause: eris.Wrap(err, "rate limiter wait")}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &FetchError{Endpoint: path, cause: eris.Wrap(err, "create request")}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: path, cause: eris.Wrap(err, "request")}
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Endpoint: path, Status: resp.StatusCode, cause: eris.Wrap(err, "read body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: path, Status: resp.StatusCode, cause: eris.Errorf("unexpected status: %s", raw)}
	}

	if into == nil {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return &FetchError{Endpoint: path, Status: resp.StatusCode, cause: eris.Wrap(err, "decode body")}
	}
	return nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, into any) error {
	return c.do(ctx, http.MethodGet, path, nil, into)
}

func (c *httpClient) postJSON(ctx context.Context, path string, payload, into any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &FetchError{Endpoint: path, cause: eris.Wrap(err, "encode payload")}
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw), into)
}

func (c *httpClient) Summary(ctx context.Context) (model.KPISummary, error) {
	var out model.KPISummary
	if err := c.getJSON(ctx, PathSummary, &out); err != nil {
		return model.KPISummary{}, err
	}
	return out, nil
}

func (c *httpClient) PriorityCustomers(ctx context.Context) ([]model.CustomerRecord, error) {
	var out []model.CustomerRecord
	if err := c.getJSON(ctx, PathPriorityCustomers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Customers(ctx context.Context) ([]model.CustomerRecord, error) {
	var out []model.CustomerRecord
	if err := c.getJSON(ctx, PathCustomers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) RiskDistribution(ctx context.Context) ([]model.RiskDistributionEntry, error) {
	var out []model.RiskDistributionEntry
	if err := c.getJSON(ctx, PathRiskDistribution, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Segments(ctx context.Context) ([]model.SegmentEntry, error) {
	var out []model.SegmentEntry
	if err := c.getJSON(ctx, PathSegments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) KPIReport(ctx context.Context) (model.KPIReport, error) {
	var out model.KPIReport
	if err := c.getJSON(ctx, PathKPIs, &out); err != nil {
		return model.KPIReport{}, err
	}
	return out, nil
}

func (c *httpClient) Predict(ctx context.Context, req model.PredictionRequest) (model.PredictionResult, error) {
	var out model.PredictionResult
	if err := c.postJSON(ctx, PathPredict, req, &out); err != nil {
		return model.PredictionResult{}, err
	}
	return out, nil
}

func (c *httpClient) Health(ctx context.Context) error {
	return c.getJSON(ctx, PathHealth, nil)
}
