package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"countryexplorer/internal/domain"
)

const (
	// SummaryFields is the field set requested by list queries
	SummaryFields = "name,flags,population,region,capital,cca3"

	// DetailFields is the field set requested by single-country lookups
	DetailFields = "name,flags,population,region,subregion,capital,languages,currencies,borders,timezones,cca3"
)

// Operation names used in logs, metrics and errors
const (
	OpFetchAll         = "fetch_all"
	OpSearch           = "search"
	OpFilterByRegion   = "filter_region"
	OpFetchByCode      = "fetch_code"
	OpFetchByExactName = "fetch_name"
)

// Observer receives one call per completed request
type Observer interface {
	ObserveRequest(op, outcome string, d time.Duration)
}

// Client is a stateless REST Countries v3.1 client. Each operation issues
// exactly one GET and never retries.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *slog.Logger
	observer Observer
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets a per-request timeout on the underlying HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = &http.Client{Timeout: d, Transport: c.http.Transport}
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithObserver reports request outcomes and latency to o
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll returns every country with the summary field set
func (c *Client) FetchAll(ctx context.Context) ([]domain.CountrySummary, error) {
	var out []domain.CountrySummary
	if err := c.getJSON(ctx, OpFetchAll, KindFetchFailed, "/all?fields="+SummaryFields, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// SearchByTerm returns countries whose name matches term. A blank term returns
// an empty result without a request; a 404 from the API is an empty result.
func (c *Client) SearchByTerm(ctx context.Context, term string) ([]domain.CountrySummary, error) {
	if strings.TrimSpace(term) == "" {
		return []domain.CountrySummary{}, nil
	}

	var out []domain.CountrySummary
	err := c.getJSON(ctx, OpSearch, KindSearchFailed, "/name/"+url.PathEscape(term)+"?fields="+SummaryFields, &out)
	if statusOf(err) == http.StatusNotFound {
		return []domain.CountrySummary{}, nil
	}
	if err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// FilterByRegion returns the countries of region. Unlike search, a 404 is a
// FilterFailed error.
func (c *Client) FilterByRegion(ctx context.Context, region string) ([]domain.CountrySummary, error) {
	var out []domain.CountrySummary
	if err := c.getJSON(ctx, OpFilterByRegion, KindFilterFailed, "/region/"+url.PathEscape(region)+"?fields="+SummaryFields, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// FetchByCode returns the detail record for a country code
func (c *Client) FetchByCode(ctx context.Context, code string) (*domain.CountryDetail, error) {
	return c.fetchDetail(ctx, OpFetchByCode, "/alpha/"+url.PathEscape(code)+"?fields="+DetailFields)
}

// FetchByExactName returns the detail record of the country whose name is exactly name
func (c *Client) FetchByExactName(ctx context.Context, name string) (*domain.CountryDetail, error) {
	return c.fetchDetail(ctx, OpFetchByExactName, "/name/"+url.PathEscape(name)+"?fullText=true&fields="+DetailFields)
}

func (c *Client) fetchDetail(ctx context.Context, op, endpoint string) (*domain.CountryDetail, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, op, KindFetchDetailFailed, endpoint, &raw)
	if statusOf(err) == http.StatusNotFound {
		return nil, &Error{Kind: KindCountryNotFound, Op: op, Status: http.StatusNotFound}
	}
	if err != nil {
		return nil, err
	}

	detail, err := decodeDetail(raw)
	if err != nil {
		kind := KindFetchDetailFailed
		if errors.Is(err, errEmptyResult) {
			kind = KindCountryNotFound
		}
		return nil, &Error{Kind: kind, Op: op, Status: http.StatusOK, Err: err}
	}
	return detail, nil
}

var errEmptyResult = errors.New("empty result")

// decodeDetail accepts either an array of records, taking the first, or a bare object
func decodeDetail(raw json.RawMessage) (*domain.CountryDetail, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errEmptyResult
	}
	if trimmed[0] == '[' {
		var list []domain.CountryDetail
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode detail array: %w", err)
		}
		if len(list) == 0 {
			return nil, errEmptyResult
		}
		return &list[0], nil
	}

	var detail domain.CountryDetail
	if err := json.Unmarshal(trimmed, &detail); err != nil {
		return nil, fmt.Errorf("decode detail object: %w", err)
	}
	return &detail, nil
}

// getJSON issues one GET against endpoint and decodes a 2xx body into out.
// Every failure is returned as *Error carrying kind.
func (c *Client) getJSON(ctx context.Context, op string, kind ErrorKind, endpoint string, out any) (err error) {
	reqID := uuid.NewString()
	start := time.Now()
	status := 0

	defer func() {
		elapsed := time.Since(start)
		outcome := "ok"
		if err != nil {
			outcome = string(kind)
			if status == http.StatusNotFound {
				outcome = "not_found"
			}
		}
		if c.observer != nil {
			c.observer.ObserveRequest(op, outcome, elapsed)
		}
		c.log.Debug("countries request",
			"request_id", reqID,
			"op", op,
			"status", status,
			"outcome", outcome,
			"duration", elapsed,
			"error", err,
		)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &Error{Kind: kind, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: kind, Op: op, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Kind: kind, Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: kind, Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func statusOf(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Status
	}
	return 0
}

func nonNil(list []domain.CountrySummary) []domain.CountrySummary {
	if list == nil {
		return []domain.CountrySummary{}
	}
	return list
}
