// Package weather fetches a one-line current-conditions report.
//
// The provider is wttr.in using its custom one-line format, so the response is
// a single pipe-separated line rather than JSON.
package weather

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Units selects the measurement system.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// Report is the current conditions at a location.
type Report struct {
	Location    string
	Condition   string
	Temperature string
	Wind        string
	Humidity    string
	FetchedAt   time.Time
}

// Fetcher is implemented by *Client and by test doubles.
type Fetcher interface {
	Fetch(ctx context.Context) (Report, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the weather provider.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	location  string
	units     Units
	userAgent string
	now       func() time.Time
}

const (
	defaultBaseURL   = "https://wttr.in"
	defaultUserAgent = "newtab/0.1"
	requestTimeout   = 5 * time.Second

	// location|condition|temperature|wind|humidity
	lineFormat = "%l|%C|%t|%w|%h"
	fieldCount = 5
)

// Options configure a Client.
type Options struct {
	BaseURL  string
	Location string
	Units    Units
}

// NewClient builds a Client. An empty BaseURL uses wttr.in and an empty
// Location lets the provider geolocate the caller.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = defaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse weather base url %q: %w", raw, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("weather base url %q must include scheme and host", raw)
	}
	units := opts.Units
	if units != Imperial {
		units = Metric
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		location:  strings.TrimSpace(opts.Location),
		units:     units,
		userAgent: defaultUserAgent,
		now:       time.Now,
	}, nil
}

// Fetch retrieves the current report.
func (c *Client) Fetch(ctx context.Context) (Report, error) {
	if c == nil {
		return Report{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + c.location, RawQuery: c.query()}
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Report{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Report{}, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}
	report, err := parseLine(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return Report{}, err
	}
	report.FetchedAt = c.now()
	return report, nil
}

func (c *Client) query() string {
	values := url.Values{}
	values.Set("format", lineFormat)
	flag := "m"
	if c.units == Imperial {
		flag = "u"
	}
	return values.Encode() + "&" + flag
}

func parseLine(r io.Reader) (Report, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Report{}, fmt.Errorf("read response: %w", err)
		}
		return Report{}, fmt.Errorf("empty weather response")
	}
	fields := strings.Split(strings.TrimSpace(scanner.Text()), "|")
	if len(fields) != fieldCount {
		return Report{}, fmt.Errorf("unexpected weather line: %d fields, want %d", len(fields), fieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return Report{
		Location:    fields[0],
		Condition:   fields[1],
		Temperature: fields[2],
		Wind:        fields[3],
		Humidity:    fields[4],
	}, nil
}
