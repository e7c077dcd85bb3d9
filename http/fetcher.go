// Package http provides an HTTP implementation of botica.Fetcher for
// reading storefront pages without JavaScript rendering.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/botica"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/publicsuffix"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 25 * time.Second

// DefaultUserAgent identifies the client as a generic desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultAcceptLanguage prefers Spanish content.
const DefaultAcceptLanguage = "es-ES,es;q=0.9"

// maxBodyBytes caps the size of a page read into memory.
const maxBodyBytes = 8 << 20

// Ensure Fetcher implements botica.Fetcher at compile time.
var _ botica.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content using plain GET requests over a shared
// keep-alive transport. It is safe for concurrent use.
type Fetcher struct {
	client         *http.Client
	transport      *http.Transport
	timeout        time.Duration
	maxConns       int
	userAgent      string
	acceptLanguage string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (25s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxConnsPerHost sizes the idle connection pool per host.
// It should match the number of concurrent workers.
func WithMaxConnsPerHost(n int) Option {
	return func(f *Fetcher) {
		f.maxConns = n
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAcceptLanguage overrides the Accept-Language header.
func WithAcceptLanguage(lang string) Option {
	return func(f *Fetcher) {
		f.acceptLanguage = lang
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultFetchTimeout,
		maxConns:       5,
		userAgent:      DefaultUserAgent,
		acceptLanguage: DefaultAcceptLanguage,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.transport = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          f.maxConns * 2,
		MaxIdleConnsPerHost:   f.maxConns,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	// cookiejar.New only fails when given invalid options.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	f.client = &http.Client{
		Transport: f.transport,
		Jar:       jar,
		Timeout:   f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", botica.Errorf(botica.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", f.acceptLanguage)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", botica.Errorf(botica.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", botica.Errorf(botica.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", botica.Errorf(botica.EUNAVAILABLE, "read %s: %v", url, err)
	}
	if len(raw) == 0 {
		return "", nil
	}

	body, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", botica.Errorf(botica.EUNAVAILABLE, "decode %s: %v", url, err)
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", botica.Errorf(botica.EUNAVAILABLE, "decode %s: %v", url, err)
	}

	return string(b), nil
}

// Close drops idle connections held by the transport.
func (f *Fetcher) Close() error {
	f.transport.CloseIdleConnections()
	return nil
}
