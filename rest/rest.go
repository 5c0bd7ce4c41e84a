// Package rest executes Bungie.net calls: it composes requests from the route
// catalog, bounds concurrency, retries throttled calls with backoff and
// classifies failures into apierror kinds.
package rest

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"dario.cat/mergo"
	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/internal/retry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultMaxConcurrency = 30
	DefaultMaxRetries     = 5
	DefaultTimeout        = 30 * time.Second
	DefaultUserAgent      = "kofuk-bungie/1.0"
)

// Sender sends one HTTP request. *http.Client satisfies it.
type Sender interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	// Sender defaults to an *http.Client whose transport is traced with
	// otelhttp. It is created on first use.
	Sender Sender
	Logger *slog.Logger

	MaxConcurrency int64
	// MaxRetries is the retry budget of one logical call. A negative value
	// disables retries.
	MaxRetries int
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// RateLimit shapes request starts, in requests per second. Zero turns it off.
	RateLimit float64
	UserAgent string

	ClientID     string
	ClientSecret string

	Backoff retry.Policy
	// Sleep waits between attempts. Tests replace it to observe backoff.
	Sleep func(ctx context.Context, d time.Duration) error

	TracerProvider trace.TracerProvider
}

type Option func(*Options)

func WithSender(s Sender) Option {
	return func(o *Options) { o.Sender = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithMaxConcurrency(n int64) Option {
	return func(o *Options) { o.MaxConcurrency = n }
}

func WithMaxRetries(n int) Option {
	return func(o *Options) { o.MaxRetries = n }
}

func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

func WithRateLimit(perSecond float64) Option {
	return func(o *Options) { o.RateLimit = perSecond }
}

func WithUserAgent(ua string) Option {
	return func(o *Options) { o.UserAgent = ua }
}

// WithOAuth2Client sets the application credentials used by the token
// endpoint. The secret is empty for public clients.
func WithOAuth2Client(id, secret string) Option {
	return func(o *Options) {
		o.ClientID = id
		o.ClientSecret = secret
	}
}

func WithBackoff(p retry.Policy) Option {
	return func(o *Options) { o.Backoff = p }
}

func WithSleep(f func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Options) { o.Sleep = f }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.TracerProvider = tp }
}

var defaultOptions = Options{
	MaxConcurrency: DefaultMaxConcurrency,
	MaxRetries:     DefaultMaxRetries,
	Timeout:        DefaultTimeout,
	UserAgent:      DefaultUserAgent,
	Backoff:        retry.DefaultPolicy,
}

type Client struct {
	apiKey string
	opts   Options
	logger *slog.Logger
	tracer trace.Tracer

	openOnce   sync.Once
	sender     Sender
	ownsSender bool
	limiter    *limiter
	closed     atomic.Bool
}

func New(apiKey string, opts ...Option) *Client {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	// Only scalar defaults live in defaultOptions, so merging never reaches
	// into caller-owned pointers.
	if err := mergo.Merge(&o, defaultOptions); err != nil {
		panic(err)
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if o.Sleep == nil {
		o.Sleep = retry.Sleep
	}
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		apiKey: apiKey,
		opts:   o,
		logger: logger,
		tracer: tp.Tracer("github.com/kofuk/bungie/rest"),
	}
}

func (c *Client) Options() Options {
	return c.opts
}

// open creates the transport and the limiter on first use.
func (c *Client) open() error {
	if c.closed.Load() {
		return apierror.IO(net.ErrClosed)
	}
	c.openOnce.Do(func() {
		c.sender = c.opts.Sender
		if c.sender == nil {
			c.sender = &http.Client{
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			}
			c.ownsSender = true
		}
		c.limiter = newLimiter(c.opts.MaxConcurrency, c.opts.RateLimit)
		c.logger.Debug("REST client opened", slog.Int64("max_concurrency", c.opts.MaxConcurrency))
	})
	return nil
}

// Close releases the transport. Calls made after Close fail.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	if hc, ok := c.sender.(*http.Client); ok && c.ownsSender {
		hc.CloseIdleConnections()
	}
	return nil
}
