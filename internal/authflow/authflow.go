// Package authflow runs the browser side of the OAuth2 authorization code
// flow on a local callback server.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/rest"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/trace"
)

const (
	CallbackPath = "/callback"
	stateName    = "bungie-oauth-state"
	stateMaxAge  = 10 * time.Minute
)

var (
	ErrInvalidState = errors.New("invalid OAuth2 state")
	ErrDenied       = errors.New("authorization was denied")
)

// Exchanger is the part of the client the flow needs.
type Exchanger interface {
	AuthorizationURL(state string) (rest.OAuth2URL, error)
	FetchOAuth2Tokens(ctx context.Context, code string) (entity.BearerToken, error)
}

type state struct {
	Nonce    string
	IssuedAt int64
}

type result struct {
	token entity.BearerToken
	err   error
}

type Flow struct {
	ex     Exchanger
	codec  *securecookie.SecureCookie
	engine *echo.Echo

	mu     sync.Mutex
	nonce  string
	result chan result
}

// New creates a flow. A random key is used when hashKey is empty, which
// only works within one process.
func New(ex Exchanger, hashKey []byte) *Flow {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(stateMaxAge / time.Second))

	f := &Flow{
		ex:     ex,
		codec:  codec,
		result: make(chan result, 1),
	}
	f.engine = f.newEngine()
	return f
}

func (f *Flow) newEngine() *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(otelecho.Middleware("bungiectl"))
	engine.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURIPath: true,
		LogMethod:  true,
		LogStatus:  true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			var logArgs []any

			span := trace.SpanFromContext(c.Request().Context())
			if span.IsRecording() {
				logArgs = append(logArgs, slog.String("trace_id", span.SpanContext().TraceID().String()))
			}
			logArgs = append(logArgs, slog.Int("status", values.Status))

			// The query carries the authorization code, so only the path is logged.
			slog.Info(fmt.Sprintf("%s %s", values.Method, values.URIPath), logArgs...)
			return nil
		},
	}))
	engine.GET(CallbackPath, f.handleCallback)
	return engine
}

// Handler serves the callback endpoint.
func (f *Flow) Handler() http.Handler {
	return f.engine
}

// Start returns the URL the user should open. Each call invalidates the
// previous one.
func (f *Flow) Start() (string, error) {
	nonce := uuid.NewString()
	encoded, err := f.codec.Encode(stateName, state{Nonce: nonce, IssuedAt: time.Now().Unix()})
	if err != nil {
		return "", err
	}
	u, err := f.ex.AuthorizationURL(encoded)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	f.nonce = nonce
	f.mu.Unlock()
	return u.URL, nil
}

func (f *Flow) verify(encoded string) error {
	var s state
	if err := f.codec.Decode(stateName, encoded, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.nonce == "" || s.Nonce != f.nonce {
		return ErrInvalidState
	}
	f.nonce = ""
	return nil
}

func (f *Flow) deliver(r result) {
	select {
	case f.result <- r:
	default:
	}
}

func (f *Flow) handleCallback(c echo.Context) error {
	if reason := c.QueryParam("error"); reason != "" {
		f.deliver(result{err: fmt.Errorf("%w: %s", ErrDenied, reason)})
		return c.String(http.StatusForbidden, "Authorization was denied. You can close this window.")
	}

	if err := f.verify(c.QueryParam("state")); err != nil {
		slog.Warn("Rejected OAuth2 callback", slog.Any("error", err))
		return c.String(http.StatusBadRequest, "Invalid state.")
	}

	code := c.QueryParam("code")
	if code == "" {
		return c.String(http.StatusBadRequest, "Missing authorization code.")
	}

	token, err := f.ex.FetchOAuth2Tokens(c.Request().Context(), code)
	if err != nil {
		slog.Error("Failed to exchange authorization code", slog.Any("error", err))
		f.deliver(result{err: err})
		return c.String(http.StatusBadGateway, "Failed to fetch tokens.")
	}

	f.deliver(result{token: token})
	return c.String(http.StatusOK, "Signed in. You can close this window.")
}

// Wait blocks until the callback delivers a token or ctx ends.
func (f *Flow) Wait(ctx context.Context) (entity.BearerToken, error) {
	select {
	case r := <-f.result:
		return r.token, r.err
	case <-ctx.Done():
		return entity.BearerToken{}, ctx.Err()
	}
}

// Run serves the callback on addr until a token arrives or ctx ends. open is
// called with the authorization URL once the server is listening.
func (f *Flow) Run(ctx context.Context, addr string, open func(url string)) (entity.BearerToken, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return entity.BearerToken{}, err
	}
	f.engine.Listener = ln

	go func() {
		if err := f.engine.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.deliver(result{err: err})
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := f.engine.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop callback server", slog.Any("error", err))
		}
	}()

	authURL, err := f.Start()
	if err != nil {
		return entity.BearerToken{}, err
	}
	open(authURL)

	return f.Wait(ctx)
}
