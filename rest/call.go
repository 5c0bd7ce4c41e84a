package rest

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

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/internal/route"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type responseMode int

const (
	// modeEnvelope responses carry the platform envelope.
	modeEnvelope responseMode = iota
	// modeToken is the OAuth2 token endpoint, plain JSON on success.
	modeToken
	// modeRaw returns the body untouched, for CDN downloads.
	modeRaw
)

type call struct {
	*route.Binding
	mode  responseMode
	token Token
}

type outcome struct {
	verdict  apierror.Verdict
	body     []byte
	throttle time.Duration
	err      *apierror.Error
}

// Do calls op and returns the Response member of the envelope, which may be
// an empty object.
func (c *Client) Do(ctx context.Context, op route.Op, params route.Params, token Token) (json.RawMessage, error) {
	b, err := route.Compile(op, params)
	if err != nil {
		return nil, err
	}
	if b.Auth == route.AuthRequired && token == "" {
		return nil, &apierror.Error{
			Kind:    apierror.KindUnauthorized,
			Message: fmt.Sprintf("%s requires an OAuth2 access token with scope %s", op, b.Scope),
		}
	}

	mode := modeEnvelope
	if op == route.OpGetOAuthToken {
		mode = modeToken
	}
	return c.execute(ctx, &call{Binding: b, mode: mode, token: token})
}

type staticRequest struct {
	query url.Values
	body  any
	token Token
}

type StaticOption func(*staticRequest)

func WithQuery(q url.Values) StaticOption {
	return func(r *staticRequest) { r.query = q }
}

func WithJSONBody(v any) StaticOption {
	return func(r *staticRequest) { r.body = v }
}

func WithToken(t Token) StaticOption {
	return func(r *staticRequest) { r.token = t }
}

// Static calls a platform path that is not in the route catalog. path is
// relative to the platform base unless it is an absolute URL.
func (c *Client) Static(ctx context.Context, method, path string, opts ...StaticOption) (json.RawMessage, error) {
	var r staticRequest
	for _, opt := range opts {
		opt(&r)
	}

	target := path
	if !strings.HasPrefix(path, "https://") && !strings.HasPrefix(path, "http://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		target = route.BaseURL + path
	}
	if len(r.query) > 0 {
		target += "?" + strings.ReplaceAll(r.query.Encode(), "%2C", ",")
	}

	b := &route.Binding{
		Op:     route.Op("Static"),
		Method: method,
		URL:    target,
		Route:  path,
		Header: make(http.Header),
	}
	b.Header.Set("Accept", "application/json")
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, apierror.InvalidArgument("encode body: %v", err)
		}
		b.Body = data
		b.Header.Set("Content-Type", "application/json")
	} else if method == http.MethodPost {
		b.Body = []byte("{}")
		b.Header.Set("Content-Type", "application/json")
	}

	return c.execute(ctx, &call{Binding: b, mode: modeEnvelope, token: r.token})
}

// DownloadBaseURL is prepended to relative download paths such as the
// manifest content paths.
const DownloadBaseURL = "https://www.bungie.net"

// Download fetches raw bytes, such as a manifest database.
func (c *Client) Download(ctx context.Context, target string) ([]byte, error) {
	if strings.HasPrefix(target, "/") {
		target = DownloadBaseURL + target
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return nil, apierror.InvalidArgument("invalid download URL %q", target)
	}

	b := &route.Binding{
		Op:     route.Op("Download"),
		Method: http.MethodGet,
		URL:    target,
		Route:  u.Path,
		Header: make(http.Header),
	}
	return c.execute(ctx, &call{Binding: b, mode: modeRaw})
}

func (c *Client) execute(ctx context.Context, cl *call) ([]byte, error) {
	if err := c.open(); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "bungie."+string(cl.Op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", cl.Method),
			attribute.String("bungie.route", cl.Route),
		))
	defer span.End()

	started := time.Now()
	backoff := c.opts.Backoff.Start()
	for attempt := 0; ; attempt++ {
		c.logger.Debug("Calling Bungie.net",
			slog.String("state", "queued"), slog.String("op", string(cl.Op)), slog.Int("attempt", attempt))

		out := c.attempt(ctx, cl, attempt)
		switch out.verdict {
		case apierror.VerdictSuccess:
			span.SetStatus(codes.Ok, "")
			c.logger.Debug("Call done",
				slog.String("state", "done"), slog.String("op", string(cl.Op)), slog.Duration("elapsed", time.Since(started)))
			return out.body, nil
		case apierror.VerdictFail:
			return nil, c.fail(span, out.err)
		}

		if attempt >= c.opts.MaxRetries {
			return nil, c.fail(span, out.err)
		}

		wait := backoff.Next()
		if out.throttle > wait {
			wait = out.throttle
		}
		c.logger.Debug("Retrying Bungie.net call",
			slog.String("state", "retrying"),
			slog.String("op", string(cl.Op)),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", out.err))

		if err := c.opts.Sleep(ctx, wait); err != nil {
			return nil, c.fail(span, apierror.Cancelled(err))
		}
	}
}

func (c *Client) fail(span trace.Span, err *apierror.Error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Kind.String())
	return err
}

// attempt sends cl once. The slot is held until the body has been read and
// released before any backoff sleep.
func (c *Client) attempt(ctx context.Context, cl *call, n int) outcome {
	if err := c.limiter.acquire(ctx); err != nil {
		return outcome{verdict: apierror.VerdictFail, err: apierror.Cancelled(err)}
	}
	defer c.limiter.release()

	reqCtx := ctx
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, cl.Method, cl.URL, bytes.NewReader(cl.Body))
	if err != nil {
		return outcome{verdict: apierror.VerdictFail, err: apierror.InvalidArgument("%s: %v", cl.Op, err)}
	}
	req.Header = cl.Header.Clone()
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if c.apiKey != "" && cl.mode != modeRaw {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if auth, ok := cl.token.authorization(); ok {
		req.Header.Set("Authorization", auth)
	}

	c.trace(ctx, "Request", req.Header.Get("Content-Type"), cl.Body,
		slog.String("method", cl.Method), slog.String("url", cl.URL))

	c.logger.Debug("Sending request",
		slog.String("state", "sending"), slog.String("method", cl.Method), slog.String("url", cl.URL), slog.Int("attempt", n))
	start := time.Now()

	resp, err := c.sender.Do(req)
	if err != nil {
		return c.transportError(ctx, cl, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Awaiting response", slog.String("state", "awaiting_response"), slog.String("url", cl.URL))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, cl, err)
	}

	out := c.classify(ctx, cl, resp.StatusCode, body)
	c.logger.Debug("Response received",
		slog.String("method", cl.Method),
		slog.String("url", cl.URL),
		slog.Int("status", resp.StatusCode),
		slog.Int("attempt", n),
		slog.Duration("elapsed", time.Since(start)))
	c.trace(ctx, "Response", resp.Header.Get("Content-Type"), body,
		slog.String("url", cl.URL), slog.Int("status", resp.StatusCode))

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if out.err != nil {
		span.SetAttributes(
			attribute.Int("bungie.error_code", out.err.Code),
			attribute.String("bungie.error_status", out.err.Status))
	}
	return out
}

func (c *Client) transportError(ctx context.Context, cl *call, err error) outcome {
	if ctx.Err() != nil {
		return outcome{verdict: apierror.VerdictFail, err: apierror.Cancelled(ctx.Err())}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("attempt timed out after %s: %w", c.opts.Timeout, err)
	}
	return outcome{
		verdict: apierror.VerdictRetry,
		err:     &apierror.Error{Kind: apierror.KindUpstreamUnavailable, Message: fmt.Sprintf("%s %s", cl.Method, cl.Route), Err: err},
	}
}

func (c *Client) classify(ctx context.Context, cl *call, status int, body []byte) outcome {
	var out outcome
	switch cl.mode {
	case modeEnvelope:
		out = classifyEnvelope(status, body)
	case modeToken:
		out = classifyToken(status, body)
	default:
		out = classifyRaw(status, body)
	}
	if out.err != nil && c.tracing(ctx) {
		out.err.Path = cl.Route
		out.err.Raw = body
	}
	return out
}

func classifyEnvelope(status int, body []byte) outcome {
	env, ok := parseEnvelope(body)
	if !ok {
		if status >= 200 && status < 300 {
			return outcome{
				verdict: apierror.VerdictFail,
				err:     apierror.InvalidPayload(nil, "response is not an envelope"),
			}
		}
		return classifyRaw(status, body)
	}

	verdict, kind := apierror.Classify(status, env.ErrorCode, env.ErrorStatus)
	if verdict == apierror.VerdictSuccess {
		return outcome{verdict: verdict, body: env.Response}
	}

	out := outcome{
		verdict: verdict,
		err: &apierror.Error{
			Kind:            kind,
			HTTPStatus:      status,
			Code:            env.ErrorCode,
			Status:          env.ErrorStatus,
			Message:         env.Message,
			MessageData:     env.MessageData,
			ThrottleSeconds: env.ThrottleSeconds,
		},
	}
	if env.ThrottleSeconds > 0 {
		out.throttle = time.Duration(env.ThrottleSeconds) * time.Second
	}
	return out
}

type tokenError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func classifyToken(status int, body []byte) outcome {
	if status >= 200 && status < 300 {
		return outcome{verdict: apierror.VerdictSuccess, body: body}
	}
	if status == http.StatusTooManyRequests || status >= 500 {
		return classifyRaw(status, body)
	}

	var te tokenError
	if err := json.Unmarshal(body, &te); err != nil || te.Error == "" {
		return classifyRaw(status, body)
	}
	kind := apierror.KindBadRequest
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		kind = apierror.KindUnauthorized
	}
	return outcome{
		verdict: apierror.VerdictFail,
		err: &apierror.Error{
			Kind:       kind,
			HTTPStatus: status,
			Status:     te.Error,
			Message:    te.Description,
		},
	}
}

func classifyRaw(status int, body []byte) outcome {
	if status >= 200 && status < 300 {
		return outcome{verdict: apierror.VerdictSuccess, body: body}
	}

	err := &apierror.Error{
		Kind:       apierror.KindHTTPError,
		HTTPStatus: status,
		Message:    snippet(body),
	}
	switch {
	case status == http.StatusTooManyRequests:
		err.Kind = apierror.KindRateLimited
		return outcome{verdict: apierror.VerdictRetry, err: err}
	case status >= 500:
		err.Kind = apierror.KindUpstreamUnavailable
		return outcome{verdict: apierror.VerdictRetry, err: err}
	}
	return outcome{verdict: apierror.VerdictFail, err: err}
}

func snippet(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
