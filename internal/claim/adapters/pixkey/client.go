// Package pixkey is the HTTP client for the service that owns the Pix-key state
// machine.
package pixkey

import (
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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/ports"
	dErrors "pixclaim/pkg/domain-errors"
	"pixclaim/pkg/platform/circuit"
	"pixclaim/pkg/platform/sentinel"
	"pixclaim/pkg/requestcontext"
)

const (
	defaultTimeout  = 5 * time.Second
	tokenTTL        = time.Minute
	tokenSubject    = "pixclaim"
	tokenScope      = "pix-keys:claims"
	maxErrorBodyLen = 4 << 10
)

// Transition paths, relative to /v1/pix-keys/{key}/.
const (
	pathConfirmPortability  = "claims/portability/confirm"
	pathCancelPortability   = "claims/portability/cancel"
	pathCompletePortability = "claims/portability/complete"
	pathReadyPortability    = "claims/portability/ready"
	pathWaitOwnership       = "claims/ownership/wait"
	pathConfirmOwnership    = "claims/ownership/confirm"
	pathCancelOwnership     = "claims/ownership/cancel"
	pathCompleteOwnership   = "claims/ownership/complete"
	pathReadyOwnership      = "claims/ownership/ready"
	pathCompleteClosing     = "claims/closing/complete"
)

// TokenSigner mints the bearer token sent with every call.
type TokenSigner interface {
	GenerateServiceToken(subject, scope string, expiresIn time.Duration) (string, error)
}

// Client calls the Pix-key service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     TokenSigner
	logger     *slog.Logger
	tracer     trace.Tracer
	breaker    *circuit.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithTimeout sets the per-call timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.httpClient.Timeout = d
		}
	}
}

// WithSigner attaches a bearer token to every request.
func WithSigner(s TokenSigner) Option {
	return func(cl *Client) {
		cl.signer = s
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		if logger != nil {
			cl.logger = logger
		}
	}
}

// WithBreaker fails calls fast while b is open. Only unavailable and timeout
// errors count as failures.
func WithBreaker(b *circuit.Breaker) Option {
	return func(cl *Client) {
		cl.breaker = b
	}
}

// New constructs a client for baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid pix key service url %q: %w", baseURL, err)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer("pixclaim/pixkey"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type keyStateResponse struct {
	Key   string `json:"key"`
	State string `json:"state"`
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// GetKeyState returns the current state of key.
func (c *Client) GetKeyState(ctx context.Context, key string) (models.KeyState, error) {
	var out keyStateResponse
	if err := c.do(ctx, http.MethodGet, key, "state", &out); err != nil {
		return "", err
	}
	if out.State == "" {
		return "", dErrors.New(dErrors.CodeInternal, "pix key service returned an empty state")
	}
	return models.KeyState(out.State), nil
}

func (c *Client) ConfirmPortabilityClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathConfirmPortability, nil)
}

func (c *Client) CancelPortabilityClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathCancelPortability, nil)
}

func (c *Client) CompletePortabilityClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathCompletePortability, nil)
}

func (c *Client) ReadyPortabilityClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathReadyPortability, nil)
}

func (c *Client) WaitOwnershipClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathWaitOwnership, nil)
}

func (c *Client) ConfirmOwnershipClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathConfirmOwnership, nil)
}

func (c *Client) CancelOwnershipClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathCancelOwnership, nil)
}

func (c *Client) CompleteOwnershipClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathCompleteOwnership, nil)
}

func (c *Client) ReadyOwnershipClaim(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathReadyOwnership, nil)
}

func (c *Client) CompleteClaimClosing(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, key, pathCompleteClosing, nil)
}

func (c *Client) do(ctx context.Context, method, key, path string, out any) error {
	ctx, span := c.tracer.Start(ctx, "pixkey."+path, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("pixkey.path", path),
		))
	defer span.End()

	var err error
	if c.breaker != nil && !c.breaker.Allow() {
		err = dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, "pix key service circuit open")
	} else {
		err = c.roundTrip(ctx, method, key, path, out)
		c.record(ctx, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "pix key service call failed",
			"request_id", requestcontext.RequestID(ctx),
			"method", method,
			"path", path,
			"error", err,
		)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, key, path string, out any) error {
	endpoint := fmt.Sprintf("%s/v1/pix-keys/%s/%s", c.baseURL, url.PathEscape(key), path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to build pix key service request")
	}
	req.Header.Set("Accept", "application/json")
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if c.signer != nil {
		token, err := c.signer.GenerateServiceToken(tokenSubject, tokenScope, tokenTTL)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign pix key service token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "pix key service timed out")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "pix key service unreachable")
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to decode pix key service response")
		}
		return nil
	}
	return statusError(resp, key)
}

func (c *Client) record(ctx context.Context, err error) {
	if c.breaker == nil {
		return
	}
	var change circuit.Change
	switch dErrors.CodeOf(err) {
	case dErrors.CodeUnavailable, dErrors.CodeTimeout:
		_, change = c.breaker.RecordFailure()
	default:
		_, change = c.breaker.RecordSuccess()
	}
	if change.Opened {
		c.logger.ErrorContext(ctx, "pix key service circuit opened", "breaker", c.breaker.Name())
	}
	if change.Closed {
		c.logger.InfoContext(ctx, "pix key service circuit closed", "breaker", c.breaker.Name())
	}
}

func statusError(resp *http.Response, key string) error {
	msg := fmt.Sprintf("pix key service returned %d", resp.StatusCode)
	var body errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	if json.Unmarshal(raw, &body) == nil && body.Description != "" {
		msg += ": " + body.Description
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return dErrors.Wrap(fmt.Errorf("pix key %s: %w", key, sentinel.ErrNotFound), dErrors.CodeNotFound, msg)
	case resp.StatusCode == http.StatusConflict:
		return dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, msg)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return dErrors.New(dErrors.CodeUnauthorized, msg)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, msg)
	case resp.StatusCode >= 400:
		return dErrors.New(dErrors.CodeBadRequest, msg)
	default:
		return dErrors.New(dErrors.CodeInternal, msg)
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

var _ ports.PixKeyService = (*Client)(nil)
