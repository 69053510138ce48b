package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultBaseBackoff = 500 * time.Millisecond
	DefaultMaxInterval = 5 * time.Second
)

// Options de construcción. Todo viene del config del servicio que lo instancia.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int               // reintentos además del primer intento
	Headers    map[string]string // headers fijos (api keys, etc.)

	// Opcionales (tests).
	Transport   http.RoundTripper
	BaseBackoff time.Duration
}

// Client envuelve resty con reintentos exponenciales para adapters de proveedores.
type Client struct {
	rc          *resty.Client
	maxRetries  int
	baseBackoff time.Duration
}

// New crea un Client. BaseURL es obligatorio: los proveedores siempre lo tienen.
func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return nil, errors.New("httpclient: base url required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	bb := opts.BaseBackoff
	if bb <= 0 {
		bb = DefaultBaseBackoff
	}
	retries := opts.MaxRetries
	if retries < 0 {
		retries = 0
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	for k, v := range opts.Headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		rc.SetHeader(k, v)
	}
	if opts.Transport != nil {
		rc.SetTransport(opts.Transport)
	}

	return &Client{rc: rc, maxRetries: retries, baseBackoff: bb}, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Retryable: 429 y 5xx se reintentan; el resto de 4xx no.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Request describe una llamada. Body puede ser un struct (JSON) o []byte (raw).
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]string
	Body    any
}

// Do ejecuta con reintentos y devuelve el body crudo de una respuesta 2xx.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	if c == nil || c.rc == nil {
		return nil, errors.New("httpclient: nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	var raw []byte
	op := func() error {
		r := c.rc.R().SetContext(ctx)
		if len(req.Headers) > 0 {
			r.SetHeaders(req.Headers)
		}
		if len(req.Query) > 0 {
			r.SetQueryParams(req.Query)
		}
		if req.Body != nil {
			if _, isRaw := req.Body.([]byte); !isRaw {
				r.SetHeader("Content-Type", "application/json")
			}
			r.SetBody(req.Body)
		}

		resp, err := r.Execute(method, req.Path)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("httpclient: do request: %w", err)
		}

		if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
			herr := &HTTPError{
				StatusCode: resp.StatusCode(),
				Body:       truncate(strings.TrimSpace(resp.String()), 1<<10),
			}
			if herr.Retryable() {
				return herr
			}
			return backoff.Permanent(herr)
		}

		raw = resp.Body()
		return nil
	}

	if err := backoff.Retry(op, c.policy(ctx)); err != nil {
		return nil, err
	}
	return raw, nil
}

// DoJSON hace el request y decodifica la respuesta en out (si out != nil).
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	raw, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// Poll repite fn con backoff exponencial hasta que devuelva done=true,
// un error, o se agote ctx. Pensado para jobs asíncronos (transcripción).
func Poll(ctx context.Context, interval, maxInterval time.Duration, fn func(ctx context.Context) (bool, error)) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = interval
	exp.MaxInterval = maxInterval
	exp.Multiplier = 1.5
	exp.MaxElapsedTime = 0 // lo corta el ctx
	exp.Reset()

	errPending := errors.New("pending")
	return backoff.Retry(func() error {
		done, err := fn(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !done {
			return errPending
		}
		return nil
	}, backoff.WithContext(exp, ctx))
}

func (c *Client) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.baseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = DefaultMaxInterval
	exp.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.maxRetries)), ctx)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
