package assemblyai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medication-adherence/internal/platform/httpclient"
	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/platform/metrics"
	"medication-adherence/internal/ports/extraction"
)

const (
	DefaultBaseURL      = "https://api.assemblyai.com"
	DefaultPollInterval = time.Second
	DefaultPollMax      = 5 * time.Second
	DefaultPollTimeout  = 3 * time.Minute

	providerName = "assemblyai"
)

type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     logger.Logger

	// Polling del job de transcripción.
	PollInterval time.Duration
	PollTimeout  time.Duration

	Transport http.RoundTripper
}

// Client sube el audio, crea el job y espera el resultado.
type Client struct {
	http         *httpclient.Client
	log          logger.Logger
	pollInterval time.Duration
	pollTimeout  time.Duration
}

var _ extraction.Transcriber = (*Client)(nil)

func New(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, errors.New("assemblyai: api key required")
	}
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:    base,
		Timeout:    opts.Timeout,
		MaxRetries: opts.MaxRetries,
		Headers:    map[string]string{"Authorization": key},
		Transport:  opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("assemblyai: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		http:         hc,
		log:          log.With(map[string]any{"provider": providerName}),
		pollInterval: opts.PollInterval,
		pollTimeout:  opts.PollTimeout,
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.pollTimeout <= 0 {
		c.pollTimeout = DefaultPollTimeout
	}
	return c, nil
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptRequest struct {
	AudioURL string `json:"audio_url"`
}

type transcript struct {
	ID     string `json:"id"`
	Status string `json:"status"` // queued | processing | completed | error
	Text   string `json:"text"`
	Error  string `json:"error"`
}

func (c *Client) Transcribe(ctx context.Context, a extraction.Audio) (string, error) {
	text, err := c.transcribe(ctx, a)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(providerName, "error").Inc()
		return "", err
	}
	metrics.ProviderRequests.WithLabelValues(providerName, "ok").Inc()
	return text, nil
}

func (c *Client) transcribe(ctx context.Context, a extraction.Audio) (string, error) {
	if len(a.Data) == 0 {
		return "", errors.New("assemblyai: empty audio")
	}

	var up uploadResponse
	if err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    "/v2/upload",
		Headers: map[string]string{"Content-Type": "application/octet-stream"},
		Body:    a.Data,
	}, &up); err != nil {
		return "", fmt.Errorf("assemblyai: upload: %w", err)
	}
	if up.UploadURL == "" {
		return "", errors.New("assemblyai: upload returned no url")
	}

	var job transcript
	if err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v2/transcript",
		Body:   transcriptRequest{AudioURL: up.UploadURL},
	}, &job); err != nil {
		return "", fmt.Errorf("assemblyai: create transcript: %w", err)
	}
	if job.ID == "" {
		return "", errors.New("assemblyai: transcript id missing")
	}

	c.log.Debug("transcript queued", map[string]any{"transcript_id": job.ID, "file": a.Name})

	pctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	var result transcript
	err := httpclient.Poll(pctx, c.pollInterval, DefaultPollMax, func(ctx context.Context) (bool, error) {
		if err := c.http.DoJSON(ctx, httpclient.Request{
			Method: http.MethodGet,
			Path:   "/v2/transcript/" + job.ID,
		}, &result); err != nil {
			return false, err
		}
		switch result.Status {
		case "completed":
			return true, nil
		case "error":
			return false, fmt.Errorf("transcription failed: %s", result.Error)
		default:
			return false, nil
		}
	})
	if err != nil {
		return "", fmt.Errorf("assemblyai: poll %s: %w", job.ID, err)
	}

	return strings.TrimSpace(result.Text), nil
}
