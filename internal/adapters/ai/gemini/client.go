package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/platform/httpclient"
	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/platform/metrics"
	"medication-adherence/internal/ports/extraction"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"

	providerName = "gemini"
)

type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     logger.Logger

	// Opcional (tests).
	Transport http.RoundTripper
}

// Client habla con la API generateContent. Implementa extraction.Extractor
// y adherence.Summarizer.
type Client struct {
	http   *httpclient.Client
	apiKey string
	model  string
	log    logger.Logger
}

var (
	_ extraction.Extractor = (*Client)(nil)
	_ adherence.Summarizer = (*Client)(nil)
)

func New(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, errors.New("gemini: api key required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:    base,
		Timeout:    opts.Timeout,
		MaxRetries: opts.MaxRetries,
		Transport:  opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		http:   hc,
		apiKey: key,
		model:  model,
		log:    log.With(map[string]any{"provider": providerName}),
	}, nil
}

// ExtractFile manda la imagen o el PDF inline. Gemini lee PDFs de varias
// páginas en un solo request, así que el resultado es una única página lógica.
func (c *Client) ExtractFile(ctx context.Context, f extraction.File) ([]extraction.Page, error) {
	text, err := c.generate(ctx, []part{
		{InlineData: &inlineData{
			MIMEType: f.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(f.Data),
		}},
		{Text: filePrompt},
	})
	if err != nil {
		return nil, err
	}
	return []extraction.Page{c.decode(text)}, nil
}

func (c *Client) ExtractText(ctx context.Context, text string) (extraction.Page, error) {
	out, err := c.generate(ctx, []part{{Text: textPrompt + text}})
	if err != nil {
		return nil, err
	}
	return c.decode(out), nil
}

// Summarize pide un párrafo corto a partir de las estadísticas ya calculadas.
// Los números los calcula el dominio; el modelo solo redacta.
func (c *Client) Summarize(ctx context.Context, patientID string, stats adherence.Stats) (string, error) {
	payload, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", err
	}
	out, err := c.generate(ctx, []part{{Text: summaryPrompt + string(payload)}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(StripFences(out)), nil
}

func (c *Client) decode(text string) extraction.Page {
	page, err := DecodeCandidates(text)
	if err != nil {
		c.log.Warn("unparseable model output, treating as no candidates", map[string]any{
			"error": err.Error(),
			"bytes": len(text),
		})
		return extraction.Page{}
	}
	return page
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	var resp generateResponse
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1beta/models/" + c.model + ":generateContent",
		Query:  map[string]string{"key": c.apiKey},
		Body: generateRequest{
			Contents: []content{{Role: "user", Parts: parts}},
		},
	}, &resp)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(providerName, "error").Inc()
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	metrics.ProviderRequests.WithLabelValues(providerName, "ok").Inc()

	if len(resp.Candidates) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}
