package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nao1215/mapdown/internal/model"
)

// DefaultJinaEndpoint is the hosted Jina Reader endpoint. The target URL is
// appended as a path parameter.
const DefaultJinaEndpoint = "https://r.jina.ai/"

// Jina fetches pages through the hosted Jina Reader API, which returns
// Markdown directly so no local conversion happens.
//
// Two response shapes are handled: a JSON envelope (data.title/data.content
// or a top-level markdownResponse) and a plain text block with a "Title:"
// header line followed by a "Markdown Content:" marker.
type Jina struct {
	client   *http.Client
	endpoint string

	// apiKey is sent as a bearer token when non-empty.
	apiKey string

	// targetSelector and removeSelector restrict/exclude HTML regions
	// server-side via the X-Target-Selector / X-Remove-Selector headers.
	targetSelector string
	removeSelector string
}

// JinaOption configures a Jina engine.
type JinaOption func(*Jina)

// WithJinaEndpoint overrides the reader endpoint. Used by tests.
func WithJinaEndpoint(endpoint string) JinaOption {
	return func(j *Jina) {
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		j.endpoint = endpoint
	}
}

// WithJinaSelectors sets the CSS selector lists passed to the reader.
func WithJinaSelectors(target, remove string) JinaOption {
	return func(j *Jina) {
		j.targetSelector = target
		j.removeSelector = remove
	}
}

// NewJina creates a Jina Reader engine.
func NewJina(client *http.Client, apiKey string, opts ...JinaOption) *Jina {
	j := &Jina{
		client:   client,
		endpoint: DefaultJinaEndpoint,
		apiKey:   apiKey,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Name implements Engine.
func (j *Jina) Name() string { return "jina" }

// Fetch implements Engine.
func (j *Jina) Fetch(ctx context.Context, rawURL string) model.FetchOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.endpoint+rawURL, nil)
	if err != nil {
		return failure(rawURL, fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	if j.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+j.apiKey)
	}
	if j.targetSelector != "" {
		req.Header.Set("X-Target-Selector", j.targetSelector)
	}
	if j.removeSelector != "" {
		req.Header.Set("X-Remove-Selector", j.removeSelector)
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return failure(rawURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(rawURL, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return failure(rawURL, fmt.Errorf("reader returned status %d", resp.StatusCode))
	}

	title, content := parseJinaResponse(string(body))
	if strings.TrimSpace(content) == "" {
		return failure(rawURL, ErrEmptyContent)
	}
	return success(rawURL, title, content)
}

// jinaEnvelope is the JSON response shape of the reader API.
type jinaEnvelope struct {
	Data struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"data"`
	MarkdownResponse string `json:"markdownResponse"`
}

// parseJinaResponse extracts title and Markdown content from either
// supported response shape. The shape is sniffed from the payload itself
// because the reader does not always honor the Accept header.
func parseJinaResponse(body string) (title, content string) {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "{") {
		var env jinaEnvelope
		if err := json.Unmarshal([]byte(trimmed), &env); err == nil {
			if env.Data.Content != "" {
				return env.Data.Title, env.Data.Content
			}
			if env.MarkdownResponse != "" {
				return "", env.MarkdownResponse
			}
		}
		return "", ""
	}
	return parseJinaText(body)
}

// parseJinaText parses the plain text response shape: a header block with a
// "Title:" line, then a "Markdown Content:" marker line followed by the body.
func parseJinaText(body string) (title, content string) {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if t, ok := strings.CutPrefix(line, "Title:"); ok {
			title = strings.TrimSpace(t)
			continue
		}
		if strings.TrimSpace(line) == "Markdown Content:" {
			content = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return title, content
		}
	}
	// No marker line: the whole payload is the content.
	return title, strings.TrimSpace(body)
}
