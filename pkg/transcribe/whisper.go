package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// whisperClient uploads audio to an OpenAI-compatible transcription
// endpoint (OpenAI, Groq, or an Azure deployment) and parses the
// verbose_json response.
type whisperClient struct {
	httpClient *http.Client
	url        string
	authHeader string
	authValue  string
	model      string
	// sendModel is false for Azure, where the deployment fixes the model.
	sendModel bool
}

func newOpenAIWhisper(baseURL, apiKey, model string) *whisperClient {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &whisperClient{
		httpClient: &http.Client{Timeout: 30 * time.Minute},
		url:        base + "/audio/transcriptions",
		authHeader: "Authorization",
		authValue:  "Bearer " + apiKey,
		model:      model,
		sendModel:  true,
	}
}

func newGroqWhisper(apiKey, model string) *whisperClient {
	return newOpenAIWhisper("https://api.groq.com/openai/v1", apiKey, model)
}

func newAzureWhisper(endpoint, apiKey, apiVersion, deployment string) *whisperClient {
	return &whisperClient{
		httpClient: &http.Client{Timeout: 30 * time.Minute},
		url: fmt.Sprintf("%s/openai/deployments/%s/audio/transcriptions?api-version=%s",
			strings.TrimRight(endpoint, "/"), deployment, apiVersion),
		authHeader: "api-key",
		authValue:  apiKey,
		model:      deployment,
	}
}

// apiSegment is one timed span in a verbose_json response.
type apiSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// apiResponse is the subset of verbose_json the pipeline uses.
type apiResponse struct {
	Text     string       `json:"text"`
	Duration float64      `json:"duration"`
	Segments []apiSegment `json:"segments"`
}

// transcribe uploads one audio file with the given initial prompt.
func (c *whisperClient) transcribe(ctx context.Context, audioPath, prompt string) (*apiResponse, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading audio file: %w", err)
	}
	if c.sendModel {
		if err := writer.WriteField("model", c.model); err != nil {
			return nil, fmt.Errorf("building upload: %w", err)
		}
	}
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if prompt != "" {
		if err := writer.WriteField("prompt", prompt); err != nil {
			return nil, fmt.Errorf("building upload: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(c.authHeader, c.authValue)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("reading transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := string(raw)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, fmt.Errorf("transcription returned status %d: %s", resp.StatusCode, snippet)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding transcription response: %w", err)
	}
	return &parsed, nil
}
