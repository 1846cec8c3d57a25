package nanobanana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// httpClient handles HTTP communication with the Gemini API.
type httpClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:  cfg.httpClient,
		baseURL: cfg.baseURL,
		apiKey:  cfg.apiKey,
	}
}

// post issues one generateContent call for model and returns the raw
// response body. Non-2xx responses come back as *Error.
func (h *httpClient) post(ctx context.Context, model string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	// The API authenticates with the key in the query string.
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		h.baseURL, model, url.QueryEscape(h.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "nanoimg/1.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(respBody, resp.StatusCode)
	}
	return respBody, nil
}

// parseError parses an error response body.
func parseError(body []byte, httpStatus int) error {
	var wrapper struct {
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error != nil {
		wrapper.Error.HTTPStatus = httpStatus
		wrapper.Error.Body = body
		return wrapper.Error
	}

	return &Error{
		Code:       httpStatus,
		Message:    http.StatusText(httpStatus),
		HTTPStatus: httpStatus,
		Body:       body,
	}
}
