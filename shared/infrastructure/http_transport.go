package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/workflow"
)

var _ workflow.Transport = (*HTTPTransport)(nil)

// HTTPTransport delivers workflow RPCs to resource services over HTTP:
// POST {base}/{service}/{key}/{operation} with a JSON body. Responses with a
// 4xx status are mapped to terminal errors (the caller must compensate, not
// retry); 5xx and network errors stay transient so the runtime's retry
// policy applies.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTransport creates a transport rooted at baseURL
func NewHTTPTransport(baseURL string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{
		baseURL: baseURL,
		client:  client,
	}
}

type httpErrorResponse struct {
	Error string `json:"error"`
}

// Invoke implements workflow.Transport
func (t *HTTPTransport) Invoke(ctx context.Context, service, key, operation string, params interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal params")
	}

	url := fmt.Sprintf("%s/%s/%s/%s", t.baseURL, service, key, operation)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s/%s", service, operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	switch {
	case resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, workflow.NewTerminalError(remoteError(service, operation, resp.StatusCode, body))
	default:
		return nil, remoteError(service, operation, resp.StatusCode, body)
	}
}

func remoteError(service, operation string, status int, body []byte) error {
	var payload httpErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return errors.Errorf("%s/%s failed with status %d: %s", service, operation, status, payload.Error)
	}
	return errors.Errorf("%s/%s failed with status %d", service, operation, status)
}
