package tengepay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// transport issues a single HTTP attempt per call: no retries, no
// backoff. The underlying http.Client is created lazily on first use and
// reused for the lifetime of the owning Client.
type transport struct {
	baseURL string
	apiKey  string
	timeout time.Duration

	once sync.Once
	http *http.Client
}

func (t *transport) client() *http.Client {
	t.once.Do(func() {
		t.http = &http.Client{Timeout: t.timeout}
	})
	return t.http
}

func (t *transport) url(path string, query url.Values) string {
	u := strings.TrimSuffix(t.baseURL, "/") + "/" + apiVersion + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// request performs one attempt and returns the raw status and body.
// Timeouts surface as *TimeoutError, any other connectivity failure as
// *TransportError; status classification is left to the caller.
func (t *transport) request(ctx context.Context, method, path string, body map[string]any, query url.Values) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, t.url(path, query), bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("api-key", t.apiKey)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client().Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, &TimeoutError{}
		}
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, &TimeoutError{}
		}
		return 0, nil, &TransportError{Err: err}
	}
	return resp.StatusCode, respBody, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
