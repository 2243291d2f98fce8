package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	SourceGitHub   = "github"
	SourceScholar  = "scholar"
	SourceLinkedIn = "linkedin"

	maxErrorBody = 512
)

// maxResponseBody bounds how much of an upstream body is read
var maxResponseBody int64 = 8 << 20

// NewHTTPClient returns the client shared by all gateways. timeout bounds the
// whole exchange; dialing and the TLS handshake get their own shorter limits.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// getJSON performs req and decodes a 2xx body into out
func getJSON(ctx context.Context, client *http.Client, source string, req *http.Request, out interface{}) (int, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return 0, &UpstreamError{Source: source, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err == nil && int64(len(body)) > maxResponseBody {
		err = fmt.Errorf("response body exceeds %d bytes", maxResponseBody)
	}
	if err != nil {
		return resp.StatusCode, &UpstreamError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read response body: %v", err),
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &UpstreamError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.Status),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, &UpstreamError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			Err:        err,
		}
	}
	return resp.StatusCode, nil
}

// errorMessage pulls a readable message out of an error body
func errorMessage(body []byte, status string) string {
	var doc struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &doc) == nil {
		if doc.Error != "" {
			return doc.Error
		}
		if doc.Message != "" {
			return doc.Message
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return status
	}
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return text
}
