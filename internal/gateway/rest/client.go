// Package rest is the single outbound HTTP contract to the LuxChile API.
// It attaches the bearer credential, normalizes non-2xx responses into typed
// failures and runs the session-invalidation detector. It never retries;
// retry policy belongs to callers.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"panel/pkg/logger"
)

// invalidationPhrases are the server detail messages that denote an expired,
// invalid or missing credential on a 401 response.
var invalidationPhrases = []string{
	"Token expirado",
	"Token inválido",
	"No autenticado",
}

type Client struct {
	base          string
	http          *http.Client
	creds         credentialSource
	invalidations invalidationSink
	log           clientLogger
}

func New(baseURL string, httpClient *http.Client, creds credentialSource, invalidations invalidationSink, log clientLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:          baseURL,
		http:          httpClient,
		creds:         creds,
		invalidations: invalidations,
		log:           log.With(),
	}
}

// Do issues one request and decodes the response into out. A JSON response
// body is unmarshalled into out when out is non-nil; a non-JSON body is
// assigned when out is *string. Any non-2xx response returns *TransportError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	url := joinURL(c.base, path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, "error", start)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("close response body", logger.NewField("error", cerr))
		}
	}()

	c.observe(method, strconv.Itoa(resp.StatusCode), start)

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		terr := &TransportError{StatusCode: resp.StatusCode, Body: string(text)}
		if resp.StatusCode == http.StatusUnauthorized {
			c.detectInvalidation(terr)
		}
		return terr
	}

	if out == nil {
		return nil
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		if err := json.Unmarshal(text, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	}

	if sp, ok := out.(*string); ok {
		*sp = string(text)
	}
	return nil
}

// detectInvalidation clears the credential store and publishes exactly one
// invalidation signal when the 401 body names an expired/invalid/missing
// credential, or when the body cannot be parsed at all. The original
// transport failure is still returned to the caller afterwards.
func (c *Client) detectInvalidation(terr *TransportError) {
	var payload struct {
		Detail string `json:"detail"`
	}

	reason := "credential rejected"
	if err := json.Unmarshal([]byte(terr.Body), &payload); err == nil {
		matched := false
		for _, phrase := range invalidationPhrases {
			if strings.Contains(payload.Detail, phrase) {
				matched = true
				reason = payload.Detail
				break
			}
		}
		if !matched {
			return
		}
	}

	if err := c.creds.Clear(); err != nil {
		c.log.Error("clear credentials after invalidation", logger.NewField("error", err))
	}
	SessionInvalidationsTotal.Inc()
	c.invalidations.Publish(reason)
}

func (c *Client) observe(method, status string, start time.Time) {
	TransportRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
	TransportRequestsTotal.WithLabelValues(method, status).Inc()
}

// joinURL joins base and path with exactly one separating slash regardless
// of trailing/leading slashes supplied by either side.
func joinURL(base, path string) string {
	b := strings.TrimRight(base, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b + path
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
