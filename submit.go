package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SubmitRequest carries the collected form values, already trimmed.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Submitter is the external submission collaborator: one outstanding call per
// attempt, result is nil or an error, nothing partial.
type Submitter interface {
	Submit(ctx context.Context, req SubmitRequest) error
}

// stubSubmitter stands in for a real endpoint: it waits out a simulated
// round-trip and succeeds.
type stubSubmitter struct {
	latency time.Duration
}

func (s stubSubmitter) Submit(ctx context.Context, req SubmitRequest) error {
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// httpSubmitter posts the request as JSON. Any non-2xx status is a failure.
type httpSubmitter struct {
	url    string
	client *http.Client
}

func newHTTPSubmitter(url string) httpSubmitter {
	return httpSubmitter{
		url:    url,
		client: &http.Client{Timeout: submitTimeout},
	}
}

func (s httpSubmitter) Submit(ctx context.Context, req SubmitRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submit: unexpected status %s", resp.Status)
	}
	return nil
}

// newSubmitter picks the HTTP collaborator when an endpoint is configured,
// the stub otherwise.
func newSubmitter(cfg *Config) Submitter {
	if cfg.SubmitURL != "" {
		return newHTTPSubmitter(cfg.SubmitURL)
	}
	return stubSubmitter{latency: stubLatency}
}
