// Package client implements the HTTP client for the ParkingSpot backend.
// Paths and per-endpoint auth are deployment configuration, since two
// conventions exist in the wild (with and without the /parking prefix).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/config"
	"parkingspot/internal/entities"
	"parkingspot/internal/session"
)

type Client struct {
	baseURL      string
	variant      config.PathVariant
	authOnSearch bool
	authOnRemove bool
	timeout      time.Duration
	httpClient   *http.Client
	sessions     *session.Store
	log          *logrus.Entry
}

func New(cfg *config.Config, sessions *session.Store, log *logrus.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		variant:      cfg.PathVariant,
		authOnSearch: cfg.AuthOnSearch,
		authOnRemove: cfg.AuthOnRemove,
		timeout:      cfg.RequestTimeout,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		sessions:     sessions,
		log:          log.WithField("component", "client"),
	}
}

// parkingPath resolves a parking endpoint for the configured deployment
// variant. Token and register endpoints are always mounted at the root.
func (c *Client) parkingPath(suffix string) string {
	if c.variant == config.PathNested {
		return c.baseURL + "/parking" + suffix
	}
	return c.baseURL + suffix
}

// response is the decoded outcome of one HTTP exchange. Body is kept raw so
// each endpoint can pick its own payload shape and error field.
type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// errText extracts the backend-supplied message, falling back to the given
// default when the body carries none.
func (r response) errText(fallback string) string {
	var payload entities.APIError
	if err := json.Unmarshal(r.body, &payload); err == nil {
		if text := payload.Text(); text != "" {
			return text
		}
	}
	return fallback
}

// do issues one HTTP request with the configured timeout. Idempotent GETs are
// retried with bounded exponential backoff on transport failures; mutating
// requests are never retried automatically, since the payload may need user
// correction first.
func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body []byte, authed bool) (response, error) {
	attempt := func() (response, error) {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(reqCtx, method, rawURL, reader)
		if err != nil {
			return response{}, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if authed {
			header, err := c.sessions.AuthorizationHeader()
			if err != nil {
				return response{}, backoff.Permanent(err)
			}
			req.Header.Set("Authorization", header)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"method": method,
				"url":    rawURL,
			}).WithError(err).Warn("request failed")
			return response{}, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return response{}, err
		}
		c.log.WithFields(logrus.Fields{
			"method":   method,
			"url":      rawURL,
			"status":   resp.StatusCode,
			"duration": time.Since(start),
		}).Debug("request done")
		return response{status: resp.StatusCode, body: data}, nil
	}

	var resp response
	var err error
	if method == http.MethodGet {
		policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
		resp, err = backoff.RetryWithData(attempt, policy)
	} else {
		resp, err = attempt()
	}
	if err != nil {
		return response{}, classifyTransport(err)
	}
	return resp, nil
}

// classifyTransport maps low-level failures onto the error taxonomy. Timeouts
// become a retryable TimeoutError; everything else surfaces as a plain error
// that the screen boundary renders like any backend-reported failure.
func classifyTransport(err error) error {
	var missing *apperrors.MissingTokenError
	if errors.As(err, &missing) {
		return missing
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &apperrors.TimeoutError{Message: "Tempo de resposta esgotado. Tente novamente."}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &apperrors.TimeoutError{Message: "Tempo de resposta esgotado. Tente novamente."}
	}
	return fmt.Errorf("network request failed: %w", err)
}
