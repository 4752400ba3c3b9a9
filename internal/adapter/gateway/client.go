package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

func newClient(baseURL string, httpClient *http.Client, tokens TokenSource, logger *slog.Logger) *client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

// do sends body as JSON and decodes the response into out. A nil out
// discards the body. It returns the status code so callers can treat
// specific codes as empty results.
func (c *client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return 0, domain.NewError(domain.KindAuth, "Session expired", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return 0, mapTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, mapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, mapStatus(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, domain.NewError(domain.KindServer, "Error processing the server response", err)
	}

	return resp.StatusCode, nil
}

type errorBody struct {
	Message string `json:"message"`
	Mensaje string `json:"mensaje"`
	Detail  string `json:"detail"`
	Title   string `json:"title"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Mensaje, b.Message, b.Detail, b.Title} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}

	return ""
}

func mapStatus(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)
	cause := fmt.Errorf("backend returned status %d", status)

	var appErr *domain.AppError
	switch {
	case status == http.StatusUnauthorized:
		appErr = domain.NewError(domain.KindAuth, "Session expired", cause)
	case status == http.StatusForbidden:
		appErr = domain.NewError(domain.KindAuth, "Access denied", cause)
	case status == http.StatusNotFound:
		appErr = domain.NewError(domain.KindNotFound, "", cause)
	case status == http.StatusBadRequest, status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		msg := body.text()
		if msg == "" {
			msg = "Invalid data"
		}
		appErr = domain.NewError(domain.KindValidation, msg, cause)
	case status >= 500:
		appErr = domain.NewError(domain.KindServer, "", cause)
	default:
		appErr = domain.NewError(domain.KindUnknown, body.text(), cause)
	}

	appErr.Status = status
	return appErr
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError
	var urlErr *url.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &dnsErr),
		errors.As(err, &opErr),
		errors.As(err, &netErr):
		return domain.NewError(domain.KindNetwork, "", err)
	case errors.As(err, &urlErr):
		return domain.NewError(domain.KindNetwork, "", err)
	}

	return domain.AsAppError(err)
}
