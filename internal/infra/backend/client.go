package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"easebooking/internal/infra"
	"easebooking/internal/pkg/config"
)

// Client consumes the external booking REST API. Every call forwards
// the caller's bearer token; this service holds no credentials of its
// own. Authorization failures surface as KindUnauthorized so the
// session guard can force a logout.
type Client struct {
	cfg    config.BackendConfig
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindDecodeFailure, "encode request body", "", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.JoinPath(path), bodyReader)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindRemoteFailure, "build backend request", "", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindRemoteFailure, "backend request failed", "", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return infra.WrapGatewayErr(c.logger, infra.KindUnauthorized, "backend rejected session", readRemoteMessage(resp.Body), nil)
	}
	if resp.StatusCode == http.StatusNotFound {
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, "resource not found", readRemoteMessage(resp.Body), nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return infra.WrapGatewayErr(c.logger, infra.KindRemoteFailure, "backend returned an error", readRemoteMessage(resp.Body), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecodeFailure, "decode backend response", "", err)
	}
	return nil
}

// The backend answers errors either as a bare string body or as
// {"message": "..."}; both are reduced to the string.
func readRemoteMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var withMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &withMessage); err == nil && withMessage.Message != "" {
		return withMessage.Message
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	return strings.TrimSpace(string(raw))
}
