package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/models"
)

// HTTPClient implements Client over the backend's JSON REST surface.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient returns an HTTPClient for the given base URL,
// e.g. "http://127.0.0.1:8080".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Issue(ctx context.Context, req models.IssueRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	var resp struct {
		CertificateID string `json:"certificateId"`
	}
	if err := c.do(ctx, http.MethodPost, "/certificates", bytes.NewReader(body), &resp); err != nil {
		return "", err
	}
	return resp.CertificateID, nil
}

func (c *HTTPClient) Verify(ctx context.Context, certificateID string) (*models.Certificate, error) {
	var cert models.Certificate
	path := "/certificates/verify/" + url.PathEscape(certificateID)
	if err := c.do(ctx, http.MethodGet, path, nil, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := c.do(ctx, http.MethodGet, "/certificates", nil, &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	var hs models.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &hs); err != nil {
		return nil, err
	}
	return &hs, nil
}

// do runs one JSON round trip and maps failures onto the shared sentinels:
// dial/transport errors and non-2xx statuses become ErrUnavailable, a 404
// becomes ErrNotFound.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status %s: %s", common.ErrUnavailable, resp.Status, string(b))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrUnavailable, err)
	}
	return nil
}
