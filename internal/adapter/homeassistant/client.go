package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	"go.uber.org/zap"
)

const DEFAULT_TIMEOUT = 10 * time.Second

// Client talks to the Home Assistant REST API. Credentials are read from the
// config store on every call so a reconfiguration takes effect immediately.
type Client struct {
	httpClient *http.Client
	store      port.ConfigStore
	logger     *zap.Logger
}

var _ port.EntityClient = (*Client)(nil)

func NewClient(store port.ConfigStore, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		store:  store,
		logger: logger,
	}
}

func (c *Client) CheckConnectivity(ctx context.Context) bool {
	resp, err := c.do(ctx, http.MethodGet, "/api/config", nil, "check connectivity")
	if err != nil {
		c.logger.Debug("connectivity check failed", zap.Error(err))
		return false
	}
	resp.Body.Close()
	return true
}

func (c *Client) FetchAllEntities(ctx context.Context) ([]domain.RemoteEntity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/states", nil, "fetch states")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entities []domain.RemoteEntity
	if err := json.NewDecoder(resp.Body).Decode(&entities); err != nil {
		return nil, fmt.Errorf("failed to parse states response: %w", err)
	}
	if entities == nil {
		entities = []domain.RemoteEntity{}
	}
	return entities, nil
}

func (c *Client) FetchEntity(ctx context.Context, entityId string) (*domain.RemoteEntity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/states/"+url.PathEscape(entityId), nil, "fetch state")
	if err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) && remote.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", entityId, domain.ErrNotFound)
		}
		return nil, err
	}
	defer resp.Body.Close()

	var entity domain.RemoteEntity
	if err := json.NewDecoder(resp.Body).Decode(&entity); err != nil {
		return nil, fmt.Errorf("failed to parse state response: %w", err)
	}
	return &entity, nil
}

func (c *Client) InvokeService(ctx context.Context, serviceDomain, service string, payload map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode service payload: %w", err)
	}
	path := fmt.Sprintf("/api/services/%s/%s", url.PathEscape(serviceDomain), url.PathEscape(service))
	resp, err := c.do(ctx, http.MethodPost, path, body, "call service")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Op: "call service", Err: err}
	}
	return json.RawMessage(raw), nil
}

// do sends an authenticated request. The response is only returned for 2xx
// statuses, the caller owns closing its body.
func (c *Client) do(ctx context.Context, method, path string, body []byte, op string) (*http.Response, error) {
	cfg := c.store.Get(ctx)
	if !cfg.Complete() {
		return nil, domain.ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, domain.NormalizeURL(cfg.URL)+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &domain.RemoteError{Op: op, Status: resp.StatusCode}
	}
	return resp, nil
}
