package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter] for the server
// at adapterCfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts user to /api/user/register and keeps the bearer token from
// the Authorization header of the answer.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	return models.User{Login: user.Login}, nil
}

// RequestSalt posts the login to /api/user/params.
func (h *httpServerAdapter) RequestSalt(ctx context.Context, login string) (models.User, error) {
	var params models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: login}).
		SetResult(&params).
		Post("/api/user/params")
	if err != nil {
		return models.User{}, fmt.Errorf("params request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return models.User{Login: login, EncryptionSalt: params.EncryptionSalt}, nil
}

// Login posts login and auth hash to /api/user/login. The answer carries the
// wrapped data key; the bearer token is kept for later requests.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, AuthHash: user.AuthHash}).
		SetResult(&foundUser).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	return foundUser, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) storeToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoToken, err)
	}
	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
