package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farm-records/internal/platform/httpclient"
	"farm-records/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("sessions client not configured")
	ErrUnauthorized  = errors.New("session rejected")
	ErrUpstream      = errors.New("session service error")
)

// Config del cliente contra el servicio de sesiones.
// BaseURL y APIKey vienen de env vars en main.
type Config struct {
	BaseURL string
	APIKey  string

	// Header donde va la API key. Vacío => "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}

	hc, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: header,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.apiKey != ""
}

// VerifySession consulta el servicio de sesiones y devuelve los claims del token.
func (c *Client) VerifySession(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	const verifyPath = "/v1/sessions/verify"

	var out struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}

	headers := map[string]string{
		c.apiKeyHeader:  c.apiKey,
		"Authorization": "Bearer " + token,
		// Correlation id para rastrear la llamada en el servicio de sesiones.
		"X-Request-ID": uuid.NewString(),
	}

	err := c.http.PostJSON(ctx, verifyPath, headers, map[string]string{"token": token}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case 401, 403:
				return auth.Claims{}, ErrUnauthorized
			default:
				return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
			}
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.New("session response missing user_id")
	}

	return auth.Claims{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
	}, nil
}
