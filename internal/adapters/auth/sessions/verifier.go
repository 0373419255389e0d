package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farm-records/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.SessionVerifier contra el servicio de sesiones.
// Se instancia desde main cuando hay config; si no, el router queda en modo dev.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifySession(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("session verify failed: %w", err)
	}

	claims.UserID = strings.TrimSpace(claims.UserID)
	if claims.UserID == "" {
		return auth.Claims{}, errors.New("session claims missing user id")
	}

	return claims, nil
}
