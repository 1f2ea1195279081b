package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

const (
	loginFallback    = "Falha na autenticação"
	registerFallback = "Erro no cadastro"
)

// Login exchanges credentials for a bearer token and stores the resulting
// session. The token endpoint takes URL-encoded form data, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (entities.Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/token", "application/x-www-form-urlencoded", []byte(form.Encode()), false)
	if err != nil {
		return entities.Session{}, err
	}
	if !resp.ok() {
		return entities.Session{}, &apperrors.AuthError{Code: resp.status, Message: resp.errText(loginFallback)}
	}

	var sess entities.Session
	if err := json.Unmarshal(resp.body, &sess); err != nil {
		return entities.Session{}, fmt.Errorf("decoding token response: %w", err)
	}
	if sess.AccessToken == "" || sess.TokenType == "" {
		return entities.Session{}, &apperrors.AuthError{Code: resp.status, Message: loginFallback}
	}
	if err := c.sessions.Save(sess); err != nil {
		return entities.Session{}, err
	}
	return sess, nil
}

// Register creates a new user account. No session is created; the caller
// continues to the login flow on success.
func (c *Client) Register(ctx context.Context, req entities.RegisterRequest) (*entities.RegisterResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/register", "application/json", body, false)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, &apperrors.AuthError{Code: resp.status, Message: resp.errText(registerFallback)}
	}

	var created entities.RegisterResponse
	if err := json.Unmarshal(resp.body, &created); err != nil {
		return nil, fmt.Errorf("decoding register response: %w", err)
	}
	return &created, nil
}

// Logout clears the stored credential. No backend call is involved.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}
