package workflow

import (
	"context"
	"strings"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

const (
	msgFillLoginFields    = "Por favor, preencha todos os campos."
	msgFillRegisterFields = "Preencha todos os campos."
	msgLoginFallback      = "Erro ao fazer login. Verifique suas credenciais."
)

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (entities.Session, error)
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.RegisterResponse, error)
	Logout() error
}

// AuthFlow drives the login and registration screens.
type AuthFlow struct {
	api AuthAPI
}

func NewAuthFlow(api AuthAPI) *AuthFlow {
	return &AuthFlow{api: api}
}

// Login guards blank fields locally, then exchanges the credentials. Any
// backend failure surfaces with its detail message or the generic login
// fallback, never a stack trace.
func (f *AuthFlow) Login(ctx context.Context, username, password string) (entities.Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return entities.Session{}, &apperrors.ValidationError{Message: msgFillLoginFields}
	}
	sess, err := f.api.Login(ctx, username, password)
	if err != nil {
		if err.Error() == "" {
			return entities.Session{}, &apperrors.AuthError{Message: msgLoginFallback}
		}
		return entities.Session{}, err
	}
	return sess, nil
}

// Register creates the account; on success the caller navigates to the login
// flow.
func (f *AuthFlow) Register(ctx context.Context, req entities.RegisterRequest) (*entities.RegisterResponse, Outcome, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, Outcome{Nav: NavStay, Message: msgFillRegisterFields}, &apperrors.ValidationError{Message: msgFillRegisterFields}
	}
	created, err := f.api.Register(ctx, req)
	if err != nil {
		return nil, Outcome{Nav: NavStay, Message: err.Error()}, err
	}
	return created, Outcome{Nav: NavLogin, Message: "Cadastro realizado com sucesso!"}, nil
}

func (f *AuthFlow) Logout() error {
	return f.api.Logout()
}
