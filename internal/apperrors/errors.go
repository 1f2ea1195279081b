// Package apperrors defines the error taxonomy shared by the client and the
// workflow layer. Each HTTP-backed error prefers the backend-supplied message
// and falls back to a fixed default, so callers can surface Error() directly.
package apperrors

import "errors"

// ValidationError is raised locally, before any network call, when a required
// field is blank or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError reports a failed login or an otherwise unusable credential.
type AuthError struct {
	Code    int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// MissingTokenError means no session is stored. Callers must treat it as
// "redirect to login", not as a generic failure.
type MissingTokenError struct{}

func (e *MissingTokenError) Error() string {
	return "Token de acesso ausente"
}

type FetchError struct {
	Code    int
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Code    int
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type SubmissionError struct {
	Code    int
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

type RemovalError struct {
	Code    int
	Message string
}

func (e *RemovalError) Error() string {
	return e.Message
}

// TimeoutError classifies a request that exceeded the configured bound.
// Timed-out requests are safe to re-trigger by the user.
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	return e.Message
}

// NeedsLogin reports whether err indicates the stored session is unusable and
// the user should be sent back to the login flow.
func NeedsLogin(err error) bool {
	var missing *MissingTokenError
	return errors.As(err, &missing)
}
