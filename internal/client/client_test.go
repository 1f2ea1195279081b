package client

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"parkingspot/internal/config"
	"parkingspot/internal/entities"
	"parkingspot/internal/session"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient(t *testing.T, baseURL string, variant config.PathVariant) (*Client, *session.Store) {
	t.Helper()
	sessions := session.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	cfg := &config.Config{
		BaseURL:        baseURL,
		PathVariant:    variant,
		RequestTimeout: 2 * time.Second,
	}
	return New(cfg, sessions, testLogger()), sessions
}

func loggedIn(t *testing.T, sessions *session.Store) {
	t.Helper()
	if err := sessions.Save(entities.Session{AccessToken: "abc", TokenType: "Bearer"}); err != nil {
		t.Fatalf("saving session: %v", err)
	}
}
