package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"parkingspot/internal/devserver"
)

func main() {
	godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "devserver-local-secret"
		log.Warn("JWT_SECRET not set, using insecure default")
	}

	store := devserver.NewStore()
	tokens := devserver.NewTokenIssuer(secret, time.Hour)
	handler := devserver.NewHandler(store, tokens, log)
	router := devserver.NewRouter(handler)

	sweeper := devserver.StartSweeper(store, 24*time.Hour, log)
	defer sweeper.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.WithField("port", port).Info("devserver running")
	log.Fatal(http.ListenAndServe(":"+port, router))
}
