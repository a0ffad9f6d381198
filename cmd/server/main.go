package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/digiserv/backend/conf"
	"github.com/digiserv/backend/email"
	"github.com/digiserv/backend/http"
	"github.com/digiserv/backend/intake"
	"github.com/digiserv/backend/subm/filerepo"
	"github.com/digiserv/backend/subm/pgrepo"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Info(".env file not found, using process environment")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	fileStore, err := filerepo.New(conf.GetSubmissionsFileFromEnv())
	if err != nil {
		slog.Error("failed to open submissions file", "error", err)
		os.Exit(1)
	}

	var mailer email.Mailer
	if smtpCfg, ok := conf.GetSMTPConfigFromEnv(); ok {
		smtpMailer, err := email.NewSMTPMailer(smtpCfg)
		if err != nil {
			slog.Error("failed to set up email transport", "error", err)
			os.Exit(1)
		}
		mailer = smtpMailer
		slog.Info("email transport ready", "host", smtpCfg.Host)
	} else {
		slog.Info("email not configured, submissions will only be saved to file")
	}

	var adminRepo http.AdminRepo
	if connStr := conf.GetPgConnStrFromEnv(); connStr != "" {
		pool, err := pgxpool.New(context.Background(), connStr)
		if err != nil {
			slog.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		adminRepo = pgrepo.New(pool)
	} else {
		slog.Info("postgres not configured, admin API disabled")
	}

	creds := conf.GetAdminCredsFromEnv()
	if !creds.Configured() {
		slog.Info("admin credentials not configured, admin logins disabled")
	}

	pipeline := intake.NewLegacyPipeline(fileStore, mailer)
	httpServer := http.NewHttpServer(pipeline, fileStore, adminRepo, creds, []byte(jwtKey))

	address := conf.GetListenAddrFromEnv()
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
