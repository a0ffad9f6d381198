package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/digiserv/backend/conf"
	"github.com/digiserv/backend/intake"
	"github.com/digiserv/backend/relay"
	"github.com/digiserv/backend/subm/pgrepo"
)

func main() {
	_ = godotenv.Load()

	connStr := conf.GetPgConnStrFromEnv()
	if connStr == "" {
		fmt.Fprintln(os.Stderr, "POSTGRES_HOST is not set; the contact form needs the submissions table")
		os.Exit(1)
	}
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var emailSink intake.EmailSink
	relayCfg := conf.GetRelayConfigFromEnv()
	if relayCfg.Configured() {
		emailSink = relay.New(relayCfg)
	}

	pipeline := intake.NewDualPipeline(pgrepo.New(pool), emailSink)

	p := tea.NewProgram(initialModel(pipeline))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
