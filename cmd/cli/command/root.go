// Package command wires the cobra commands of the parkingspot CLI. Each
// subcommand corresponds to one screen flow of the mobile app: login,
// register, parkings, spots, reserve, search and remove.
package command

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"parkingspot/internal/client"
	"parkingspot/internal/config"
	"parkingspot/internal/session"
	"parkingspot/internal/workflow"
)

var (
	cfg      *config.Config
	log      *logrus.Logger
	sessions *session.Store
	api      *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "parkingspot",
	Short: "Cliente de linha de comando do ParkingSpot",
	Long: `Cliente de linha de comando do ParkingSpot.

Localize estacionamentos, reserve uma vaga com os dados do veículo e
remova uma reserva ativa pela placa. Toda a lógica de negócio vive no
backend HTTP; este cliente orquestra o fluxo de telas e as chamadas.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log = logrus.New()
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		log.SetLevel(level)
		if cfg.LogFormat == "json" {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}

		sessions = session.NewStore(cfg.CredentialsFile)
		api = client.New(cfg, sessions, log)
		return nil
	},
}

// Execute runs the root command, printing any error the way the screens
// would: as a user-facing message, never a stack trace.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err.Error())
		os.Exit(1)
	}
}

// finish renders a successful workflow outcome. A NavLogin outcome sends the
// user to the login flow next.
func finish(out workflow.Outcome) {
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	if out.Nav == workflow.NavLogin {
		fmt.Println("Use 'parkingspot login' para entrar.")
	}
}
