package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
	"parkingspot/internal/workflow"
)

var (
	loginUsername string
	loginPassword string

	registerUsername string
	registerEmail    string
	registerPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Autentica e guarda a credencial de acesso",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flow := workflow.NewAuthFlow(api)
		sess, err := flow.Login(cmd.Context(), loginUsername, loginPassword)
		if err != nil {
			return err
		}
		log.WithField("token_type", sess.TokenType).Debug("session stored")
		fmt.Println("Login realizado com sucesso.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Cria uma nova conta de usuário",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flow := workflow.NewAuthFlow(api)
		_, out, err := flow.Register(cmd.Context(), entities.RegisterRequest{
			Username: registerUsername,
			Email:    registerEmail,
			Password: registerPassword,
		})
		if err != nil {
			return err
		}
		finish(out)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove a credencial guardada",
	RunE: func(_ *cobra.Command, _ []string) error {
		flow := workflow.NewAuthFlow(api)
		if err := flow.Logout(); err != nil {
			return err
		}
		fmt.Println("Sessão encerrada.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Mostra se há uma sessão guardada",
	RunE: func(_ *cobra.Command, _ []string) error {
		header, err := sessions.AuthorizationHeader()
		if err != nil {
			if apperrors.NeedsLogin(err) {
				fmt.Println("Nenhuma sessão guardada. Use 'parkingspot login'.")
				return nil
			}
			return err
		}
		fmt.Println("Sessão ativa:", header)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "nome de usuário")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "senha")

	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "nome de usuário")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "senha")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
