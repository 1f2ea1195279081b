package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"parkingspot/internal/workflow"
)

var removeYes bool

var searchCmd = &cobra.Command{
	Use:   "search <placa>",
	Short: "Busca uma reserva ativa pela placa",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plate := ""
		if len(args) == 1 {
			plate = args[0]
		}

		screen := workflow.NewScreen()
		defer screen.Teardown()

		flow := workflow.NewRemovalFlow(api, screen)
		match, err := flow.SearchByPlate(cmd.Context(), plate)
		if err != nil {
			return err
		}
		fmt.Printf("Veículo: %s - %s\n", match.VehicleYear, match.VehicleColor)
		fmt.Printf("Placa: %s\n", match.LicensePlate)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <placa>",
	Short: "Remove a reserva ativa de um veículo",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plate := ""
		if len(args) == 1 {
			plate = args[0]
		}

		screen := workflow.NewScreen()
		defer screen.Teardown()

		flow := workflow.NewRemovalFlow(api, screen)
		match, err := flow.SearchByPlate(cmd.Context(), plate)
		if err != nil {
			return err
		}

		fmt.Printf("Veículo: %s - %s (placa %s)\n", match.VehicleYear, match.VehicleColor, match.LicensePlate)
		if !removeYes && !confirm("Confirmar remoção? [s/N] ") {
			fmt.Println("Remoção cancelada.")
			return nil
		}

		out, err := flow.ConfirmRemoval(cmd.Context(), match.LicensePlate)
		if err != nil {
			if out.Nav == workflow.NavLogin {
				fmt.Println("Sessão expirada. Faça login novamente com 'parkingspot login'.")
			}
			return err
		}
		finish(out)
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "sim" || answer == "y"
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "não pedir confirmação")

	rootCmd.AddCommand(searchCmd, removeCmd)
}
