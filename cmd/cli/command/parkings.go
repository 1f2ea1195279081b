package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"parkingspot/internal/spots"
	"parkingspot/internal/workflow"
)

var (
	listSkip  int
	listLimit int
)

var parkingsCmd = &cobra.Command{
	Use:   "parkings",
	Short: "Lista os estacionamentos disponíveis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		screen := workflow.NewScreen()
		defer screen.Teardown()

		flow := workflow.NewDirectoryFlow(api, screen)
		types, empty, err := flow.List(cmd.Context(), workflow.Pagination{Skip: listSkip, Limit: listLimit})
		if err != nil {
			return err
		}
		if empty {
			fmt.Println("Nenhum estacionamento encontrado.")
			return nil
		}
		for _, t := range types {
			fmt.Printf("%d\t%s\t(%d vagas)\n", t.ID, t.Name, t.Capacity)
		}
		return nil
	},
}

var spotsCmd = &cobra.Command{
	Use:   "spots <parking-type-id>",
	Short: "Mostra o quadro de vagas de um estacionamento",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id de estacionamento inválido: %q", args[0])
		}

		screen := workflow.NewScreen()
		defer screen.Teardown()

		flow := workflow.NewDirectoryFlow(api, screen)
		types, _, err := flow.List(cmd.Context(), workflow.Pagination{Skip: 0, Limit: 100})
		if err != nil {
			return err
		}
		for _, t := range types {
			if t.ID != id {
				continue
			}
			fmt.Printf("📍 %s — total de vagas: %d\n", t.Name, t.Capacity)
			board := workflow.SpotBoard(t)
			for _, s := range board {
				fmt.Printf("Vaga %d: %s\n", s.ID, s.Status)
			}
			if first, ok := spots.FirstFree(board); ok {
				fmt.Printf("Primeira vaga livre: %d\n", first.ID)
			}
			return nil
		}
		return fmt.Errorf("estacionamento %d não encontrado", id)
	},
}

func init() {
	parkingsCmd.Flags().IntVar(&listSkip, "skip", 0, "itens a pular")
	parkingsCmd.Flags().IntVar(&listLimit, "limit", 100, "máximo de itens")

	rootCmd.AddCommand(parkingsCmd, spotsCmd)
}
