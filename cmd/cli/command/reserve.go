package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"parkingspot/internal/entities"
	"parkingspot/internal/workflow"
)

var (
	reserveParkingType int
	reservePlate       string
	reserveColor       string
	reserveYear        string
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Reserva uma vaga com os dados do veículo",
	RunE: func(cmd *cobra.Command, _ []string) error {
		screen := workflow.NewScreen()
		defer screen.Teardown()

		flow := workflow.NewReservationFlow(api, screen)
		created, out, err := flow.Submit(cmd.Context(), entities.ReservationRequest{
			ParkingTypeID: reserveParkingType,
			LicensePlate:  reservePlate,
			VehicleColor:  reserveColor,
			VehicleYear:   reserveYear,
		})
		if err != nil {
			if out.Nav == workflow.NavLogin {
				fmt.Println("Sessão expirada. Faça login novamente com 'parkingspot login'.")
			}
			return err
		}
		finish(out)
		fmt.Printf("Placa %s registrada no estacionamento %d.\n", created.LicensePlate, created.ParkingTypeID)
		return nil
	},
}

func init() {
	reserveCmd.Flags().IntVarP(&reserveParkingType, "parking-type", "t", 0, "id do estacionamento")
	reserveCmd.Flags().StringVarP(&reservePlate, "plate", "", "", "placa do veículo")
	reserveCmd.Flags().StringVarP(&reserveColor, "color", "", "", "cor do veículo")
	reserveCmd.Flags().StringVarP(&reserveYear, "year", "", "", "ano do veículo")

	rootCmd.AddCommand(reserveCmd)
}
