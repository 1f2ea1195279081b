package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

type fakeRemovalAPI struct {
	searchCalls int
	removeCalls int
	matches     []entities.ActiveReservation
	searchErr   error
	removeErr   error
	during      func()
}

func (f *fakeRemovalAPI) SearchActive(_ context.Context, _ string) ([]entities.ActiveReservation, error) {
	f.searchCalls++
	if f.during != nil {
		f.during()
	}
	return f.matches, f.searchErr
}

func (f *fakeRemovalAPI) RemoveActive(_ context.Context, _ string) error {
	f.removeCalls++
	if f.during != nil {
		f.during()
	}
	return f.removeErr
}

func TestSearchBlankPlateDoesNotCallBackend(t *testing.T) {
	for _, plate := range []string{"", "   "} {
		api := &fakeRemovalAPI{}
		flow := NewRemovalFlow(api, NewScreen())

		_, err := flow.SearchByPlate(context.Background(), plate)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Digite a placa do veículo.", verr.Message)
		assert.Equal(t, 0, api.searchCalls)
	}
}

func TestSearchEmptyResultIsGuardedNotFound(t *testing.T) {
	api := &fakeRemovalAPI{matches: []entities.ActiveReservation{}}
	flow := NewRemovalFlow(api, NewScreen())

	_, err := flow.SearchByPlate(context.Background(), "XYZ9999")
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Veículo não encontrado", notFound.Message)
}

func TestSearchTakesFirstMatch(t *testing.T) {
	api := &fakeRemovalAPI{matches: []entities.ActiveReservation{
		{LicensePlate: "XYZ9999", VehicleColor: "blue"},
		{LicensePlate: "XYZ9999", VehicleColor: "green"},
	}}
	flow := NewRemovalFlow(api, NewScreen())

	match, err := flow.SearchByPlate(context.Background(), "XYZ9999")
	require.NoError(t, err)
	assert.Equal(t, "blue", match.VehicleColor)
}

func TestConfirmRemovalNavigatesToRoot(t *testing.T) {
	api := &fakeRemovalAPI{}
	flow := NewRemovalFlow(api, NewScreen())

	out, err := flow.ConfirmRemoval(context.Background(), "XYZ9999")
	require.NoError(t, err)
	assert.Equal(t, NavRoot, out.Nav, "removal pops to the root screen, not one step back")
	assert.Equal(t, "Veículo removido com sucesso!", out.Message)
	assert.Equal(t, 1, api.removeCalls)
}

func TestConfirmRemovalError(t *testing.T) {
	api := &fakeRemovalAPI{removeErr: &apperrors.RemovalError{Message: "Erro ao remover veículo"}}
	flow := NewRemovalFlow(api, NewScreen())

	out, err := flow.ConfirmRemoval(context.Background(), "XYZ9999")
	require.Error(t, err)
	assert.Equal(t, NavStay, out.Nav)
	assert.Equal(t, "Erro ao remover veículo", out.Message)
}

func TestRemovalResultsDiscardedAfterTeardown(t *testing.T) {
	screen := NewScreen()
	api := &fakeRemovalAPI{matches: []entities.ActiveReservation{{LicensePlate: "XYZ9999"}}}
	api.during = screen.Teardown

	flow := NewRemovalFlow(api, screen)
	_, err := flow.SearchByPlate(context.Background(), "XYZ9999")
	assert.ErrorIs(t, err, ErrScreenGone)

	screen2 := NewScreen()
	api2 := &fakeRemovalAPI{}
	api2.during = screen2.Teardown
	flow2 := NewRemovalFlow(api2, screen2)
	_, err = flow2.ConfirmRemoval(context.Background(), "XYZ9999")
	assert.ErrorIs(t, err, ErrScreenGone)
}
