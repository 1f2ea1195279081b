package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

type fakeReservationAPI struct {
	calls   int
	created *entities.ActiveReservation
	err     error
	during  func(f *fakeReservationAPI)
}

func (f *fakeReservationAPI) CreateReservation(_ context.Context, _ entities.ReservationRequest) (*entities.ActiveReservation, error) {
	f.calls++
	if f.during != nil {
		f.during(f)
	}
	return f.created, f.err
}

func validRequest() entities.ReservationRequest {
	return entities.ReservationRequest{
		ParkingTypeID: 1,
		LicensePlate:  "ABC1234",
		VehicleColor:  "red",
		VehicleYear:   "2020",
	}
}

func TestSubmitBlankFieldFailsWithoutNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *entities.ReservationRequest)
	}{
		{"blank plate", func(r *entities.ReservationRequest) { r.LicensePlate = "" }},
		{"blank color", func(r *entities.ReservationRequest) { r.VehicleColor = "" }},
		{"blank year", func(r *entities.ReservationRequest) { r.VehicleYear = "" }},
		{"zero parking type", func(r *entities.ReservationRequest) { r.ParkingTypeID = 0 }},
		{"non-numeric year", func(r *entities.ReservationRequest) { r.VehicleYear = "abcd" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeReservationAPI{}
			flow := NewReservationFlow(api, NewScreen())

			req := validRequest()
			tt.mutate(&req)

			_, out, err := flow.Submit(context.Background(), req)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Preencha todos os campos!", out.Message)
			assert.Equal(t, 0, api.calls, "validation failure must not reach the network")
			assert.Equal(t, StateError, flow.State())
		})
	}
}

func TestSubmitSuccessNavigatesBack(t *testing.T) {
	api := &fakeReservationAPI{created: &entities.ActiveReservation{LicensePlate: "ABC1234", ParkingTypeID: 1}}
	flow := NewReservationFlow(api, NewScreen())

	created, out, err := flow.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "ABC1234", created.LicensePlate)
	assert.Equal(t, NavBack, out.Nav)
	assert.Equal(t, "Reserva confirmada!", out.Message)
	assert.Equal(t, StateSuccess, flow.State())

	// Success is terminal for the screen instance.
	_, _, err = flow.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, 1, api.calls)
}

func TestSubmitBackendErrorReturnsToIdleOnEdit(t *testing.T) {
	api := &fakeReservationAPI{err: &apperrors.SubmissionError{Message: "estacionamento lotado"}}
	flow := NewReservationFlow(api, NewScreen())

	_, out, err := flow.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, NavStay, out.Nav)
	assert.Equal(t, "estacionamento lotado", out.Message)
	assert.Equal(t, StateError, flow.State())
	assert.Equal(t, "estacionamento lotado", flow.LastError())

	flow.Edit()
	assert.Equal(t, StateIdle, flow.State())
	assert.Empty(t, flow.LastError())
}

func TestSubmitRetryAfterErrorIsAllowed(t *testing.T) {
	api := &fakeReservationAPI{err: &apperrors.SubmissionError{Message: "X"}}
	flow := NewReservationFlow(api, NewScreen())

	_, _, err := flow.Submit(context.Background(), validRequest())
	require.Error(t, err)

	api.err = nil
	api.created = &entities.ActiveReservation{LicensePlate: "ABC1234"}
	_, out, err := flow.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, NavBack, out.Nav)
	assert.Equal(t, 2, api.calls, "retry is user-triggered, never automatic")
}

func TestSubmitMissingTokenRedirectsToLogin(t *testing.T) {
	api := &fakeReservationAPI{err: &apperrors.MissingTokenError{}}
	flow := NewReservationFlow(api, NewScreen())

	_, out, err := flow.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, NavLogin, out.Nav)
}

func TestLateResponseAfterTeardownIsDiscarded(t *testing.T) {
	screen := NewScreen()
	api := &fakeReservationAPI{created: &entities.ActiveReservation{LicensePlate: "ABC1234"}}
	// The screen goes away while the request is in flight.
	api.during = func(_ *fakeReservationAPI) { screen.Teardown() }

	flow := NewReservationFlow(api, screen)
	created, _, err := flow.Submit(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrScreenGone)
	assert.Nil(t, created)
	assert.Equal(t, StateSubmitting, flow.State(), "a torn-down screen's state must not be mutated")
}
