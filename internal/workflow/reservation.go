package workflow

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

// State is the submit state machine of a reservation screen instance.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

const (
	msgFillAllFields  = "Preencha todos os campos!"
	msgReservationOK  = "Reserva confirmada!"
	msgSubmitInFlight = "Aguarde, reserva em andamento."
)

type ReservationAPI interface {
	CreateReservation(ctx context.Context, req entities.ReservationRequest) (*entities.ActiveReservation, error)
}

// ReservationFlow drives one reservation screen instance: idle → submitting →
// success or error. Success is terminal for the instance; error returns to
// idle on the next edit or retry.
type ReservationFlow struct {
	api      ReservationAPI
	screen   *Screen
	validate *validator.Validate
	state    State
	lastErr  string
}

func NewReservationFlow(api ReservationAPI, screen *Screen) *ReservationFlow {
	return &ReservationFlow{
		api:      api,
		screen:   screen,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		state:    StateIdle,
	}
}

func (f *ReservationFlow) State() State {
	return f.state
}

func (f *ReservationFlow) LastError() string {
	return f.lastErr
}

// Edit is called when the user changes a field. An error state resets to
// idle; other states are unaffected.
func (f *ReservationFlow) Edit() {
	if f.state == StateError {
		f.state = StateIdle
		f.lastErr = ""
	}
}

// Submit validates locally, then issues the reservation request. Blank fields
// fail with ValidationError before any network traffic. Only one submission
// may be in flight per screen instance, and a result arriving after teardown
// is discarded without touching the state machine.
func (f *ReservationFlow) Submit(ctx context.Context, req entities.ReservationRequest) (*entities.ActiveReservation, Outcome, error) {
	switch f.state {
	case StateSubmitting:
		return nil, Outcome{Nav: NavStay, Message: msgSubmitInFlight}, fmt.Errorf("submission already in flight")
	case StateSuccess:
		return nil, Outcome{Nav: NavBack}, fmt.Errorf("screen already completed")
	case StateError:
		// Retry resets the machine, same as an edit.
		f.Edit()
	}

	if err := f.validate.Struct(req); err != nil {
		verr := &apperrors.ValidationError{Message: msgFillAllFields}
		f.state = StateError
		f.lastErr = verr.Message
		return nil, Outcome{Nav: NavStay, Message: verr.Message}, verr
	}

	f.state = StateSubmitting
	created, err := f.api.CreateReservation(ctx, req)

	var outcome Outcome
	var flowErr error
	delivered := f.screen.deliver(func() {
		if err != nil {
			f.state = StateError
			f.lastErr = err.Error()
			outcome = Outcome{Nav: NavStay, Message: err.Error()}
			if apperrors.NeedsLogin(err) {
				outcome.Nav = NavLogin
			}
			flowErr = err
			return
		}
		f.state = StateSuccess
		outcome = Outcome{Nav: NavBack, Message: msgReservationOK}
	})
	if !delivered {
		return nil, Outcome{Nav: NavStay}, ErrScreenGone
	}
	if flowErr != nil {
		return nil, outcome, flowErr
	}
	return created, outcome, nil
}
