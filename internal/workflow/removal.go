package workflow

import (
	"context"
	"strings"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

const (
	msgEnterPlate = "Digite a placa do veículo."
	msgNotFound   = "Veículo não encontrado"
	msgRemovalOK  = "Veículo removido com sucesso!"
)

type RemovalAPI interface {
	SearchActive(ctx context.Context, plate string) ([]entities.ActiveReservation, error)
	RemoveActive(ctx context.Context, plate string) error
}

// RemovalFlow finds an active reservation by plate and, after the user
// confirms, removes it.
type RemovalFlow struct {
	api    RemovalAPI
	screen *Screen
}

func NewRemovalFlow(api RemovalAPI, screen *Screen) *RemovalFlow {
	return &RemovalFlow{api: api, screen: screen}
}

// PickMatch selects which reservation a multi-result search resolves to.
// The backend does not promise plate uniqueness, so the first element wins;
// an empty result is a guarded not-found, never an index error.
func PickMatch(matches []entities.ActiveReservation) (*entities.ActiveReservation, bool) {
	if len(matches) == 0 {
		return nil, false
	}
	m := matches[0]
	return &m, true
}

// SearchByPlate validates the plate locally, then looks it up. A blank plate
// never reaches the network.
func (f *RemovalFlow) SearchByPlate(ctx context.Context, plate string) (*entities.ActiveReservation, error) {
	if strings.TrimSpace(plate) == "" {
		return nil, &apperrors.ValidationError{Message: msgEnterPlate}
	}

	matches, err := f.api.SearchActive(ctx, plate)

	var found *entities.ActiveReservation
	var flowErr error
	delivered := f.screen.deliver(func() {
		if err != nil {
			flowErr = err
			return
		}
		m, ok := PickMatch(matches)
		if !ok {
			flowErr = &apperrors.NotFoundError{Message: msgNotFound}
			return
		}
		found = m
	})
	if !delivered {
		return nil, ErrScreenGone
	}
	return found, flowErr
}

// ConfirmRemoval deletes the reservation. Success navigates to the root
// screen, not just one step back.
func (f *RemovalFlow) ConfirmRemoval(ctx context.Context, plate string) (Outcome, error) {
	err := f.api.RemoveActive(ctx, plate)

	var outcome Outcome
	var flowErr error
	delivered := f.screen.deliver(func() {
		if err != nil {
			outcome = Outcome{Nav: NavStay, Message: err.Error()}
			if apperrors.NeedsLogin(err) {
				outcome.Nav = NavLogin
			}
			flowErr = err
			return
		}
		outcome = Outcome{Nav: NavRoot, Message: msgRemovalOK}
	})
	if !delivered {
		return Outcome{Nav: NavStay}, ErrScreenGone
	}
	return outcome, flowErr
}
