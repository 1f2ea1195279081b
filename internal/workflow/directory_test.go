package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

type fakeDirectoryAPI struct {
	types []entities.FacilityType
	err   error
}

func (f *fakeDirectoryAPI) ListFacilityTypes(_ context.Context, _, _ int) ([]entities.FacilityType, error) {
	return f.types, f.err
}

func TestDirectoryListEmptyIsNotAnError(t *testing.T) {
	flow := NewDirectoryFlow(&fakeDirectoryAPI{types: []entities.FacilityType{}}, NewScreen())

	types, empty, err := flow.List(context.Background(), Pagination{Limit: 100})
	require.NoError(t, err)
	assert.True(t, empty)
	assert.Empty(t, types)
}

func TestDirectoryListPassesThroughError(t *testing.T) {
	flow := NewDirectoryFlow(&fakeDirectoryAPI{err: &apperrors.FetchError{Message: "Erro ao buscar estacionamentos"}}, NewScreen())

	_, _, err := flow.List(context.Background(), Pagination{Limit: 100})
	var fetchErr *apperrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestSpotBoardFromFacility(t *testing.T) {
	board := SpotBoard(entities.FacilityType{ID: 1, Name: "Shopping", Capacity: 3})
	require.Len(t, board, 3)
	for i, s := range board {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, entities.SpotFree, s.Status)
	}
}
