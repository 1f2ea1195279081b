package workflow

import (
	"context"

	"parkingspot/internal/entities"
	"parkingspot/internal/spots"
)

type DirectoryAPI interface {
	ListFacilityTypes(ctx context.Context, skip, limit int) ([]entities.FacilityType, error)
}

// Pagination mirrors the backend's skip/limit query parameters.
type Pagination struct {
	Skip  int
	Limit int
}

// DirectoryFlow fetches the facility directory for the browsing screen.
type DirectoryFlow struct {
	api    DirectoryAPI
	screen *Screen
}

func NewDirectoryFlow(api DirectoryAPI, screen *Screen) *DirectoryFlow {
	return &DirectoryFlow{api: api, screen: screen}
}

// List returns the directory snapshot in backend order. An empty directory is
// reported distinctly so the caller renders "no facilities found" instead of
// an error.
func (f *DirectoryFlow) List(ctx context.Context, page Pagination) ([]entities.FacilityType, bool, error) {
	types, err := f.api.ListFacilityTypes(ctx, page.Skip, page.Limit)

	var result []entities.FacilityType
	var flowErr error
	delivered := f.screen.deliver(func() {
		if err != nil {
			flowErr = err
			return
		}
		result = types
	})
	if !delivered {
		return nil, false, ErrScreenGone
	}
	if flowErr != nil {
		return nil, false, flowErr
	}
	return result, len(result) == 0, nil
}

// SpotBoard synthesizes the selection board for one facility. Spots are a
// client-side placeholder; the board is discarded when the screen goes away.
func SpotBoard(facility entities.FacilityType) []entities.Spot {
	return spots.Generate(facility.Capacity)
}
