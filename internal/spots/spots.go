// Package spots synthesizes the per-facility spot board. The backend never
// reports per-spot occupancy, so every spot starts free; this is a known
// simplification of the contract, not derived state.
package spots

import "parkingspot/internal/entities"

// Generate produces capacity spots with ids 1..capacity, all free. A zero or
// negative capacity yields an empty board.
func Generate(capacity int) []entities.Spot {
	if capacity <= 0 {
		return []entities.Spot{}
	}
	board := make([]entities.Spot, capacity)
	for i := range board {
		board[i] = entities.Spot{ID: i + 1, Status: entities.SpotFree}
	}
	return board
}

// FirstFree returns the first free spot in ascending id order.
func FirstFree(board []entities.Spot) (entities.Spot, bool) {
	for _, s := range board {
		if s.Status == entities.SpotFree {
			return s, true
		}
	}
	return entities.Spot{}, false
}
