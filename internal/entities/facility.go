package entities

// FacilityType is one parking location as returned by the directory endpoint.
// The collection is an immutable snapshot, superseded by the next fetch.
type FacilityType struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type SpotStatus string

const (
	SpotFree     SpotStatus = "livre"
	SpotOccupied SpotStatus = "ocupado"
)

// Spot is a client-side placeholder unit of capacity. The backend does not
// track per-spot occupancy, so spots are synthesized from FacilityType.Capacity
// at selection time and never persisted.
type Spot struct {
	ID     int        `json:"id"`
	Status SpotStatus `json:"status"`
}
