// Package devserver is a local stand-in for the ParkingSpot backend. It
// implements the observed HTTP contract with an in-memory store so the CLI
// and the end-to-end tests can run against a real server without a deployment.
package devserver

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"parkingspot/internal/entities"
)

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
}

type StoredReservation struct {
	ID            int
	Ref           string
	ParkingTypeID int
	LicensePlate  string
	VehicleColor  string
	VehicleYear   string
	CreatedAt     time.Time
}

// Store holds all devserver state. Writes take the lock; there is no
// persistence across restarts, matching its test-double role.
type Store struct {
	mu           sync.Mutex
	users        map[string]*User
	facilities   []entities.FacilityType
	reservations []*StoredReservation
	nextUserID   int
	nextResID    int
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]*User),
		nextUserID: 1,
		nextResID:  1,
		facilities: []entities.FacilityType{
			{ID: 1, Name: "Shopping", Capacity: 3},
			{ID: 2, Name: "Centro", Capacity: 10},
			{ID: 3, Name: "Aeroporto", Capacity: 25},
		},
	}
}

func (s *Store) CreateUser(username, email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return nil, fmt.Errorf("username already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	s.nextUserID++
	s.users[username] = u
	return u, nil
}

func (s *Store) Authenticate(username, password string) (*User, error) {
	s.mu.Lock()
	u, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return u, nil
}

func (s *Store) FacilityTypes(skip, limit int) []entities.FacilityType {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.facilities) {
		return []entities.FacilityType{}
	}
	out := s.facilities[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	snapshot := make([]entities.FacilityType, len(out))
	copy(snapshot, out)
	return snapshot
}

func (s *Store) FacilityByID(id int) (entities.FacilityType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.facilities {
		if f.ID == id {
			return f, true
		}
	}
	return entities.FacilityType{}, false
}

func (s *Store) CreateReservation(req entities.ReservationRequest) (*StoredReservation, error) {
	facility, ok := s.FacilityByID(req.ParkingTypeID)
	if !ok {
		return nil, fmt.Errorf("estacionamento não encontrado")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	occupied := 0
	for _, r := range s.reservations {
		if r.ParkingTypeID == req.ParkingTypeID {
			occupied++
		}
		if strings.EqualFold(r.LicensePlate, req.LicensePlate) {
			return nil, fmt.Errorf("veículo já possui reserva ativa")
		}
	}
	if occupied >= facility.Capacity {
		return nil, fmt.Errorf("estacionamento lotado")
	}

	res := &StoredReservation{
		ID:            s.nextResID,
		Ref:           uuid.NewString(),
		ParkingTypeID: req.ParkingTypeID,
		LicensePlate:  req.LicensePlate,
		VehicleColor:  req.VehicleColor,
		VehicleYear:   req.VehicleYear,
		CreatedAt:     time.Now().UTC(),
	}
	s.nextResID++
	s.reservations = append(s.reservations, res)
	return res, nil
}

func (s *Store) SearchActive(plate string, skip, limit int) []*StoredReservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*StoredReservation
	for _, r := range s.reservations {
		if plate == "" || strings.EqualFold(r.LicensePlate, plate) {
			matches = append(matches, r)
		}
	}
	if skip > 0 {
		if skip >= len(matches) {
			return nil
		}
		matches = matches[skip:]
	}
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}

func (s *Store) RemoveActive(plate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reservations {
		if strings.EqualFold(r.LicensePlate, plate) {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// SweepOlderThan drops reservations past the retention window. Runs from the
// cron job so abandoned test data does not pile up in long-lived devservers.
func (s *Store) SweepOlderThan(age time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-age)
	kept := s.reservations[:0]
	removed := 0
	for _, r := range s.reservations {
		if r.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.reservations = kept
	return removed
}
