package entities

// ReservationRequest carries the vehicle data submitted when reserving a spot.
// All four fields are required before submission.
type ReservationRequest struct {
	ParkingTypeID int    `json:"parking_type_id" validate:"required"`
	LicensePlate  string `json:"license_plate" validate:"required"`
	VehicleColor  string `json:"vehicle_color" validate:"required"`
	VehicleYear   string `json:"vehicle_year" validate:"required,numeric"`
}

// ActiveReservation is the backend-persisted record linking a vehicle to an
// occupied spot. The license plate is the removal key.
type ActiveReservation struct {
	ID            int    `json:"id,omitempty"`
	ParkingTypeID int    `json:"parking_type_id,omitempty"`
	LicensePlate  string `json:"license_plate"`
	VehicleColor  string `json:"vehicle_color"`
	VehicleYear   string `json:"vehicle_year"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// APIError is the error payload shape used by the backend. Token and register
// endpoints report under "detail", the reservation endpoints under "message".
type APIError struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e APIError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Detail
}
