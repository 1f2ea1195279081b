package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"parkingspot/internal/entities"
)

type Handler struct {
	store  *Store
	tokens *TokenIssuer
	log    *logrus.Entry
}

func NewHandler(store *Store, tokens *TokenIssuer, log *logrus.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, log: log.WithField("component", "devserver")}
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, code int, field, message string) {
	writeJSON(w, code, map[string]string{field: message})
}

// Token implements POST /token with URL-encoded credentials, mirroring the
// real backend's OAuth2 password flow shape.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "detail", "Invalid form data")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeJSONError(w, http.StatusBadRequest, "detail", "Username and password required")
		return
	}

	user, err := h.store.Authenticate(username, password)
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "detail", "Incorrect username or password")
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.WithError(err).Error("issuing token")
		writeJSONError(w, http.StatusInternalServerError, "detail", "Could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, entities.Session{AccessToken: token, TokenType: "Bearer"})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "detail", "Invalid request")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "detail", "All fields are required")
		return
	}
	user, err := h.store.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		writeJSONError(w, http.StatusConflict, "detail", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entities.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (h *Handler) ListParkingTypes(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, h.store.FacilityTypes(skip, limit))
}

func (h *Handler) CreateParking(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "message", "Invalid request")
		return
	}
	if req.LicensePlate == "" || req.VehicleColor == "" || req.VehicleYear == "" || req.ParkingTypeID == 0 {
		writeJSONError(w, http.StatusBadRequest, "message", "Todos os campos são obrigatórios")
		return
	}
	res, err := h.store.CreateReservation(req)
	if err != nil {
		writeJSONError(w, http.StatusConflict, "message", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entities.ActiveReservation{
		ID:            res.ID,
		ParkingTypeID: res.ParkingTypeID,
		LicensePlate:  res.LicensePlate,
		VehicleColor:  res.VehicleColor,
		VehicleYear:   res.VehicleYear,
	})
}

func (h *Handler) SearchActive(w http.ResponseWriter, r *http.Request) {
	plate := r.URL.Query().Get("license_plate")
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	matches := h.store.SearchActive(plate, skip, limit)
	out := make([]entities.ActiveReservation, 0, len(matches))
	for _, m := range matches {
		out = append(out, entities.ActiveReservation{
			ID:            m.ID,
			ParkingTypeID: m.ParkingTypeID,
			LicensePlate:  m.LicensePlate,
			VehicleColor:  m.VehicleColor,
			VehicleYear:   m.VehicleYear,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) RemoveActive(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["license_plate"]
	if !h.store.RemoveActive(plate) {
		writeJSONError(w, http.StatusNotFound, "message", "Veículo não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
