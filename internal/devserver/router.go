package devserver

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter wires the devserver routes under both observed path conventions,
// so either client configuration works against it. The protected endpoints
// are the directory listing and reservation creation; search and removal are
// public, as observed in the wild.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/token", h.Token).Methods("POST")
	r.HandleFunc("/register", h.Register).Methods("POST")

	mount := func(sub *mux.Router) {
		protected := sub.NewRoute().Subrouter()
		protected.Use(h.tokens.Middleware)
		protected.HandleFunc("/parkingsTypes/", h.ListParkingTypes).Methods("GET")
		protected.HandleFunc("/parkings/", h.CreateParking).Methods("POST")

		sub.HandleFunc("/parkings/active/search/", h.SearchActive).Methods("GET")
		sub.HandleFunc("/parkings/active/{license_plate}", h.RemoveActive).Methods("DELETE")
	}
	mount(r)
	mount(r.PathPrefix("/parking").Subrouter())

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return handlers.LoggingHandler(os.Stdout, cors(r))
}
