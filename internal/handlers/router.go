package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rentx-lk/rentx-api/internal/auth"
	"github.com/rentx-lk/rentx-api/internal/booking"
	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/clock"
	"github.com/rentx-lk/rentx-api/internal/db"
	"github.com/rentx-lk/rentx-api/internal/events"
	"github.com/rentx-lk/rentx-api/internal/middleware"
	"github.com/rentx-lk/rentx-api/internal/models"
)

// Login and registration attempts allowed per client per window.
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Store        *catalog.Store
	Availability booking.Availability
	Clock        clock.Clock
	Users        db.UserCollection
	Reservations db.ReservationCollection
	Publisher    events.Publisher
	AuthService  *auth.Service
	CORSOrigins  []string
	// TrustProxy keys the auth rate limit on X-Forwarded-For. Only set it
	// behind a proxy that overwrites the header.
	TrustProxy   bool
}

// NewRouter builds the full HTTP surface.
func NewRouter(d Deps) http.Handler {
	if d.Clock == nil {
		d.Clock = clock.NewSystem()
	}
	if d.Publisher == nil {
		d.Publisher = events.NopPublisher{}
	}

	vehicles := NewVehicleHandler(d.Store)
	bookings := NewBookingHandler(d.Store, d.Availability, d.Clock, d.Reservations, d.Publisher)
	maps := NewMapHandler(d.Store)
	accounts := NewAuthHandler(d.AuthService, d.Users)
	authMW := middleware.NewAuthMiddleware(d.AuthService)
	limiter := middleware.NewRateLimitMiddleware()
	limiter.TrustProxyHeaders = d.TrustProxy

	r := mux.NewRouter()
	r.NotFoundHandler = NotFoundHandler()
	r.MethodNotAllowedHandler = MethodNotAllowedHandler()

	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/catalog/types", vehicles.Types).Methods(http.MethodGet)
	api.HandleFunc("/catalog/provinces", vehicles.Provinces).Methods(http.MethodGet)
	api.HandleFunc("/catalog/filters", vehicles.FilterOptions).Methods(http.MethodGet)

	api.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/featured", vehicles.Featured).Methods(http.MethodGet)
	api.HandleFunc("/search", vehicles.Search).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/calendar", bookings.Calendar).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/calendar/click", bookings.Click).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}/quote", bookings.Quote).Methods(http.MethodGet)

	api.HandleFunc("/map/locations", maps.Locations).Methods(http.MethodGet)
	api.HandleFunc("/map/vehicles", maps.Vehicles).Methods(http.MethodGet)
	api.HandleFunc("/map/center", maps.Center).Methods(http.MethodGet)

	limited := limiter.RateLimit(authRateLimit, authRateWindow)
	api.Handle("/auth/register", limited(http.HandlerFunc(accounts.Register))).Methods(http.MethodPost)
	api.Handle("/auth/login", limited(http.HandlerFunc(accounts.Login))).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-strength", accounts.PasswordStrength).Methods(http.MethodPost)

	protected := func(h http.HandlerFunc, permission models.Permission) http.Handler {
		return authMW.Authenticate(authMW.RequirePermission(permission)(h))
	}
	api.Handle("/auth/profile", protected(accounts.GetProfile, models.PermViewProfile)).Methods(http.MethodGet)
	api.Handle("/auth/change-password", protected(accounts.ChangePassword, models.PermChangePassword)).Methods(http.MethodPost)
	api.Handle("/vehicles/{id}/reservations", protected(bookings.CreateReservation, models.PermRequestReservation)).Methods(http.MethodPost)
	api.Handle("/reservations",
		authMW.Authenticate(authMW.RequireRole(models.RoleAdmin)(http.HandlerFunc(bookings.ListReservations))),
	).Methods(http.MethodGet)

	var h http.Handler = r
	h = middleware.CORS(d.CORSOrigins)(h)
	h = middleware.RequestLogger(h)
	return h
}
