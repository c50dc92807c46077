package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rentx-lk/rentx-api/internal/booking"
	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/clock"
	"github.com/rentx-lk/rentx-api/internal/db"
	"github.com/rentx-lk/rentx-api/internal/events"
	"github.com/rentx-lk/rentx-api/internal/httpjson"
	"github.com/rentx-lk/rentx-api/internal/middleware"
	"github.com/rentx-lk/rentx-api/internal/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DemoNotice accompanies every reservation reply.
const DemoNotice = "This is a demo. No real booking has been made."

// BookingHandler serves the vehicle detail calendar, pricing and
// reservation requests.
type BookingHandler struct {
	vehicles     *VehicleHandler
	availability booking.Availability
	clock        clock.Clock
	reservations db.ReservationCollection
	publisher    events.Publisher
	validate     *validator.Validate
}

func NewBookingHandler(
	store *catalog.Store,
	availability booking.Availability,
	clk clock.Clock,
	reservations db.ReservationCollection,
	publisher events.Publisher,
) *BookingHandler {
	return &BookingHandler{
		vehicles:     NewVehicleHandler(store),
		availability: availability,
		clock:        clk,
		reservations: reservations,
		publisher:    publisher,
		validate:     newValidator(),
	}
}

// QuoteDisplay holds the formatted amounts of a quote.
type QuoteDisplay struct {
	DailyRate  string `json:"daily_rate"`
	Subtotal   string `json:"subtotal"`
	ServiceFee string `json:"service_fee"`
	Total      string `json:"total"`
}

// QuoteResponse is a quote with its display strings.
type QuoteResponse struct {
	booking.Quote
	Display QuoteDisplay `json:"display"`
}

func newQuoteResponse(q booking.Quote) QuoteResponse {
	return QuoteResponse{
		Quote: q,
		Display: QuoteDisplay{
			DailyRate:  booking.FormatLKR(q.DailyRate),
			Subtotal:   booking.FormatLKR(q.Subtotal),
			ServiceFee: booking.FormatLKR(q.ServiceFee),
			Total:      booking.FormatLKR(q.Total),
		},
	}
}

type calendarResponse struct {
	VehicleID string            `json:"vehicle_id"`
	Calendar  booking.MonthView `json:"calendar"`
	Quote     QuoteResponse     `json:"quote"`
}

type clickRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" validate:"omitempty,datetime=2006-01-02"`
}

type clickResponse struct {
	VehicleID   string                 `json:"vehicle_id"`
	Ignored     bool                   `json:"ignored"`
	Selection   booking.SelectionState `json:"selection"`
	Description string                 `json:"description"`
	Quote       QuoteResponse          `json:"quote"`
}

type quoteResponse struct {
	VehicleID   string                 `json:"vehicle_id"`
	Selection   booking.SelectionState `json:"selection"`
	Description string                 `json:"description"`
	Quote       QuoteResponse          `json:"quote"`
}

type reservationResponse struct {
	Reservation models.Reservation `json:"reservation"`
	Quote       QuoteResponse      `json:"quote"`
	Message     string             `json:"message"`
}

// Calendar renders a month of the availability calendar with the current
// selection. Without ?month the current month is shown; earlier months are
// clamped to it.
func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	v, ok := h.vehicles.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	today := clock.Today(h.clock)
	month := today
	if m := q.Get("month"); m != "" {
		parsed, err := booking.ParseMonth(m)
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidDate, err.Error())
			return
		}
		month = parsed
	}

	sel, err := booking.ParseSelection(q.Get("start"), q.Get("end"))
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidDate, err.Error())
		return
	}

	nav := booking.NavigatorAt(today, month)
	blocked, err := h.blockedDays(r.Context(), v.ID, nav.Month())
	if err != nil {
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to load availability")
		return
	}
	if sel, err = h.dropBookedSelection(r.Context(), v.ID, sel); err != nil {
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to load availability")
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, calendarResponse{
		VehicleID: v.ID,
		Calendar:  booking.BuildMonth(nav, blocked, sel),
		Quote:     newQuoteResponse(booking.QuoteFor(v.PricePerDay, sel)),
	})
}

// Click applies one calendar click to the posted selection. Clicks on booked
// days are reported as ignored and leave the selection unchanged.
func (h *BookingHandler) Click(w http.ResponseWriter, r *http.Request) {
	v, ok := h.vehicles.lookup(w, r)
	if !ok {
		return
	}

	var req clickRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	sel, err := booking.ParseSelection(req.Start, req.End)
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidDate, err.Error())
		return
	}
	day, err := booking.ParseDay(req.Date)
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidDate, err.Error())
		return
	}

	blocked, err := h.blockedDays(r.Context(), v.ID, day)
	if err != nil {
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to load availability")
		return
	}

	next := sel.Click(day, blocked)
	httpjson.WriteJSON(w, http.StatusOK, clickResponse{
		VehicleID:   v.ID,
		Ignored:     blocked.Has(day),
		Selection:   next.State(),
		Description: booking.Describe(next),
		Quote:       newQuoteResponse(booking.QuoteFor(v.PricePerDay, next)),
	})
}

// Quote prices a selection given as ?start and ?end.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	v, ok := h.vehicles.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	sel, err := booking.ParseSelection(q.Get("start"), q.Get("end"))
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidDate, err.Error())
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, quoteResponse{
		VehicleID:   v.ID,
		Selection:   sel.State(),
		Description: booking.Describe(sel),
		Quote:       newQuoteResponse(booking.QuoteFor(v.PricePerDay, sel)),
	})
}

// CreateReservation records a demo reservation request for the current user
// and publishes a reservation.requested event.
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeUnauthorized, "user context not found")
		return
	}

	v, ok := h.vehicles.lookup(w, r)
	if !ok {
		return
	}

	var req models.ReservationRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	sel, err := h.selectRange(r.Context(), v.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, errDayUnavailable):
			httpjson.WriteError(w, http.StatusConflict, httpjson.CodeDayUnavailable, err.Error())
		case errors.Is(err, booking.ErrInvalidDay), errors.Is(err, errPastDay):
			httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidDate, err.Error())
		default:
			log.WithError(err).WithField("vehicle_id", v.ID).Error("Failed to load availability")
			httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to load availability")
		}
		return
	}

	quote := booking.QuoteFor(v.PricePerDay, sel)
	start, _ := sel.Start()
	end := start
	if e, ok := sel.End(); ok {
		end = e
	}

	reservation := models.Reservation{
		ID:         primitive.NewObjectID(),
		VehicleID:  v.ID,
		UserID:     claims.UserID,
		StartDate:  booking.DayKey(start),
		EndDate:    booking.DayKey(end),
		Days:       quote.Days,
		DailyRate:  quote.DailyRate,
		Subtotal:   quote.Subtotal,
		ServiceFee: quote.ServiceFee,
		Total:      quote.Total,
		Status:     models.ReservationRequested,
		CreatedAt:  h.clock.Now(),
	}

	if err := h.reservations.InsertReservation(r.Context(), reservation); err != nil {
		log.WithError(err).WithField("vehicle_id", v.ID).Error("Failed to store reservation request")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to store reservation request")
		return
	}

	if err := h.publisher.PublishReservation(r.Context(), reservation); err != nil {
		log.WithError(err).WithField("reservation_id", reservation.ID.Hex()).Warn("Failed to publish reservation event")
	}

	log.WithFields(log.Fields{
		"reservation_id": reservation.ID.Hex(),
		"vehicle_id":     v.ID,
		"user_id":        claims.UserID,
		"days":           reservation.Days,
		"total":          reservation.Total,
	}).Info("Reservation requested")

	httpjson.WriteJSON(w, http.StatusCreated, reservationResponse{
		Reservation: reservation,
		Quote:       newQuoteResponse(quote),
		Message:     DemoNotice,
	})
}

// ListReservations returns recorded requests, newest first, optionally for
// one ?vehicle_id.
func (h *BookingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.FindReservations(r.Context(), r.URL.Query().Get("vehicle_id"))
	if err != nil {
		log.WithError(err).Error("Failed to list reservations")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to list reservations")
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": reservations,
		"count":        len(reservations),
	})
}

var (
	errDayUnavailable = errors.New("day is already booked")
	errPastDay        = errors.New("day is in the past")
)

// selectRange replays the request as calendar clicks so the stored range is
// ordered and both endpoints are free.
func (h *BookingHandler) selectRange(ctx context.Context, vehicleID string, req models.ReservationRequest) (booking.Selection, error) {
	today := clock.Today(h.clock)
	sel := booking.Empty()

	keys := []string{req.StartDate}
	if req.EndDate != "" {
		keys = append(keys, req.EndDate)
	}
	for _, key := range keys {
		day, err := booking.ParseDay(key)
		if err != nil {
			return booking.Selection{}, err
		}
		if day.Before(today) {
			return booking.Selection{}, fmt.Errorf("%w: %s", errPastDay, key)
		}
		blocked, err := h.blockedDays(ctx, vehicleID, day)
		if err != nil {
			return booking.Selection{}, err
		}
		if blocked.Has(day) {
			return booking.Selection{}, fmt.Errorf("%w: %s", errDayUnavailable, key)
		}
		sel = sel.Click(day, blocked)
	}
	return sel, nil
}

// dropBookedSelection clears a client-supplied selection whose start or end
// has since been booked, so the grid and the quote describe the same range.
func (h *BookingHandler) dropBookedSelection(ctx context.Context, vehicleID string, sel booking.Selection) (booking.Selection, error) {
	for _, endpoint := range []func() (time.Time, bool){sel.Start, sel.End} {
		day, ok := endpoint()
		if !ok {
			continue
		}
		blocked, err := h.blockedDays(ctx, vehicleID, day)
		if err != nil {
			return booking.Selection{}, err
		}
		if blocked.Has(day) {
			return booking.Empty(), nil
		}
	}
	return sel, nil
}

func (h *BookingHandler) blockedDays(ctx context.Context, vehicleID string, month time.Time) (booking.DaySet, error) {
	blocked, err := h.availability.BlockedDays(ctx, vehicleID, month)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"vehicle_id": vehicleID,
			"month":      booking.MonthOf(month).Format(booking.MonthLayout),
		}).Error("Failed to load availability")
		return nil, err
	}
	return blocked, nil
}
