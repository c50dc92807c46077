package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rentx-lk/rentx-api/internal/auth"
	"github.com/rentx-lk/rentx-api/internal/booking"
	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/clock"
	"github.com/rentx-lk/rentx-api/internal/db"
	"github.com/rentx-lk/rentx-api/internal/handlers"
)

func newAPI(t *testing.T) (*httptest.Server, *db.MemoryReservationCollection) {
	t.Helper()
	reservations := db.NewMemoryReservationCollection()
	router := handlers.NewRouter(handlers.Deps{
		Store:        catalog.MustNew(catalog.Fixture),
		Availability: booking.NewFixedAvailability(),
		Clock:        clock.NewSystem(),
		Users:        db.NewMemoryUserCollection(),
		Reservations: reservations,
		AuthService:  auth.NewService("sim-test-secret", time.Hour),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, reservations
}

func TestSignInRegistersThenLogsIn(t *testing.T) {
	srv, _ := newAPI(t)
	ctx := context.Background()

	first := newClient(srv.URL + "/api")
	if err := first.signIn(ctx, "Sim Renter", "sim@rentx.lk", "sim-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if first.token == "" {
		t.Fatal("expected a token after register")
	}

	second := newClient(srv.URL + "/api")
	if err := second.signIn(ctx, "Sim Renter", "sim@rentx.lk", "sim-password"); err != nil {
		t.Fatalf("login fallback failed: %v", err)
	}
	if second.token == "" {
		t.Fatal("expected a token after login")
	}

	third := newClient(srv.URL + "/api")
	err := third.signIn(ctx, "Sim Renter", "sim@rentx.lk", "wrong-password")
	var apiErr *apiError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 api error, got %v", err)
	}
}

func TestRandomCriteriaAreAccepted(t *testing.T) {
	srv, _ := newAPI(t)
	c := newClient(srv.URL + "/api")
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 25; i++ {
		q := randomCriteria(rng)
		if _, err := c.search(context.Background(), q); err != nil {
			t.Fatalf("search %q rejected: %v", q.Encode(), err)
		}
	}
}

func TestFreeDays(t *testing.T) {
	cal := calendar{Cells: []cell{
		{Date: "2026-11-04"},
		{Date: "2026-11-05", Booked: true},
		{Date: "2026-11-08"},
	}}
	got := freeDays(cal)
	if len(got) != 2 || got[0] != "2026-11-04" || got[1] != "2026-11-08" {
		t.Errorf("unexpected free days: %v", got)
	}
}

func TestBrowseRequestsReservations(t *testing.T) {
	srv, reservations := newAPI(t)
	ctx := context.Background()
	c := newClient(srv.URL + "/api")
	if err := c.signIn(ctx, "Sim Renter", "browse@rentx.lk", "sim-password"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 30; i++ {
		if err := browse(ctx, c, rng, 1); err != nil {
			t.Fatalf("round %d failed: %v", i, err)
		}
	}

	stored, err := reservations.FindReservations(ctx, "")
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(stored) == 0 {
		t.Fatal("expected at least one reservation request")
	}
	for _, r := range stored {
		if r.StartDate > r.EndDate {
			t.Errorf("reservation %s has start after end: %s > %s", r.ID.Hex(), r.StartDate, r.EndDate)
		}
	}
}

func TestRunRenterStopsAfterRounds(t *testing.T) {
	srv, _ := newAPI(t)
	s := settings{
		apiURL:        srv.URL + "/api",
		rounds:        2,
		interval:      10 * time.Millisecond,
		reserveChance: 0,
	}

	done := make(chan error, 1)
	go func() { done <- runRenter(context.Background(), s, 1, rand.New(rand.NewSource(1))) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runRenter returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runRenter did not stop after the configured rounds")
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test/api")
	t.Setenv("SIM_RENTERS", "5")
	t.Setenv("SIM_ROUNDS", "4")
	t.Setenv("SIM_TICK_SECONDS", "0")

	s := loadSettings()
	if s.apiURL != "http://api.test/api" {
		t.Errorf("apiURL = %s", s.apiURL)
	}
	if s.renters != 5 || s.rounds != 4 {
		t.Errorf("renters/rounds = %d/%d", s.renters, s.rounds)
	}
	if s.interval != 2*time.Second {
		t.Errorf("interval should keep default for invalid value, got %s", s.interval)
	}
}
