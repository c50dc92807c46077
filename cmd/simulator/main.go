package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// vehicleTypes mirrors the catalog categories the renters pick from.
var vehicleTypes = []string{"Sedan", "SUV", "Van", "Hatchback", "Tuk-Tuk", "Motorbike", "Luxury", "Minibus"}

var errConflict = errors.New("conflict")

type apiError struct {
	Status int
	Code   string `json:"code"`
	Msg    string `json:"error"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api status %d: %s (%s)", e.Status, e.Msg, e.Code)
}

type vehicle struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"price_per_day"`
}

type cell struct {
	Date   string `json:"date"`
	Booked bool   `json:"booked"`
}

type calendar struct {
	Month     string `json:"month"`
	NextMonth string `json:"next_month"`
	Cells     []cell `json:"cells"`
}

type selection struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Phase string `json:"phase"`
}

type quote struct {
	Days    int     `json:"days"`
	Total   float64 `json:"total"`
	Display struct {
		Total string `json:"total"`
	} `json:"display"`
}

// client talks to the RentX API as one renter.
type client struct {
	baseURL string
	http    *http.Client
	token   string
}

func newClient(baseURL string) *client {
	return &client{baseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		if resp.StatusCode == http.StatusConflict {
			return fmt.Errorf("%w: %v", errConflict, apiErr)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// signIn registers the renter, or logs in when the email is already taken.
func (c *client) signIn(ctx context.Context, name, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"full_name": name,
		"email":     email,
		"password":  password,
	}, &resp)
	if errors.Is(err, errConflict) {
		err = c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
			"email":    email,
			"password": password,
		}, &resp)
	}
	if err != nil {
		return fmt.Errorf("sign in %s: %w", email, err)
	}
	c.token = resp.Token
	return nil
}

// randomCriteria builds a search page query the way a user would drag the
// sliders and tick boxes.
func randomCriteria(rng *rand.Rand) url.Values {
	q := url.Values{}
	for _, t := range vehicleTypes {
		if rng.Intn(4) == 0 {
			q.Add("types", t)
		}
	}
	q.Set("max_price", strconv.Itoa(10+5*rng.Intn(49)))
	q.Set("min_seats", strconv.Itoa(1+rng.Intn(5)))
	if rng.Intn(3) == 0 {
		q.Set("driver", "true")
	}
	q.Set("sort", []string{"price-asc", "price-desc", "rating", "newest"}[rng.Intn(4)])
	return q
}

func (c *client) search(ctx context.Context, q url.Values) ([]vehicle, error) {
	var resp struct {
		Vehicles []vehicle `json:"vehicles"`
	}
	err := c.do(ctx, http.MethodGet, "/vehicles?"+q.Encode(), nil, &resp)
	return resp.Vehicles, err
}

func (c *client) calendar(ctx context.Context, vehicleID, month string) (calendar, error) {
	var resp struct {
		Calendar calendar `json:"calendar"`
	}
	path := "/vehicles/" + url.PathEscape(vehicleID) + "/calendar"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp.Calendar, err
}

func (c *client) click(ctx context.Context, vehicleID, date string, sel selection) (selection, error) {
	var resp struct {
		Ignored   bool      `json:"ignored"`
		Selection selection `json:"selection"`
	}
	err := c.do(ctx, http.MethodPost, "/vehicles/"+url.PathEscape(vehicleID)+"/calendar/click", map[string]string{
		"date":  date,
		"start": sel.Start,
		"end":   sel.End,
	}, &resp)
	return resp.Selection, err
}

func (c *client) quote(ctx context.Context, vehicleID string, sel selection) (quote, error) {
	var resp struct {
		Quote quote `json:"quote"`
	}
	q := url.Values{"start": {sel.Start}, "end": {sel.End}}
	err := c.do(ctx, http.MethodGet, "/vehicles/"+url.PathEscape(vehicleID)+"/quote?"+q.Encode(), nil, &resp)
	return resp.Quote, err
}

func (c *client) reserve(ctx context.Context, vehicleID string, sel selection) error {
	return c.do(ctx, http.MethodPost, "/vehicles/"+url.PathEscape(vehicleID)+"/reservations", map[string]string{
		"start_date": sel.Start,
		"end_date":   sel.End,
	}, nil)
}

// freeDays returns the unbooked dates of a month view.
func freeDays(cal calendar) []string {
	var out []string
	for _, c := range cal.Cells {
		if !c.Booked {
			out = append(out, c.Date)
		}
	}
	return out
}

// browse runs one search, picks a vehicle, selects a range next month and
// prices it. Some rounds end in a reservation request.
func browse(ctx context.Context, c *client, rng *rand.Rand, reserveChance float64) error {
	criteria := randomCriteria(rng)
	results, err := c.search(ctx, criteria)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	log.WithFields(log.Fields{"query": criteria.Encode(), "results": len(results)}).Info("Searched catalog")
	if len(results) == 0 {
		return nil
	}

	v := results[rng.Intn(len(results))]
	current, err := c.calendar(ctx, v.ID, "")
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	cal, err := c.calendar(ctx, v.ID, current.NextMonth)
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}

	free := freeDays(cal)
	if len(free) == 0 {
		log.WithField("vehicle_id", v.ID).Info("No free days")
		return nil
	}

	sel := selection{Phase: "empty"}
	for i := 0; i < 2; i++ {
		day := free[rng.Intn(len(free))]
		if sel, err = c.click(ctx, v.ID, day, sel); err != nil {
			return fmt.Errorf("click: %w", err)
		}
		log.WithFields(log.Fields{"vehicle_id": v.ID, "date": day, "phase": sel.Phase}).Debug("Clicked day")
	}

	q, err := c.quote(ctx, v.ID, sel)
	if err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	log.WithFields(log.Fields{
		"vehicle_id": v.ID,
		"start":      sel.Start,
		"end":        sel.End,
		"days":       q.Days,
		"total":      q.Display.Total,
	}).Info("Quoted rental")

	if rng.Float64() < reserveChance {
		if err := c.reserve(ctx, v.ID, sel); err != nil {
			return fmt.Errorf("reserve: %w", err)
		}
		log.WithFields(log.Fields{"vehicle_id": v.ID, "start": sel.Start, "end": sel.End}).Info("Requested reservation")
	}
	return nil
}

type settings struct {
	apiURL        string
	renters       int
	rounds        int
	interval      time.Duration
	reserveChance float64
}

func loadSettings() settings {
	s := settings{
		apiURL:        "http://localhost:8080/api",
		renters:       3,
		interval:      2 * time.Second,
		reserveChance: 0.25,
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		s.apiURL = v
	}
	if n, err := strconv.Atoi(os.Getenv("SIM_RENTERS")); err == nil && n > 0 {
		s.renters = n
	}
	if n, err := strconv.Atoi(os.Getenv("SIM_ROUNDS")); err == nil && n >= 0 {
		s.rounds = n
	}
	if n, err := strconv.Atoi(os.Getenv("SIM_TICK_SECONDS")); err == nil && n >= 1 {
		s.interval = time.Duration(n) * time.Second
	}
	return s
}

// runRenter signs in and browses every interval. rounds == 0 runs until ctx
// is done.
func runRenter(ctx context.Context, s settings, id int, rng *rand.Rand) error {
	c := newClient(s.apiURL)
	email := fmt.Sprintf("renter%d@sim.rentx.lk", id)
	if err := c.signIn(ctx, fmt.Sprintf("Sim Renter %d", id), email, "sim-password-"+strconv.Itoa(id)); err != nil {
		return err
	}
	log.WithField("email", email).Info("Renter signed in")

	tick := time.NewTicker(s.interval)
	defer tick.Stop()
	for round := 0; s.rounds == 0 || round < s.rounds; round++ {
		if err := browse(ctx, c, rng, s.reserveChance); err != nil {
			log.WithError(err).WithField("renter", id).Warn("Browse round failed")
		}
		if s.rounds != 0 && round == s.rounds-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}
	}
	return nil
}

func main() {
	s := loadSettings()
	log.WithFields(log.Fields{
		"api_url":  s.apiURL,
		"renters":  s.renters,
		"rounds":   s.rounds,
		"interval": s.interval,
	}).Info("Starting renter simulation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	for i := 1; i <= s.renters; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
			if err := runRenter(ctx, s, id, rng); err != nil {
				log.WithError(err).WithField("renter", id).Error("Renter stopped")
			}
		}(i)
	}
	wg.Wait()
	log.Info("Simulation finished")
}
