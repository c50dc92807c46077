package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		days  int
		quote Quote
	}{
		{"three days at 50", 50, 3, Quote{DailyRate: 50, Days: 3, Subtotal: 150, ServiceFee: 15, Total: 165}},
		{"one day at 33", 33, 1, Quote{DailyRate: 33, Days: 1, Subtotal: 33, ServiceFee: 3, Total: 36}},
		{"fee rounds half up", 25, 1, Quote{DailyRate: 25, Days: 1, Subtotal: 25, ServiceFee: 3, Total: 28}},
		{"fee rounds down", 34, 1, Quote{DailyRate: 34, Days: 1, Subtotal: 34, ServiceFee: 3, Total: 37}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.quote, Price(tt.rate, tt.days))
		})
	}
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 1, DayCount(Empty()))
	assert.Equal(t, 1, DayCount(StartOnly(day("2026-10-09"))))
	assert.Equal(t, 3, DayCount(Complete(day("2026-10-09"), day("2026-10-11"))))
	assert.Equal(t, 3, DayCount(Complete(day("2026-10-30"), day("2026-11-01"))))
	assert.Equal(t, 1, DayCount(Complete(day("2026-10-09"), day("2026-10-09"))))
	assert.Equal(t, 146098, DayCount(Complete(day("2000-01-01"), day("2400-01-01"))))
	assert.Equal(t, 3652059, DayCount(Complete(day("0001-01-01"), day("9999-12-31"))))
}

func TestQuoteFor(t *testing.T) {
	q := QuoteFor(50, Complete(day("2026-10-09"), day("2026-10-11")))
	assert.Equal(t, float64(165), q.Total)
}

func TestFormatLKR(t *testing.T) {
	assert.Equal(t, "LKR 0", FormatLKR(0))
	assert.Equal(t, "LKR 165", FormatLKR(165))
	assert.Equal(t, "LKR 1,234", FormatLKR(1234))
	assert.Equal(t, "LKR 1,234,567", FormatLKR(1234567))
	assert.Equal(t, "LKR 12.5", FormatLKR(12.5))
	assert.Equal(t, "LKR 12.05", FormatLKR(12.05))
	assert.Equal(t, "LKR -40", FormatLKR(-40))
}
