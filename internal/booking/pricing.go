package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ServiceFeeRate is applied to the subtotal.
const ServiceFeeRate = 0.10

// Quote is the booking summary for a selection.
type Quote struct {
	DailyRate  float64 `json:"daily_rate"`
	Days       int     `json:"days"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

// DayCount is the rental length: one day until both endpoints are chosen,
// then the inclusive span with a floor of one.
func DayCount(sel Selection) int {
	start, _ := sel.Start()
	end, ok := sel.End()
	if !ok {
		return 1
	}
	n := daysBetween(start, end) + 1
	if n < 1 {
		return 1
	}
	return n
}

// Price computes subtotal, rounded service fee and total.
func Price(rate float64, days int) Quote {
	subtotal := rate * float64(days)
	fee := math.Round(subtotal * ServiceFeeRate)
	return Quote{
		DailyRate:  rate,
		Days:       days,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}
}

// QuoteFor prices a selection.
func QuoteFor(rate float64, sel Selection) Quote {
	return Price(rate, DayCount(sel))
}

// FormatLKR renders an amount as "LKR 12,345", keeping up to two decimals.
func FormatLKR(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	digits := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	b.WriteString("LKR ")
	if amount < 0 && cents > 0 {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	switch frac := cents % 100; {
	case frac == 0:
	case frac%10 == 0:
		b.WriteString("." + strconv.FormatInt(frac/10, 10))
	default:
		b.WriteString(fmt.Sprintf(".%02d", frac))
	}
	return b.String()
}
