package auth

// StrengthLevel buckets a password score.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthMedium StrengthLevel = "medium"
	StrengthStrong StrengthLevel = "strong"
)

// Strength is the result of the sign-up password meter.
type Strength struct {
	Score int           `json:"score"`
	Level StrengthLevel `json:"level"`
}

// PasswordStrength scores a password from 0 to 100. Letter and digit classes
// are ASCII; any other rune counts as a symbol.
func PasswordStrength(password string) Strength {
	var (
		n                            int
		upper, lower, digit, special bool
	)
	for _, r := range password {
		n++
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	score := 0
	if n >= 6 {
		score += 25
	}
	if n >= 8 {
		score += 15
	}
	if n >= 12 {
		score += 10
	}
	if upper && lower {
		score += 20
	}
	if digit {
		score += 15
	}
	if special {
		score += 15
	}
	if score > 100 {
		score = 100
	}

	return Strength{Score: score, Level: levelFor(score)}
}

func levelFor(score int) StrengthLevel {
	switch {
	case score <= 33:
		return StrengthWeak
	case score <= 66:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
