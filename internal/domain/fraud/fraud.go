package fraud

import (
	"strings"
	"time"
)

// VelocityWindow is the rolling window for the rapid-repeat-order check.
const VelocityWindow = 2 * time.Minute

const (
	FlagBurnerEmail = "Burner Email"
	FlagRapidRepeat = "Rapid Repeat Order"
)

// UnknownEmail is what the webhook records when the provider returned no
// customer email; it never matches the denylist.
const UnknownEmail = "UNKNOWN"

// Disposable-email providers, matched by substring against the full
// address.
var burnerDomains = []string{
	"tempmail",
	"10minutemail",
	"mailinator",
	"guerrillamail",
	"yopmail",
}

func IsBurnerEmail(email string) bool {
	if email == "" || email == UnknownEmail {
		return false
	}
	lower := strings.ToLower(email)
	for _, d := range burnerDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// Flags assembles the advisory fraud flags for a completed payment. Flags
// never block the payment; they only color the admin notification.
func Flags(email string, rapidRepeat bool) []string {
	var flags []string
	if IsBurnerEmail(email) {
		flags = append(flags, FlagBurnerEmail)
	}
	if rapidRepeat {
		flags = append(flags, FlagRapidRepeat)
	}
	return flags
}
