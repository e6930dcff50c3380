package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"
)

type Game string

const (
	GameRivals       Game = "rivals"
	GameRocketLeague Game = "rocketleague"
	GameArcRaiders   Game = "arcraiders"
)

// Free-text field caps. Over-long input is truncated, never rejected.
const (
	MaxDiscordLen   = 60
	MaxIGNLen       = 40
	MaxNotesLen     = 500
	MaxHeroNameLen  = 40
	MaxPromoCodeLen = 32
)

type Addons struct {
	Priority     bool
	SpecificHero bool
	LowRR        bool
}

// Request is the negotiated intent for one transaction, quote or checkout.
// The package descriptor must always agree with RankFrom/RankTo; prices are
// recomputed server-side from the discrete rank fields and never trusted
// from the descriptor or any client-computed preview.
type Request struct {
	Game           Game
	Quote          bool
	Package        string
	RankFrom       string
	RankTo         string
	DivisionPoints *float64 // metadata only, never affects price
	Addons         Addons
	HeroName       string
	Discord        string
	Platform       string
	IGN            string
	Region         string
	Notes          string
	PromoCode      string
}

// Normalize trims and caps every free-text field in place.
func (r *Request) Normalize() {
	r.Package = strings.TrimSpace(r.Package)
	r.RankFrom = strings.TrimSpace(r.RankFrom)
	r.RankTo = strings.TrimSpace(r.RankTo)
	r.Discord = truncate(strings.TrimSpace(r.Discord), MaxDiscordLen)
	r.IGN = truncate(strings.TrimSpace(r.IGN), MaxIGNLen)
	r.Notes = truncate(strings.TrimSpace(r.Notes), MaxNotesLen)
	r.HeroName = truncate(strings.TrimSpace(r.HeroName), MaxHeroNameLen)
	r.PromoCode = truncate(strings.TrimSpace(r.PromoCode), MaxPromoCodeLen)
	r.Platform = strings.ToLower(strings.TrimSpace(r.Platform))
	r.Region = strings.ToLower(strings.TrimSpace(r.Region))
}

// ExpectedPackage rebuilds the canonical ladder-game package descriptor from
// the discrete rank fields.
func (r *Request) ExpectedPackage() string {
	return fmt.Sprintf("%s:%s->%s", r.Game, r.RankFrom, r.RankTo)
}

// PackKey extracts the flat-pack key from a "<game>:<key>" descriptor, or ""
// when the descriptor does not belong to this request's game.
func (r *Request) PackKey() string {
	prefix := string(r.Game) + ":"
	if !strings.HasPrefix(r.Package, prefix) {
		return ""
	}
	return strings.TrimPrefix(r.Package, prefix)
}

// truncate caps s at max bytes, backing off so the cut never splits a
// multibyte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewID generates a human-readable order identifier, "TD-<millis>-<RAND4>".
func NewID(now time.Time) string {
	return fmt.Sprintf("TD-%d-%s", now.UnixMilli(), randomSuffix(4))
}

// FallbackID builds a deterministic order identifier for paid sessions whose
// metadata lost the original id. Downstream consumers never see a literal
// "unknown" sentinel.
func FallbackID(now time.Time, sessionID string) string {
	tail := sessionID
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}
	return fmt.Sprintf("TD-%s-%s", now.Format("20060102"), strings.ToUpper(tail))
}

func randomSuffix(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
		if err != nil {
			// crypto/rand should not fail; degrade to a fixed char rather
			// than an invalid id.
			out[i] = 'X'
			continue
		}
		out[i] = idAlphabet[idx.Int64()]
	}
	return string(out)
}
