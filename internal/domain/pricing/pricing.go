package pricing

import (
	"math"

	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/pkg/errs"
)

// Strategy prices one game's ladder or pack catalogue. Implementations are
// pure: a zero base price means the selection is invalid and callers must
// reject non-positive amounts rather than sell for free.
type Strategy interface {
	Game() order.Game
	ProductName() string
	ProductDesc(req *order.Request) string
	SuccessPath() string

	// ValidateSelection checks the rank/pack selection and the package
	// descriptor against the discrete fields. Customer fields are checked
	// separately by the order validator.
	ValidateSelection(req *order.Request) error

	// BasePrice returns the pre-add-on price in currency units, 0 when the
	// selection prices to nothing.
	BasePrice(req *order.Request) float64

	AddonMultiplier(a order.Addons) float64
}

// Registry selects a Strategy by game identifier. Adding a game is a
// registration, not a new branch scattered across validator and metadata
// code.
type Registry struct {
	strategies map[order.Game]Strategy
}

func NewRegistry(strategies ...Strategy) *Registry {
	m := make(map[order.Game]Strategy, len(strategies))
	for _, s := range strategies {
		m[s.Game()] = s
	}
	return &Registry{strategies: m}
}

func (r *Registry) Lookup(g order.Game) (Strategy, error) {
	s, ok := r.strategies[g]
	if !ok {
		return nil, errs.ErrInvalidGame
	}
	return s, nil
}

// Cents applies the add-on multiplier and rounds to integer minor currency
// units with standard rounding.
func Cents(base, multiplier float64) int64 {
	return int64(math.Round(base * multiplier * 100))
}

func clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// sumGeometricSteps is the closed-form sum of a geometric step series:
// base*startMult*growth^0 + ... + base*startMult*growth^(n-1).
func sumGeometricSteps(base float64, steps int, startMult, growth float64) float64 {
	if steps <= 0 {
		return 0
	}
	if growth == 1 {
		return base * startMult * float64(steps)
	}
	return base * startMult * (math.Pow(growth, float64(steps)) - 1) / (growth - 1)
}
