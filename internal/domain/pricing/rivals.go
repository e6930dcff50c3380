package pricing

import (
	"fmt"
	"strings"

	"topdog-boost/internal/domain/ladder"
	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/pkg/errs"
)

// Rivals curve: a slow linear region up to mid-Diamond, a geometric ramp
// past it, and a clamped flat band for the OOA top tier. Constants must
// match the storefront's client-side preview.
const (
	rivalsBasePrice = 12.49
	rivalsSlowStep  = 3.75
	rivalsFastStep  = 12.75
	rivalsStartMult = 1.65
	rivalsGrowth    = 1.24

	ooaMinPrice  = 1000.0
	ooaMaxPrice  = 2000.0
	ooaStepPrice = 25.0

	ooaRank      = "OOA"
	eternityRank = "Eternity"
	midDiaRank   = "Diamond 2"
)

var (
	rivalsTiers   = []string{"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Grandmaster", "Celestial"}
	rivalsSingles = []string{eternityRank, ooaRank}
)

type Rivals struct {
	ladder      *ladder.Ladder
	midDiaIdx   int
	eternityIdx int
}

func NewRivals() *Rivals {
	l := ladder.New(rivalsTiers, rivalsSingles)
	return &Rivals{
		ladder:      l,
		midDiaIdx:   l.IndexOf(midDiaRank),
		eternityIdx: l.IndexOf(eternityRank),
	}
}

func (s *Rivals) Game() order.Game    { return order.GameRivals }
func (s *Rivals) ProductName() string { return "TopDog Rivals Boost" }
func (s *Rivals) SuccessPath() string { return "/rivals/" }

func (s *Rivals) ProductDesc(req *order.Request) string {
	return fmt.Sprintf("%s → %s", req.RankFrom, req.RankTo)
}

func (s *Rivals) ValidateSelection(req *order.Request) error {
	if s.ladder.StepsUp(req.RankFrom, req.RankTo) <= 0 {
		return errs.ErrInvalidRankSelection
	}
	if req.Package != req.ExpectedPackage() {
		return errs.ErrInvalidPackage
	}
	if req.Addons.SpecificHero && strings.TrimSpace(req.HeroName) == "" {
		return errs.ErrHeroNameRequired
	}
	return nil
}

func (s *Rivals) BasePrice(req *order.Request) float64 {
	i := s.ladder.IndexOf(req.RankFrom)
	j := s.ladder.IndexOf(req.RankTo)
	if i == ladder.NotFound || j == ladder.NotFound {
		return 0
	}
	steps := j - i
	if steps <= 0 {
		return 0
	}

	if req.RankTo == ooaRank {
		return s.ooaPrice(i)
	}

	if j <= s.midDiaIdx {
		return rivalsBasePrice + float64(steps)*rivalsSlowStep
	}

	slowSteps := max(0, s.midDiaIdx-i)
	slowCost := rivalsBasePrice + float64(slowSteps)*rivalsSlowStep

	postSteps := j - max(i, s.midDiaIdx)
	rampCost := sumGeometricSteps(rivalsFastStep, postSteps, rivalsStartMult, rivalsGrowth)

	return slowCost + rampCost
}

// ooaPrice prices the uncapped top tier: a flat band keyed on the distance
// from the start rank to the highest regular rank, clamped to [min, max].
func (s *Rivals) ooaPrice(fromIdx int) float64 {
	steps := max(0, s.eternityIdx-fromIdx)
	return clamp(ooaMinPrice+float64(steps)*ooaStepPrice, ooaMinPrice, ooaMaxPrice)
}

func (s *Rivals) AddonMultiplier(a order.Addons) float64 {
	m := 1.0
	if a.Priority {
		m += 0.2
	}
	if a.SpecificHero {
		m += 0.2
	}
	if a.LowRR {
		m += 0.5
	}
	return m
}
