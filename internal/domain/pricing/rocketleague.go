package pricing

import (
	"fmt"
	"strings"

	"topdog-boost/internal/domain/ladder"
	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/pkg/errs"
)

// Rocket League pricing: every step costs a flat amount keyed by the tier
// being stepped into, ramping hard after Champion, with one large final
// jump into SSL.
const sslRank = "SSL"

const sslJumpPrice = 199.0

var (
	rlTiers   = []string{"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Champion", "Grand Champion"}
	rlSingles = []string{sslRank}

	rlStepPriceByTier = map[string]float64{
		"bronze":        3.00,
		"silver":        3.50,
		"gold":          4.25,
		"platinum":      6.00,
		"diamond":       9.00,
		"champion":      16.00,
		"grandchampion": 30.00,
	}
)

type RocketLeague struct {
	ladder *ladder.Ladder
}

func NewRocketLeague() *RocketLeague {
	return &RocketLeague{ladder: ladder.New(rlTiers, rlSingles)}
}

func (s *RocketLeague) Game() order.Game    { return order.GameRocketLeague }
func (s *RocketLeague) ProductName() string { return "TopDog Rocket League Boost" }
func (s *RocketLeague) SuccessPath() string { return "/rocketleague/" }

func (s *RocketLeague) ProductDesc(req *order.Request) string {
	return fmt.Sprintf("%s → %s", req.RankFrom, req.RankTo)
}

func (s *RocketLeague) ValidateSelection(req *order.Request) error {
	if req.RankFrom == "" || req.RankTo == "" {
		return errs.ErrInvalidRankSelection
	}
	if s.ladder.StepsUp(req.RankFrom, req.RankTo) <= 0 {
		return errs.ErrInvalidRankSelection
	}
	if req.Package != req.ExpectedPackage() {
		return errs.ErrInvalidPackage
	}
	return nil
}

func (s *RocketLeague) BasePrice(req *order.Request) float64 {
	i := s.ladder.IndexOf(req.RankFrom)
	j := s.ladder.IndexOf(req.RankTo)
	if i == ladder.NotFound || j == ladder.NotFound || j <= i {
		return 0
	}

	total := 0.0
	// Sum the cost of each step into the destination rank.
	for k := i + 1; k <= j; k++ {
		dest := s.ladder.Rank(k)
		if dest == sslRank {
			total += sslJumpPrice
			continue
		}
		total += rlStepPriceByTier[rlTierKey(dest)]
	}
	return total
}

// rlTierKey collapses a rank name to its price-table key: the
// "Grand Champion"/"Champion" prefixes each share one key, everything else
// keys on its first word.
func rlTierKey(rank string) string {
	lower := strings.ToLower(rank)
	switch {
	case strings.HasPrefix(lower, "grand champion"):
		return "grandchampion"
	case strings.HasPrefix(lower, "champion"):
		return "champion"
	}
	first, _, _ := strings.Cut(lower, " ")
	return first
}

func (s *RocketLeague) AddonMultiplier(a order.Addons) float64 {
	m := 1.0
	if a.Priority {
		m += 0.2
	}
	if a.LowRR {
		m += 0.5
	}
	return m
}
