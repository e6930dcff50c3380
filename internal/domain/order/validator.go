package order

import (
	"topdog-boost/internal/pkg/errs"
)

// Allow-lists for the flat-package game. Ladder games accept free-form
// platform/region text because each storefront page constrains its own
// dropdowns; the Arc Raiders page shares one generic form.
var (
	arcPlatforms = map[string]struct{}{
		"pc":          {},
		"playstation": {},
		"xbox":        {},
	}
	arcRegions = map[string]struct{}{
		"na":   {},
		"eu":   {},
		"asia": {},
		"oce":  {},
	}
)

// ValidateCustomerFields enforces the per-(game, mode) required fields.
// Quote mode needs nothing beyond game + package; checkout mode requires
// contact and routing details per game. Call Normalize first.
func (r *Request) ValidateCustomerFields() error {
	if r.Quote {
		return nil
	}

	switch r.Game {
	case GameRivals, GameRocketLeague:
		if r.Discord == "" || r.Platform == "" || r.IGN == "" || r.Region == "" {
			return errs.ErrMissingRequiredField
		}
	case GameArcRaiders:
		if r.Discord == "" || r.IGN == "" {
			return errs.ErrMissingRequiredField
		}
		if r.Platform != "" {
			if _, ok := arcPlatforms[r.Platform]; !ok {
				return errs.ErrMissingRequiredField
			}
		}
		if r.Region != "" {
			if _, ok := arcRegions[r.Region]; !ok {
				return errs.ErrMissingRequiredField
			}
		}
	default:
		return errs.ErrInvalidGame
	}
	return nil
}
