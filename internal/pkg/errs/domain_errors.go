package errs

import "errors"

// Domain-specific sentinel errors for the storefront usecase layers
var (
	// Order validation errors
	ErrInvalidGame          = errors.New("invalid game")
	ErrInvalidPackage       = errors.New("invalid package")
	ErrInvalidRankSelection = errors.New("invalid rank selection")
	ErrMissingRequiredField = errors.New("missing required fields")
	ErrHeroNameRequired     = errors.New("hero name required")
	ErrInvalidPrice         = errors.New("invalid price")

	// Signature errors (payment webhook, interaction callback)
	ErrInvalidSignature = errors.New("invalid signature")

	// Provider errors (payment or messaging provider API failures)
	ErrProvider = errors.New("provider error")
)
