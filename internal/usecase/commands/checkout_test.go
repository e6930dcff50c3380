//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/domain/pricing"
	"topdog-boost/internal/domain/promo"
	"topdog-boost/internal/pkg/clock"
	"topdog-boost/internal/pkg/config"
	"topdog-boost/internal/pkg/errs"
	"topdog-boost/internal/usecase/commands"
	"topdog-boost/tests/common/builder"
	gatewaymock "topdog-boost/tests/mock/gateway"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var orderIDPattern = regexp.MustCompile(`^TD-\d+-[A-Z0-9]{4}$`)

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *gatewaymock.MockPaymentGateway
	clock       *clock.MockClock
	checkout    commands.CheckoutCommands
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewaymock.NewMockPaymentGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC))
	s.checkout = s.newUseCase(config.NewTestConfig())
}

func (s *CheckoutUseCaseTestSuite) newUseCase(cfg config.Config) commands.CheckoutCommands {
	registry := pricing.NewRegistry(
		pricing.NewRivals(),
		pricing.NewRocketLeague(),
		pricing.NewArcRaiders(),
	)
	return commands.NewCheckoutUseCase(cfg, registry, s.mockGateway, s.clock)
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func (s *CheckoutUseCaseTestSuite) TestQuote() {
	s.Run("prices a basic climb without touching the provider", func() {
		req := builder.NewCheckoutBuilder().WithQuote().BuildDomain()

		res, err := s.checkout.Quote(context.Background(), req)
		s.Require().NoError(err)

		s.Equal(int64(1624), res.AmountCents)
		s.Equal(int64(1624), res.BaseAmountCents)
		s.Zero(res.DiscountCents)
		s.False(res.PromoApplied)
		s.Equal("TopDog Rivals Boost", res.ProductName)
		s.Equal("Bronze 3 → Bronze 2", res.ProductDesc)
	})

	s.Run("promo estimate never pre-discounts the charge amount", func() {
		pct := 10.0
		s.mockGateway.EXPECT().FindActivePromo(gomock.Any(), "SAVE10").
			Return(&promo.Promo{Code: "SAVE10", PromotionCodeID: "promo_1", PercentOff: &pct}, nil)

		req := builder.NewCheckoutBuilder().WithQuote().WithPromo(" save10 ").BuildDomain()

		res, err := s.checkout.Quote(context.Background(), req)
		s.Require().NoError(err)

		s.Equal(int64(1624), res.AmountCents)
		s.Equal(int64(162), res.DiscountCents)
		s.True(res.PromoApplied)
		s.Equal("SAVE10", res.PromoCode)
	})

	s.Run("promo miss quotes without a discount", func() {
		s.mockGateway.EXPECT().FindActivePromo(gomock.Any(), "NOPE").Return(nil, nil)

		req := builder.NewCheckoutBuilder().WithQuote().WithPromo("NOPE").BuildDomain()

		res, err := s.checkout.Quote(context.Background(), req)
		s.Require().NoError(err)
		s.False(res.PromoApplied)
		s.Zero(res.DiscountCents)
	})

	s.Run("promo lookup failure degrades to no discount", func() {
		s.mockGateway.EXPECT().FindActivePromo(gomock.Any(), "SAVE10").
			Return(nil, errs.New("provider down"))

		req := builder.NewCheckoutBuilder().WithQuote().WithPromo("SAVE10").BuildDomain()

		res, err := s.checkout.Quote(context.Background(), req)
		s.Require().NoError(err)
		s.False(res.PromoApplied)
	})

	s.Run("unknown game", func() {
		req := builder.NewCheckoutBuilder().WithQuote().BuildDomain()
		req.Game = order.Game("fortnite")

		_, err := s.checkout.Quote(context.Background(), req)
		s.ErrorIs(err, errs.ErrInvalidGame)
	})
}

func (s *CheckoutUseCaseTestSuite) TestCreateCheckout() {
	s.Run("builds the session spec from the priced order", func() {
		var captured commands.CheckoutSessionSpec
		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec commands.CheckoutSessionSpec) (*commands.CheckoutSessionSnapshot, error) {
				captured = spec
				return &commands.CheckoutSessionSnapshot{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
			})

		req := builder.NewCheckoutBuilder().BuildDomain()

		res, err := s.checkout.CreateCheckout(context.Background(), req, "https://evil.example.com")
		s.Require().NoError(err)

		s.Equal("https://pay.example.com/cs_1", res.CheckoutURL)
		s.Regexp(orderIDPattern, res.OrderID)
		s.Equal(res.OrderID, captured.OrderID)

		s.Equal(commands.IdempotencyKeyForOrder(captured.OrderID), captured.IdempotencyKey)
		s.Equal(int64(1624), captured.AmountCents)
		s.Equal("usd", captured.Currency)
		s.Equal("TopDog Rivals Boost", captured.ProductName)

		// The configured site origin always wins over the request origin.
		s.Equal("https://boost.example.com/rivals/?success=1&order="+captured.OrderID, captured.SuccessURL)
		s.Equal("https://boost.example.com/rivals/?canceled=1", captured.CancelURL)

		wantMetadata := map[string]string{
			"order_id":            captured.OrderID,
			"game":                "rivals",
			"package":             "rivals:Bronze 3->Bronze 2",
			"rank_from":           "Bronze 3",
			"rank_to":             "Bronze 2",
			"division_points":     "",
			"discord":             "booster#0001",
			"platform":            "pc",
			"ign":                 "TestPlayer",
			"region":              "na",
			"notes":               "",
			"addon_priority":      "false",
			"addon_specific_hero": "false",
			"addon_low_rr":        "false",
			"hero_name":           "",
			"base_amount_cents":   "1624",
			"amount_cents":        "1624",
			"addon_multiplier":    "1.00",
		}
		s.Empty(cmp.Diff(wantMetadata, captured.Metadata))
	})

	s.Run("resolved promo rides as a provider discount reference", func() {
		pct := 10.0
		s.mockGateway.EXPECT().FindActivePromo(gomock.Any(), "SAVE10").
			Return(&promo.Promo{Code: "SAVE10", PromotionCodeID: "promo_1", PercentOff: &pct}, nil)

		var captured commands.CheckoutSessionSpec
		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec commands.CheckoutSessionSpec) (*commands.CheckoutSessionSnapshot, error) {
				captured = spec
				return &commands.CheckoutSessionSnapshot{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
			})

		req := builder.NewCheckoutBuilder().WithPromo("SAVE10").BuildDomain()

		res, err := s.checkout.CreateCheckout(context.Background(), req, "")
		s.Require().NoError(err)

		s.True(res.PromoApplied)
		s.Equal("SAVE10", res.PromoCode)
		s.Equal("promo_1", captured.PromotionCodeID)
		// The charge amount stays undiscounted; the provider applies the code.
		s.Equal(int64(1624), captured.AmountCents)
		s.Equal("SAVE10", captured.Metadata["promo_code"])
		s.Equal("162", captured.Metadata["promo_discount_cents"])
	})

	s.Run("falls back to the request origin when no site URL is set", func() {
		cfg := config.NewTestConfig()
		cfg.Site.URL = ""
		checkout := s.newUseCase(cfg)

		var captured commands.CheckoutSessionSpec
		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec commands.CheckoutSessionSpec) (*commands.CheckoutSessionSnapshot, error) {
				captured = spec
				return &commands.CheckoutSessionSnapshot{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
			})

		req := builder.NewCheckoutBuilder().BuildDomain()

		_, err := checkout.CreateCheckout(context.Background(), req, "https://shop.example.com/")
		s.Require().NoError(err)
		s.Equal("https://shop.example.com/rivals/?success=1&order="+captured.OrderID, captured.SuccessURL)
	})

	s.Run("provider failure surfaces as a provider error", func() {
		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("stripe down"))

		req := builder.NewCheckoutBuilder().BuildDomain()

		_, err := s.checkout.CreateCheckout(context.Background(), req, "")
		s.ErrorIs(err, errs.ErrProvider)
	})

	s.Run("validation failures never reach the provider", func() {
		req := builder.NewCheckoutBuilder().BuildDomain()
		req.Package = "rivals:Bronze 3->Celestial 1"

		_, err := s.checkout.CreateCheckout(context.Background(), req, "")
		s.ErrorIs(err, errs.ErrInvalidPackage)
	})

	s.Run("missing customer fields are rejected before pricing", func() {
		req := builder.NewCheckoutBuilder().BuildDomain()
		req.Discord = ""

		_, err := s.checkout.CreateCheckout(context.Background(), req, "")
		s.ErrorIs(err, errs.ErrMissingRequiredField)
	})
}

func (s *CheckoutUseCaseTestSuite) TestIdempotencyKeyForOrder() {
	a := commands.IdempotencyKeyForOrder("TD-1")
	b := commands.IdempotencyKeyForOrder("TD-1")
	c := commands.IdempotencyKeyForOrder("TD-2")

	s.Equal(a, b)
	s.NotEqual(a, c)
	s.Len(a, 64)
}
