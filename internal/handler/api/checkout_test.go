//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/handler/api"
	resdto "topdog-boost/internal/handler/dto/response"
	"topdog-boost/internal/pkg/errs"
	"topdog-boost/internal/usecase/commands"
	"topdog-boost/tests/common/builder"
	"topdog-boost/tests/common/httptest"
	"topdog-boost/tests/common/testutil"
	commandsmock "topdog-boost/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/api/checkout", s.handler.Create)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCreate() {
	url := "/api/checkout"

	s.Run("success: quote flag routes to the quote path", func() {
		reqBody := builder.NewCheckoutBuilder().WithQuote().BuildDTO()

		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&commands.QuoteResult{
				AmountCents:     1624,
				BaseAmountCents: 1624,
				ProductName:     "TopDog Rivals Boost",
				ProductDesc:     "Bronze 3 → Bronze 2",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1624), response.AmountCents)
		s.Equal("16.24", response.Amount)
		s.False(response.PromoApplied)
	})

	s.Run("success: checkout returns the session URL under both keys", func() {
		reqBody := builder.NewCheckoutBuilder().BuildDTO()

		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{
				CheckoutURL: "https://pay.example.com/cs_1",
				OrderID:     "TD-1",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://pay.example.com/cs_1", response.CheckoutURL)
		s.Equal("https://pay.example.com/cs_1", response.URL)
		s.Equal("TD-1", response.OrderID)
	})

	s.Run("forwards the Origin header as the request origin", func() {
		reqBody := builder.NewCheckoutBuilder().BuildDTO()

		var gotOrigin string
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *order.Request, origin string) (*commands.CheckoutResult, error) {
				gotOrigin = origin
				return &commands.CheckoutResult{CheckoutURL: "https://pay.example.com/cs_1", OrderID: "TD-1"}, nil
			})

		headers := map[string]string{"Origin": "https://topdog.example.com"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("https://topdog.example.com", gotOrigin)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		reqBody := builder.NewCheckoutBuilder().BuildDTO()
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("game", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format.")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectedCode  int
			expectedMsg   string
		}{
			{"invalid game", errs.ErrInvalidGame, http.StatusBadRequest, "Invalid game."},
			{"invalid package", errs.ErrInvalidPackage, http.StatusBadRequest, "Invalid package."},
			{"invalid rank selection", errs.ErrInvalidRankSelection, http.StatusBadRequest, "Invalid rank selection."},
			{"missing required fields", errs.ErrMissingRequiredField, http.StatusBadRequest, "Missing required fields."},
			{"hero name required", errs.ErrHeroNameRequired, http.StatusBadRequest, "Hero name required."},
			{"invalid price", errs.ErrInvalidPrice, http.StatusBadRequest, "Invalid price."},
			{"provider failure", errs.Mark(errs.New("stripe down"), errs.ErrProvider), http.StatusInternalServerError, ""},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				reqBody := builder.NewCheckoutBuilder().BuildDTO()
				s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedCode, tc.expectedMsg)
			})
		}
	})
}
