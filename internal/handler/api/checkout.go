package api

import (
	"errors"
	"net/http"

	reqdto "topdog-boost/internal/handler/dto/request"
	resdto "topdog-boost/internal/handler/dto/response"
	"topdog-boost/internal/handler/httperr"
	"topdog-boost/internal/pkg/errs"
	"topdog-boost/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Create serves both price quotes and real checkout-session creation; the
// request's quote flag picks the path. Validation failures come back as 400
// with the literal message the storefront shows.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format.")
		return
	}

	orderReq := req.ToDomain()

	if orderReq.Quote {
		quote, err := h.checkout.Quote(c.Request.Context(), orderReq)
		if err != nil {
			h.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromQuoteResult(quote))
		return
	}

	result, err := h.checkout.CreateCheckout(c.Request.Context(), orderReq, h.requestOrigin(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// requestOrigin is only a fallback; a configured site URL always wins
// inside the usecase (forged Host headers must not steer redirects).
func (h *CheckoutHandler) requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return "https://" + c.Request.Host
}

func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidGame):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid game.")
	case errors.Is(err, errs.ErrInvalidPackage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package.")
	case errors.Is(err, errs.ErrInvalidRankSelection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rank selection.")
	case errors.Is(err, errs.ErrMissingRequiredField):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields.")
	case errors.Is(err, errs.ErrHeroNameRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Hero name required.")
	case errors.Is(err, errs.ErrInvalidPrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price.")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
	}
}
