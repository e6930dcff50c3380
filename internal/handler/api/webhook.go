package api

import (
	"net/http"

	"topdog-boost/internal/handler/httperr"
	"topdog-boost/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// The only Stripe event this service acts on.
const eventCheckoutCompleted = "checkout.session.completed"

type StripeWebhookHandler struct {
	verifier commands.WebhookVerifier
	events   commands.PaymentEventCommands
}

func NewStripeWebhookHandler(verifier commands.WebhookVerifier, events commands.PaymentEventCommands) *StripeWebhookHandler {
	return &StripeWebhookHandler{verifier: verifier, events: events}
}

// Handle verifies and processes one webhook delivery. Duplicates answer 200
// like first deliveries — a non-2xx here would only provoke provider
// redelivery of an event we have already handled.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "unreadable payload")
		return
	}

	event, err := h.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "webhook signature verification failed")
		return
	}

	if event.Type == eventCheckoutCompleted {
		if err := h.events.HandleCompletedSession(c.Request.Context(), event.SessionID); err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
			return
		}
	}

	c.String(http.StatusOK, "ok")
}
