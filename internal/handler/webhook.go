package handler

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/handler/dto"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

type PaymentCallbackSvc interface {
	OnPaymentCaptured(ctx context.Context, paymentIntentID string) error
	OnPaymentFailed(ctx context.Context, paymentIntentID, reason string) error
}

type EventVerifier interface {
	VerifyEvent(ctx context.Context, eventID string) (*ports.CapturedCharge, error)
}

// WebhookHandler receives the provider's capture callbacks. The incoming body
// is only a hint: the event is re-fetched from the provider before anything
// moves, so the endpoint cannot be used to forge a capture.
type WebhookHandler struct {
	verifier EventVerifier
	payments PaymentCallbackSvc
}

func NewWebhookHandler(verifier EventVerifier, payments PaymentCallbackSvc) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, payments: payments}
}

func (h *WebhookHandler) HandlePaymentEvent(c *ginext.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	captured, err := h.verifier.VerifyEvent(c.Request.Context(), req.ID)
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "event verification failed"})
		return
	}
	if captured == nil {
		// Event kind the core does not consume; ack so the provider stops retrying.
		c.Status(http.StatusOK)
		return
	}

	if captured.Succeeded {
		err = h.payments.OnPaymentCaptured(c.Request.Context(), captured.PaymentIntentID)
	} else {
		err = h.payments.OnPaymentFailed(c.Request.Context(), captured.PaymentIntentID, captured.FailureReason)
	}
	if err != nil {
		c.Set("error", err.Error())
		// Non-2xx makes the provider redeliver later.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "event processing failed"})
		return
	}

	c.Status(http.StatusOK)
}
