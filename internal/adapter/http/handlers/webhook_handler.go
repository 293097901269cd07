package handlers

import (
	response "erdbeergourmet/internal/adapter/http/dto/response"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase"
	"erdbeergourmet/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const HeaderStripeSignature = "Stripe-Signature"

// WebhookHandler receives provider event deliveries.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	logger  *zap.Logger
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{usecase: uc, logger: logger.Named("webhook_handler")}
}

// HandleStripe acknowledges every delivery that was verified, including
// duplicates and ignored events. The raw body is passed through untouched
// since the signature covers the exact bytes.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.HandleDelivery(c.Request.Context(), payload, c.GetHeader(HeaderStripeSignature))
	if err != nil {
		appErr := mapWebhookError(err)
		h.logger.Warn("webhook rejected", zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Debug("webhook acknowledged",
		zap.String("event_id", result.EventID),
		zap.String("event_type", result.EventType),
		zap.String("outcome", string(result.Outcome)),
	)

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Webhook signature verification failed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookPersistence):
		return pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Webhook processing failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
