package handlers

import (
	request "erdbeergourmet/internal/adapter/http/dto/request"
	response "erdbeergourmet/internal/adapter/http/dto/response"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase"
	"erdbeergourmet/pkg"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEbookPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// EbookHandler serves the e-book checkout and access endpoints.

type EbookHandler struct {
	usecase usecase.IEbookUseCase
}

func NewEbookHandler(uc usecase.IEbookUseCase) *EbookHandler {
	return &EbookHandler{usecase: uc}
}

func (h *EbookHandler) CreateCheckout(c *gin.Context) {
	var payload request.EbookCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEbookPayload.HTTPStatus, errInvalidEbookPayload.ToHTTPError())
		return
	}

	checkout, err := h.usecase.CreateCheckout(c.Request.Context(), payload.CustomerEmail, payload.CustomerName)
	if err != nil {
		writeEbookError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromEbookCheckout(checkout))
}

// VerifyAccess answers 200 for unknown tokens too; hasAccess carries the result.
func (h *EbookHandler) VerifyAccess(c *gin.Context) {
	verification, err := h.usecase.VerifyAccess(c.Request.Context(), c.Query("token"))
	if err != nil {
		writeEbookError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAccessVerification(verification))
}

func (h *EbookHandler) GetAccess(c *gin.Context) {
	grant, err := h.usecase.GetAccessBySession(c.Request.Context(), strings.TrimSpace(c.Query("session_id")))
	if err != nil {
		writeEbookError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAccessGrant(grant))
}

func (h *EbookHandler) GrantManualAccess(c *gin.Context) {
	var payload request.ManualAccessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEbookPayload.HTTPStatus, errInvalidEbookPayload.ToHTTPError())
		return
	}

	grant, err := h.usecase.GrantManualAccess(c.Request.Context(), payload.ResolveSessionID())
	if err != nil {
		writeEbookError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAccessGrant(grant))
}

func writeEbookError(c *gin.Context, err error) {
	appErr := mapEbookError(err)
	var statusErr *usecase.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(appErr.HTTPStatus, appErr.WithStatus(statusErr.Status))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEbookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "A valid customer email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingSessionID):
		return pkg.NewDomainErrorSimple("MISSING_SESSION_ID", "Session ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingAccessToken):
		return pkg.NewDomainErrorSimple("MISSING_TOKEN", "Access token is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Payment not completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccessNotReady):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_COMPLETED", "Purchase not completed yet", http.StatusBadRequest)
	case errors.Is(err, entities.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("PURCHASE_CLOSED", "Purchase can no longer be completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
