package handlers

import (
	request "erdbeergourmet/internal/adapter/http/dto/request"
	response "erdbeergourmet/internal/adapter/http/dto/response"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase"
	"erdbeergourmet/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves the storefront cart checkout.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var payload request.CartCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CART", "Items are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateCartSession(c.Request.Context(), payload.ToCartItems(), payload.CustomerEmail, payload.Metadata)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCartSession(session))
}

func (h *CheckoutHandler) VerifySession(c *gin.Context) {
	session, err := h.usecase.VerifySession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart), errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_CART", "Invalid cart", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCheckoutSession):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Valid session ID is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
