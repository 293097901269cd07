package routes

import (
	"erdbeergourmet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks = "/webhooks"
	PathEbook    = "/ebook"
	PathCheckout = "/checkout"
)

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", webhookHandler.HandleStripe)
	}
}

func addEbookRoutes(rg *gin.RouterGroup, ebookHandler *handlers.EbookHandler) {
	ebook := rg.Group(PathEbook)
	{
		ebook.POST("/checkout", ebookHandler.CreateCheckout)
		ebook.GET("/access", ebookHandler.GetAccess)
		ebook.GET("/access/verify", ebookHandler.VerifyAccess)
		ebook.POST("/access/manual", ebookHandler.GrantManualAccess)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/sessions", checkoutHandler.CreateSession)
		checkout.GET("/sessions/:session_id", checkoutHandler.VerifySession)
	}
}
