package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateTicketType(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	GetOrder(c *ginext.Context)
	CancelOrder(c *ginext.Context)
	RefundOrder(c *ginext.Context)
	GetCustomerOrders(c *ginext.Context)
	PaymentCallback(c *ginext.Context)
	CheckinTicket(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events / catalog
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/ticket-types", h.CreateTicketType)

		// Orders
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/cancel", h.CancelOrder)
		api.POST("/orders/:id/refund", h.RefundOrder)
		api.GET("/customers/:id/orders", h.GetCustomerOrders)

		// Payments
		api.POST("/payments/callback", h.PaymentCallback)

		// Check-in
		api.POST("/tickets/checkin", h.CheckinTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
