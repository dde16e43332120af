package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ums-payment-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.TransactionHandler) {
	a.Router.GET("/health", h.HealthCheck)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	transactions := a.Router.Group("/transactions")
	transactions.GET("", h.ListTransactions)
	transactions.POST("", h.CreateTransaction)
	transactions.GET("/pending", h.ListPending)
	transactions.GET("/:id", h.GetTransaction)
	transactions.POST("/:id/approve", h.Approve)
	transactions.POST("/:id/reject", h.Reject)
	transactions.POST("/:id/settle", h.Settle)

	admin := a.Router.Group("/admin")
	admin.POST("/reconcile", h.Reconcile)
}
