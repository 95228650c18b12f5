package api

import (
	// Go Internal Packages
	"net/http"

	// External Packages
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the gateway's HTTP surface. Everything under /v1
// requires a bearer token, which is passed through to the upstream.
func NewRouter(logger *zap.Logger, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.Use(RequireBearer())
	{
		v1.GET("/transactions", h.ListTransactions)
		v1.GET("/transactions/:id", h.GetTransaction)
		v1.GET("/balance", h.GetBalance)
		v1.GET("/products", h.ListProducts)
		v1.GET("/staff", h.ListStaff)
		v1.POST("/staff/invites", h.InviteStaff)

		insights := v1.Group("/insights")
		{
			insights.GET("/sales", h.Sales)
			insights.GET("/top-products", h.TopProducts)
			insights.GET("/low-stock", h.LowStock)
		}
	}
	return r
}
