package routes

import (
	"realstate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine, d Deps) {
	r.POST("/payment-intent", d.Payments.CreateIntent)

	payments := r.Group("/payments")
	{
		payments.POST("", middleware.RequireAuth(d.Verifier), d.Payments.CreatePayment)
		payments.GET("", d.Payments.ListPayments)
	}
}
