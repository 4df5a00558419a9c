package routes

import (
	"realstate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CartRoutes(r *gin.Engine, d Deps) {
	cart := r.Group("/cart")
	{
		cart.GET("", middleware.RequireAuth(d.Verifier), d.Carts.ListCart)
		cart.POST("", d.Carts.AddCartItem)
		cart.DELETE("/:id", d.Carts.DeleteCartItem)
	}
}
