package routes

import (
	"realstate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.Engine, d Deps) {
	requireAuth := middleware.RequireAuth(d.Verifier)
	requireAdmin := middleware.RequireAdmin(d.Store)

	users := r.Group("/users")
	{
		users.POST("", d.Users.CreateUser)
		users.GET("", requireAuth, requireAdmin, d.Users.ListUsers)
		users.DELETE("/:id", requireAuth, requireAdmin, d.Users.DeleteUser)

		users.GET("/profile", requireAuth, d.Users.Profile)
		users.GET("/profile/:id", d.Users.ProfileByID)
		users.PUT("/profile/:id", d.Users.UpdateProfile)

		users.GET("/admin/:email", requireAuth, d.Users.AdminStatus)
		users.PATCH("/admin/:id", requireAuth, requireAdmin, d.Users.MakeAdmin)
	}
}
