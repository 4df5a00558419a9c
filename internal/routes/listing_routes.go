package routes

import (
	"realstate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ListingRoutes(r *gin.Engine, d Deps) {
	listings := r.Group("/listings")
	{
		listings.GET("", d.Listings.ListListings)
		listings.GET("/:id", d.Listings.GetListing)
	}

	admin := listings.Group("")
	admin.Use(middleware.RequireAuth(d.Verifier), middleware.RequireAdmin(d.Store))
	{
		admin.POST("", d.Listings.CreateListing)
		admin.DELETE("/:id", d.Listings.DeleteListing)
	}

	r.GET("/recent", d.Listings.RecentListings)
}
