package routes

import (
	"github.com/gin-gonic/gin"
)

func ReviewRoutes(r *gin.Engine, d Deps) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", d.Reviews.ListReviews)
		reviews.POST("", d.Reviews.CreateReview)
		reviews.DELETE("/:id", d.Reviews.DeleteReview)
	}
}
