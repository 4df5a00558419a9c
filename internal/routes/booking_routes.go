package routes

import (
	"github.com/gin-gonic/gin"
)

func BookingRoutes(r *gin.Engine, d Deps) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", d.Bookings.CreateBooking)
		bookings.GET("", d.Bookings.ListBookings)
		bookings.DELETE("/:id", d.Bookings.DeleteBooking)
	}
}
