package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"realstate/internal/auth"
	"realstate/internal/controllers"
	"realstate/internal/repository"
)

// Deps carries the wired components the route groups need. Everything is
// constructed once in main and passed down; nothing reaches for globals.
type Deps struct {
	Store    repository.Store
	Verifier auth.Verifier

	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Listings *controllers.ListingController
	Carts    *controllers.CartController
	Bookings *controllers.BookingController
	Reviews  *controllers.ReviewController
	Payments *controllers.PaymentController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Real State running")
	})

	AuthRoutes(r, d)
	ListingRoutes(r, d)
	UserRoutes(r, d)
	CartRoutes(r, d)
	BookingRoutes(r, d)
	ReviewRoutes(r, d)
	PaymentRoutes(r, d)

	return r
}
