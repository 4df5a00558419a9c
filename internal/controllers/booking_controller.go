package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"realstate/internal/models"
	"realstate/internal/repository"
)

// BookingController serves booking CRUD. Bookings are created and deleted
// independently of the payment flow.
type BookingController struct {
	Store repository.Store
}

func NewBookingController(store repository.Store) *BookingController {
	return &BookingController{Store: store}
}

// CreateBooking inserts the posted booking verbatim.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking input: " + err.Error()})
		return
	}
	delete(doc, "_id")

	id, err := bc.Store.Insert(c.Request.Context(), repository.Bookings, doc)
	if err != nil {
		logrus.WithError(err).Error("creating booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create booking"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// ListBookings returns bookings for the email query parameter. No email
// means an empty list, not an error.
func (bc *BookingController) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.Booking{})
		return
	}

	var bookings []models.Booking
	if err := bc.Store.Find(c.Request.Context(), repository.Bookings, repository.Filter{"email": email}, &bookings); err != nil {
		logrus.WithError(err).Error("listing bookings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes a booking by id.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	res, err := bc.Store.Delete(c.Request.Context(), repository.Bookings, repository.Filter{"_id": id})
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id format"})
	case err != nil:
		logrus.WithError(err).Error("deleting booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete booking"})
	default:
		c.JSON(http.StatusOK, res)
	}
}
