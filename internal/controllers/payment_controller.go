package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"realstate/internal/middleware"
	"realstate/internal/models"
	"realstate/internal/payments"
	"realstate/internal/repository"
)

// intentInput is the payment-intent request body.
type intentInput struct {
	Price    float64 `json:"price" binding:"required"`
	Currency string  `json:"currency"`
}

// PaymentController serves payment-intent creation, finalize and history.
type PaymentController struct {
	Store     repository.Store
	Intents   payments.IntentCreator
	Finalizer *payments.Finalizer
}

func NewPaymentController(store repository.Store, intents payments.IntentCreator, finalizer *payments.Finalizer) *PaymentController {
	return &PaymentController{Store: store, Intents: intents, Finalizer: finalizer}
}

// CreateIntent asks the payment provider for an intent and returns the
// client-side completion secret.
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	var input intentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment input: " + err.Error()})
		return
	}

	secret, err := pc.Intents.Create(c.Request.Context(), input.Price, input.Currency)
	switch {
	case errors.Is(err, payments.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not available"})
	case err != nil:
		// Provider detail is logged, never sent to the client.
		logrus.WithError(err).Error("creating payment intent failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create payment intent"})
	default:
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// CreatePayment runs the finalize workflow: persist the payment record and
// clear the settled cart entries. The payer must be the authenticated
// principal.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment input: " + err.Error()})
		return
	}
	if payment.Email != principal.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	result, err := pc.Finalizer.Finalize(c.Request.Context(), payment)
	switch {
	case errors.Is(err, payments.ErrNoCartItems), errors.Is(err, payments.ErrBadCartItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		logrus.WithError(err).Error("finalizing payment failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record payment"})
	default:
		c.JSON(http.StatusCreated, result)
	}
}

// ListPayments returns payments for the email query parameter. No email
// means an empty list.
func (pc *PaymentController) ListPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.Payment{})
		return
	}

	var history []models.Payment
	if err := pc.Store.Find(c.Request.Context(), repository.Payments, repository.Filter{"email": email}, &history); err != nil {
		logrus.WithError(err).Error("listing payments failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payments"})
		return
	}
	if history == nil {
		history = []models.Payment{}
	}
	c.JSON(http.StatusOK, history)
}
