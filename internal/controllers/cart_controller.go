package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"realstate/internal/middleware"
	"realstate/internal/models"
	"realstate/internal/repository"
)

// CartController serves the shopping-cart endpoints.
type CartController struct {
	Store repository.Store
}

func NewCartController(store repository.Store) *CartController {
	return &CartController{Store: store}
}

// ListCart returns the authenticated user's cart. A mismatched email query
// is forbidden, not ignored.
func (cc *CartController) ListCart(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	email := c.Query("email")
	if email == "" {
		email = principal.Email
	}
	if email != principal.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var items []models.CartItem
	if err := cc.Store.Find(c.Request.Context(), repository.Carts, repository.Filter{"email": email}, &items); err != nil {
		logrus.WithError(err).Error("listing cart failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cart"})
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddCartItem inserts the posted cart document verbatim.
func (cc *CartController) AddCartItem(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart input: " + err.Error()})
		return
	}
	delete(doc, "_id")

	id, err := cc.Store.Insert(c.Request.Context(), repository.Carts, doc)
	if err != nil {
		logrus.WithError(err).Error("adding cart item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add cart item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// DeleteCartItem removes a single cart entry by id.
func (cc *CartController) DeleteCartItem(c *gin.Context) {
	id := c.Param("id")

	res, err := cc.Store.Delete(c.Request.Context(), repository.Carts, repository.Filter{"_id": id})
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id format"})
	case err != nil:
		logrus.WithError(err).Error("deleting cart item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete cart item"})
	default:
		c.JSON(http.StatusOK, res)
	}
}
