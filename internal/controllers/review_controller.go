package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"realstate/internal/models"
	"realstate/internal/repository"
)

// ReviewController serves review CRUD.
type ReviewController struct {
	Store repository.Store
}

func NewReviewController(store repository.Store) *ReviewController {
	return &ReviewController{Store: store}
}

// ListReviews returns every review.
func (rc *ReviewController) ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rc.Store.Find(c.Request.Context(), repository.Reviews, repository.Filter{}, &reviews); err != nil {
		logrus.WithError(err).Error("listing reviews failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview inserts the posted review verbatim.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review input: " + err.Error()})
		return
	}
	delete(doc, "_id")

	id, err := rc.Store.Insert(c.Request.Context(), repository.Reviews, doc)
	if err != nil {
		logrus.WithError(err).Error("creating review failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// DeleteReview removes a review by id.
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	res, err := rc.Store.Delete(c.Request.Context(), repository.Reviews, repository.Filter{"_id": id})
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id format"})
	case err != nil:
		logrus.WithError(err).Error("deleting review failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete review"})
	default:
		c.JSON(http.StatusOK, res)
	}
}
