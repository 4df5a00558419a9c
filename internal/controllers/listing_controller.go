package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"realstate/internal/repository"
)

// ListingController serves the rentable-property endpoints. Listing
// documents are stored verbatim, so reads and writes go through plain maps
// rather than a fixed struct.
type ListingController struct {
	Store repository.Store
}

func NewListingController(store repository.Store) *ListingController {
	return &ListingController{Store: store}
}

// ListListings returns every listing.
func (lc *ListingController) ListListings(c *gin.Context) {
	var listings []map[string]any
	if err := lc.Store.Find(c.Request.Context(), repository.Listings, repository.Filter{}, &listings); err != nil {
		logrus.WithError(err).Error("listing properties failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch listings"})
		return
	}
	if listings == nil {
		listings = []map[string]any{}
	}
	c.JSON(http.StatusOK, listings)
}

// GetListing returns a single listing by id.
func (lc *ListingController) GetListing(c *gin.Context) {
	id := c.Param("id")

	var listing map[string]any
	err := lc.Store.FindOne(c.Request.Context(), repository.Listings, repository.Filter{"_id": id}, &listing)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id format"})
	case errors.Is(err, repository.ErrNotFound):
		// Absent records are an empty success, not an error.
		c.JSON(http.StatusOK, nil)
	case err != nil:
		logrus.WithError(err).Error("fetching listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch listing"})
	default:
		c.JSON(http.StatusOK, listing)
	}
}

// CreateListing inserts the posted document verbatim. Admin only.
func (lc *ListingController) CreateListing(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing input: " + err.Error()})
		return
	}
	delete(doc, "_id") // ids are always store-assigned

	id, err := lc.Store.Insert(c.Request.Context(), repository.Listings, doc)
	if err != nil {
		logrus.WithError(err).Error("creating listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create listing"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// DeleteListing removes a listing by id. Admin only.
func (lc *ListingController) DeleteListing(c *gin.Context) {
	id := c.Param("id")

	res, err := lc.Store.Delete(c.Request.Context(), repository.Listings, repository.Filter{"_id": id})
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id format"})
	case err != nil:
		logrus.WithError(err).Error("deleting listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete listing"})
	default:
		c.JSON(http.StatusOK, res)
	}
}

// RecentListings returns the recently-added showcase collection.
func (lc *ListingController) RecentListings(c *gin.Context) {
	var recent []map[string]any
	if err := lc.Store.Find(c.Request.Context(), repository.Recent, repository.Filter{}, &recent); err != nil {
		logrus.WithError(err).Error("listing recent properties failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch recent listings"})
		return
	}
	if recent == nil {
		recent = []map[string]any{}
	}
	c.JSON(http.StatusOK, recent)
}
