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

// updateProfileInput defines the fields a client can change on a profile.
// Only the fields actually sent are written.
type updateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// UserController serves account and role endpoints.
type UserController struct {
	Store repository.Store
}

func NewUserController(store repository.Store) *UserController {
	return &UserController{Store: store}
}

// CreateUser stores a first-time account. Repeat sign-ins for a known email
// are reported, not duplicated.
func (uc *UserController) CreateUser(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user input: " + err.Error()})
		return
	}
	email, _ := doc["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	delete(doc, "_id")

	var existing models.User
	err := uc.Store.FindOne(c.Request.Context(), repository.Users, repository.Filter{"email": email}, &existing)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists!"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).Error("user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create user"})
		return
	}

	id, err := uc.Store.Insert(c.Request.Context(), repository.Users, doc)
	if err != nil {
		logrus.WithError(err).Error("creating user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// ListUsers returns every account. Admin only.
func (uc *UserController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := uc.Store.Find(c.Request.Context(), repository.Users, repository.Filter{}, &users); err != nil {
		logrus.WithError(err).Error("listing users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// DeleteUser removes an account by id. Admin only.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	res, err := uc.Store.Delete(c.Request.Context(), repository.Users, repository.Filter{"_id": id})
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id format"})
	case err != nil:
		logrus.WithError(err).Error("deleting user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete user"})
	default:
		c.JSON(http.StatusOK, res)
	}
}

// Profile returns the authenticated user's own record.
func (uc *UserController) Profile(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	var user models.User
	err := uc.Store.FindOne(c.Request.Context(), repository.Users, repository.Filter{"email": principal.Email}, &user)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusOK, nil)
	case err != nil:
		logrus.WithError(err).Error("fetching profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch profile"})
	default:
		c.JSON(http.StatusOK, user)
	}
}

// ProfileByID loads a single account by id, e.g. to prefill an edit form.
func (uc *UserController) ProfileByID(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	err := uc.Store.FindOne(c.Request.Context(), repository.Users, repository.Filter{"_id": id}, &user)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id format"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusOK, nil)
	case err != nil:
		logrus.WithError(err).Error("fetching profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch profile"})
	default:
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile upserts the profile fields for the given id. Fields absent
// from the request stay untouched.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	id := c.Param("id")

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile input: " + err.Error()})
		return
	}

	set := map[string]any{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	res, err := uc.Store.Update(c.Request.Context(), repository.Users, repository.Filter{"_id": id}, set, true)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id format"})
	case err != nil:
		logrus.WithError(err).Error("updating profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile"})
	default:
		c.JSON(http.StatusOK, res)
	}
}

// AdminStatus reports whether the given email holds the admin role. The
// requested email must be the authenticated principal's own.
func (uc *UserController) AdminStatus(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	email := c.Param("email")
	if email != principal.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var user models.User
	err := uc.Store.FindOne(c.Request.Context(), repository.Users, repository.Filter{"email": email}, &user)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).Error("admin status lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check admin status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// MakeAdmin elevates a user to the admin role. Admin only.
func (uc *UserController) MakeAdmin(c *gin.Context) {
	id := c.Param("id")

	set := map[string]any{"role": "admin", "type": "admin"}
	res, err := uc.Store.Update(c.Request.Context(), repository.Users, repository.Filter{"_id": id}, set, false)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id format"})
	case err != nil:
		logrus.WithError(err).Error("role elevation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not elevate user"})
	default:
		c.JSON(http.StatusOK, res)
	}
}
