package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"realstate/internal/auth"
	"realstate/internal/models"
	"realstate/internal/repository"
)

const principalKey = "principal"

// RequireAuth ensures a valid bearer token is present and attaches the
// verified principal to the request context. No repository call happens
// before the credential checks out.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		principal, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			// Provider detail stays in the log, never in the response.
			logrus.WithError(err).Debug("token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal RequireAuth stored on the context.
func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// RequireAdmin ensures the principal's persisted user record carries the
// admin role. It depends on RequireAuth having run first.
func RequireAdmin(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		var user models.User
		err := store.FindOne(c.Request.Context(), repository.Users, repository.Filter{"email": principal.Email}, &user)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).Error("role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not verify role"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}
