package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"realstate/internal/auth"
	"realstate/internal/middleware"
	"realstate/internal/models"
	"realstate/internal/repository"
)

// countingStore wraps a Store and counts lookups, so tests can assert that
// rejected requests never reach the repository.
type countingStore struct {
	repository.Store
	findOnes int
}

func (s *countingStore) FindOne(ctx context.Context, collection string, filter repository.Filter, out any) error {
	s.findOnes++
	return s.Store.FindOne(ctx, collection, filter, out)
}

func guardedRouter(tokens *auth.TokenService, store repository.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", middleware.RequireAuth(tokens), middleware.RequireAdmin(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMissingCredentialIsRejectedBeforeStore(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	store := &countingStore{Store: repository.NewMemory()}
	r := guardedRouter(tokens, store)

	for _, header := range []string{"", "Basic abc", "Bearer"} {
		req := httptest.NewRequest("GET", "/guarded", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: want 401, got %d", header, w.Code)
		}
	}
	if store.findOnes != 0 {
		t.Fatalf("repository reached %d times on rejected requests", store.findOnes)
	}
}

func TestInvalidTokenIsRejected(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	store := &countingStore{Store: repository.NewMemory()}
	r := guardedRouter(tokens, store)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
	if store.findOnes != 0 {
		t.Fatal("repository reached with invalid token")
	}
}

func TestNonAdminIsForbidden(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	mem := repository.NewMemory()
	if _, err := mem.Insert(context.Background(), repository.Users, models.User{Email: "u@x.com"}); err != nil {
		t.Fatal(err)
	}
	r := guardedRouter(tokens, mem)

	token, err := tokens.Issue("u@x.com")
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", w.Code)
	}
}

func TestAdminPasses(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	mem := repository.NewMemory()
	if _, err := mem.Insert(context.Background(), repository.Users, models.User{Email: "boss@x.com", Role: "admin"}); err != nil {
		t.Fatal(err)
	}
	r := guardedRouter(tokens, mem)

	token, err := tokens.Issue("boss@x.com")
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}
