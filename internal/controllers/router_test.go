package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"realstate/internal/auth"
	"realstate/internal/controllers"
	"realstate/internal/models"
	"realstate/internal/payments"
	"realstate/internal/repository"
	"realstate/internal/routes"
)

// newTestEnv builds the full router on the in-memory store, with the
// payment provider disabled unless a test swaps its own IntentCreator in.
func newTestEnv(t *testing.T) (*gin.Engine, *repository.Memory, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemory()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	intents := payments.NewStripeIntents("")
	finalizer := payments.NewFinalizer(store)

	r := routes.SetupRouter(routes.Deps{
		Store:    store,
		Verifier: tokens,
		Auth:     controllers.NewAuthController(tokens),
		Users:    controllers.NewUserController(store),
		Listings: controllers.NewListingController(store),
		Carts:    controllers.NewCartController(store),
		Bookings: controllers.NewBookingController(store),
		Reviews:  controllers.NewReviewController(store),
		Payments: controllers.NewPaymentController(store, intents, finalizer),
	})
	return r, store, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

func seedAdmin(t *testing.T, store *repository.Memory, tokens *auth.TokenService, email string) string {
	t.Helper()
	if _, err := store.Insert(context.Background(), repository.Users, models.User{Email: email, Role: "admin"}); err != nil {
		t.Fatal(err)
	}
	token, err := tokens.Issue(email)
	if err != nil {
		t.Fatal(err)
	}
	return token
}
