package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"realstate/internal/models"
	"realstate/internal/repository"
)

func TestGetListingInvalidID(t *testing.T) {
	r, _, _ := newTestEnv(t)

	w := doJSON(t, r, "GET", "/listings/not-an-id", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateListingIsAdminOnly(t *testing.T) {
	r, store, tokens := newTestEnv(t)

	listing := map[string]any{"title": "Lakeview flat", "price": 1200}

	w := doJSON(t, r, "POST", "/listings", "", listing)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: want 401, got %d", w.Code)
	}

	// A plain signed-in user is still forbidden.
	w = doJSON(t, r, "POST", "/users", "", map[string]any{"email": "u@x.com"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create user: got %d", w.Code)
	}
	userToken, err := tokens.Issue("u@x.com")
	if err != nil {
		t.Fatal(err)
	}
	w = doJSON(t, r, "POST", "/listings", userToken, listing)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: want 403, got %d", w.Code)
	}

	adminToken := seedAdmin(t, store, tokens, "boss@x.com")
	w = doJSON(t, r, "POST", "/listings", adminToken, listing)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin: want 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestListingRoundtrip(t *testing.T) {
	r, store, tokens := newTestEnv(t)
	adminToken := seedAdmin(t, store, tokens, "boss@x.com")

	w := doJSON(t, r, "POST", "/listings", adminToken, map[string]any{
		"title":    "Garden cottage",
		"location": "Sylhet",
		"price":    900,
		"extras":   []string{"parking"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d", w.Code)
	}
	var created map[string]string
	decodeBody(t, w, &created)
	id := created["insertedId"]

	w = doJSON(t, r, "GET", "/listings/"+id, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: got %d", w.Code)
	}
	var got map[string]any
	decodeBody(t, w, &got)
	if got["title"] != "Garden cottage" {
		t.Fatalf("wrong listing: %v", got)
	}
	// Verbatim storage keeps fields the model does not name.
	if _, ok := got["extras"]; !ok {
		t.Fatalf("extra field dropped: %v", got)
	}

	w = doJSON(t, r, "GET", "/listings", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}
	var all []map[string]any
	decodeBody(t, w, &all)
	if len(all) != 1 {
		t.Fatalf("want 1 listing, got %d", len(all))
	}

	w = doJSON(t, r, "DELETE", "/listings/"+id, adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d", w.Code)
	}

	// Absent records read back as an empty success.
	w = doJSON(t, r, "GET", "/listings/"+id, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get after delete: got %d", w.Code)
	}
	if body := w.Body.String(); body != "null" {
		t.Fatalf("want null body, got %q", body)
	}
}

func TestRecentListingsShowcase(t *testing.T) {
	r, store, _ := newTestEnv(t)

	for _, l := range []models.Listing{
		{Title: "Hilltop studio", Location: "Dhaka", Bedrooms: 1, Price: 450},
		{Title: "Riverside duplex", Location: "Khulna", Bedrooms: 3, Price: 1600},
	} {
		if _, err := store.Insert(context.Background(), repository.Recent, l); err != nil {
			t.Fatal(err)
		}
	}

	w := doJSON(t, r, "GET", "/recent", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("recent: got %d", w.Code)
	}
	var recent []models.Listing
	decodeBody(t, w, &recent)
	if len(recent) != 2 {
		t.Fatalf("want 2 recent listings, got %d", len(recent))
	}
	if recent[0].ID.IsZero() {
		t.Fatal("recent listing came back without an id")
	}
}

func TestCartOwnershipGuard(t *testing.T) {
	r, _, tokens := newTestEnv(t)

	token, err := tokens.Issue("a@x.com")
	if err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, "GET", "/cart?email=b@y.com", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/cart", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}
