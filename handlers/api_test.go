package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AfanKulaglic/saraya-menu-api/config"
	"github.com/AfanKulaglic/saraya-menu-api/routes"

	"github.com/gin-gonic/gin"
)

// setupAPI builds a router against a fresh in-memory database
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("DB_PATH", ":memory:")
	gin.SetMode(gin.TestMode)
	config.Init()
	config.InitDB()
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func registerUser(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Test " + role,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", role, w.Code, w.Body.String())
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("register returned no token")
	}
	return token
}

func TestOwnerVenueLifecycleFlow(t *testing.T) {
	r := setupAPI(t)
	owner := registerUser(t, r, "owner@saraya.ba", "owner")

	// No venue yet
	w, _ := doJSON(t, r, http.MethodGet, "/api/venue/", owner, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before creation, got %d", w.Code)
	}

	// Create the venue, seeded for its type
	w, resp := doJSON(t, r, http.MethodPost, "/api/venue/", owner, map[string]any{
		"name":       "Saraya Grill",
		"venue_type": "restaurant",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create venue: status %d, body %s", w.Code, w.Body.String())
	}
	venue := resp["venue"].(map[string]any)
	venueID := int(venue["id"].(float64))
	if venue["status"] != "DRAFT" {
		t.Fatalf("new venue status = %v, want DRAFT", venue["status"])
	}

	// Storefront is hidden while in draft
	w, _ = doJSON(t, r, http.MethodGet, jsonPath("/api/venues/%d/menu", venueID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("draft venue publicly visible: %d", w.Code)
	}

	// Catalog: category, product, required variation with options
	w, _ = doJSON(t, r, http.MethodPost, "/api/venue/categories", owner, map[string]any{
		"id": "grill", "label": "From the Grill", "label_bs": "Sa roštilja", "icon": "🔥",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add category: %d %s", w.Code, w.Body.String())
	}

	w, resp = doJSON(t, r, http.MethodPost, "/api/venue/products", owner, map[string]any{
		"name": "Ćevapi", "name_bs": "Ćevapi", "price": 8.0, "category_id": "grill", "popular": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add product: %d %s", w.Code, w.Body.String())
	}
	productID := resp["product"].(map[string]any)["id"].(string)

	w, resp = doJSON(t, r, http.MethodPut, "/api/venue/products/"+productID+"/variations", owner, map[string]any{
		"name": "Portion", "name_bs": "Porcija", "required": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add variation: %d %s", w.Code, w.Body.String())
	}
	variations := resp["product"].(map[string]any)["variations"].([]any)
	variationID := variations[0].(map[string]any)["id"].(string)

	w, _ = doJSON(t, r, http.MethodPut, "/api/venue/products/"+productID+"/variations/"+variationID+"/options", owner, map[string]any{
		"label": "Ten pieces", "label_bs": "Deset komada", "price_adjustment": 2.0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add option: %d %s", w.Code, w.Body.String())
	}

	// System categories cannot be deleted
	w, _ = doJSON(t, r, http.MethodDelete, "/api/venue/categories/popular", owner, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("deleting system category: got %d, want 400", w.Code)
	}

	// Publish
	w, _ = doJSON(t, r, http.MethodPut, "/api/venue/status", owner, map[string]any{"status": "LIVE"})
	if w.Code != http.StatusOK {
		t.Fatalf("publish: %d %s", w.Code, w.Body.String())
	}

	// Draft → archived skip of intermediate rules: LIVE → SUSPENDED is admin-only
	w, _ = doJSON(t, r, http.MethodPut, "/api/venue/status", owner, map[string]any{"status": "SUSPENDED"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("owner suspension: got %d, want 422", w.Code)
	}

	// Public menu now includes the grouped catalog
	w, resp = doJSON(t, r, http.MethodGet, jsonPath("/api/venues/%d/menu", venueID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public menu: %d %s", w.Code, w.Body.String())
	}
	groups := resp["groups"].([]any)
	if len(groups) < 3 {
		t.Fatalf("expected system + seeded groups, got %d", len(groups))
	}

	// Quote without the required variation is rejected
	w, _ = doJSON(t, r, http.MethodPost, jsonPath("/api/venues/%d/quote", venueID), "", map[string]any{
		"product_id": productID, "quantity": 2,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("quote without required choice: got %d, want 422", w.Code)
	}

	// With the choice it prices base + adjustment
	optionID := optionIDOf(t, r, owner, productID, variationID)
	w, resp = doJSON(t, r, http.MethodPost, jsonPath("/api/venues/%d/quote", venueID), "", map[string]any{
		"product_id": productID, "quantity": 2,
		"variation_choices": map[string]string{variationID: optionID},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("quote: %d %s", w.Code, w.Body.String())
	}
	if total := resp["total"].(float64); total != 20 {
		t.Fatalf("total = %v, want 20 (2 × (8+2))", total)
	}
}

func TestThemeSwitchFlow(t *testing.T) {
	r := setupAPI(t)
	owner := registerUser(t, r, "owner@saraya.ba", "owner")

	w, _ := doJSON(t, r, http.MethodPost, "/api/venue/", owner, map[string]any{"name": "Caffe Una", "venue_type": "cafe"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create venue: %d %s", w.Code, w.Body.String())
	}

	// Switch to a preset
	w, resp := doJSON(t, r, http.MethodPut, "/api/venue/theme", owner, map[string]any{"theme_id": "dark-elegance"})
	if w.Code != http.StatusOK {
		t.Fatalf("switch theme: %d %s", w.Code, w.Body.String())
	}
	styles := resp["config"].(map[string]any)["component_styles"].(map[string]any)
	if styles["cardPriceColor"] != "#C8A951" {
		t.Fatalf("cardPriceColor = %v, want preset #C8A951", styles["cardPriceColor"])
	}

	// Hand-edit a color under this theme
	w, _ = doJSON(t, r, http.MethodPut, "/api/venue/styles", owner, map[string]any{"cardPriceColor": "#123456"})
	if w.Code != http.StatusOK {
		t.Fatalf("edit styles: %d %s", w.Code, w.Body.String())
	}

	// Switch away and back: the hand edit is sticky per theme
	for _, id := range []string{"fresh-mint", "dark-elegance"} {
		w, _ = doJSON(t, r, http.MethodPut, "/api/venue/theme", owner, map[string]any{"theme_id": id})
		if w.Code != http.StatusOK {
			t.Fatalf("switch to %s: %d %s", id, w.Code, w.Body.String())
		}
	}
	w, resp = doJSON(t, r, http.MethodGet, "/api/venue/theme", owner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get theme config: %d", w.Code)
	}
	styles = resp["config"].(map[string]any)["component_styles"].(map[string]any)
	if styles["cardPriceColor"] != "#123456" {
		t.Fatalf("cardPriceColor = %v after round trip, want sticky #123456", styles["cardPriceColor"])
	}

	// Render plan excludes nothing by default and is ordered
	plan := resp["render_plan"].([]any)
	if len(plan) == 0 {
		t.Fatal("empty render plan")
	}
	if plan[0].(map[string]any)["id"] != "hero" {
		t.Fatalf("first plan entry = %v, want hero", plan[0])
	}
}

func TestAdminSuspension(t *testing.T) {
	r := setupAPI(t)
	owner := registerUser(t, r, "owner@saraya.ba", "owner")
	admin := registerUser(t, r, "admin@saraya.ba", "admin")

	w, resp := doJSON(t, r, http.MethodPost, "/api/venue/", owner, map[string]any{"name": "Saraya Grill"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create venue: %d", w.Code)
	}
	venueID := int(resp["venue"].(map[string]any)["id"].(float64))

	doJSON(t, r, http.MethodPut, "/api/venue/status", owner, map[string]any{"status": "LIVE"})

	// Owner cannot reach admin routes
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/venues", owner, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("owner on admin route: got %d, want 403", w.Code)
	}

	// Admin suspends, storefront disappears
	w, _ = doJSON(t, r, http.MethodPut, jsonPath("/api/admin/venues/%d/status", venueID), admin, map[string]any{
		"status": "SUSPENDED", "reason": "payment overdue",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin suspend: %d %s", w.Code, w.Body.String())
	}
	w, _ = doJSON(t, r, http.MethodGet, jsonPath("/api/venues/%d/config", venueID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("suspended venue still public: %d", w.Code)
	}

	// Lint is reachable for admins
	w, _ = doJSON(t, r, http.MethodGet, jsonPath("/api/admin/venues/%d/lint", venueID), admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin lint: %d", w.Code)
	}
}

func optionIDOf(t *testing.T, r *gin.Engine, token, productID, variationID string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodGet, "/api/venue/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("load venue: %d", w.Code)
	}
	products := resp["venue"].(map[string]any)["products"].([]any)
	for _, raw := range products {
		p := raw.(map[string]any)
		if p["id"] != productID {
			continue
		}
		for _, rawV := range p["variations"].([]any) {
			v := rawV.(map[string]any)
			if v["id"] == variationID {
				return v["options"].([]any)[0].(map[string]any)["id"].(string)
			}
		}
	}
	t.Fatalf("option not found for product %s variation %s", productID, variationID)
	return ""
}

func jsonPath(format string, id int) string {
	return fmt.Sprintf(format, id)
}
