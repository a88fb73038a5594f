package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/storage"
)

func newEntityApp() (*fiber.App, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	app := fiber.New()
	api := app.Group("/api")

	users := &UserHandler{Store: store}
	platforms := &PlatformHandler{Store: store}
	settings := &BrandSettingsHandler{Store: store}
	posts := &ContentPostHandler{Store: store}
	analytics := &AnalyticsHandler{Store: store}

	api.Post("/users", users.CreateUser)
	api.Get("/users/by-username/:username", users.GetUserByUsername)
	api.Get("/users/:id", users.GetUser)

	api.Post("/platforms", platforms.CreatePlatform)
	api.Get("/platforms/:id", platforms.GetPlatform)
	api.Patch("/platforms/:id", platforms.UpdatePlatform)
	api.Delete("/platforms/:id", platforms.DeletePlatform)
	api.Post("/platforms/:id/connect", platforms.ConnectPlatform)
	api.Get("/users/:userId/platforms", platforms.GetPlatformsByUser)

	api.Get("/users/:userId/brand-settings", settings.GetBrandSettings)
	api.Post("/users/:userId/brand-settings", settings.CreateBrandSettings)
	api.Patch("/users/:userId/brand-settings", settings.UpdateBrandSettings)

	api.Post("/content-posts", posts.CreateContentPost)
	api.Get("/content-posts/:id", posts.GetContentPost)
	api.Patch("/content-posts/:id", posts.UpdateContentPost)
	api.Delete("/content-posts/:id", posts.DeleteContentPost)
	api.Get("/users/:userId/content-posts", posts.GetContentPostsByUser)
	api.Get("/platforms/:platformId/content-posts", posts.GetContentPostsByPlatform)

	api.Post("/analytics", analytics.CreateAnalytics)
	api.Get("/analytics/:id", analytics.GetAnalytics)
	api.Patch("/analytics/:id", analytics.UpdateAnalytics)
	api.Get("/users/:userId/analytics", analytics.GetAnalyticsByUser)
	api.Get("/platforms/:platformId/analytics", analytics.GetAnalyticsByPlatform)

	return app, store
}

func TestCreateUserRoute(t *testing.T) {
	app, _ := newEntityApp()

	req := jsonRequest(t, http.MethodPost, "/api/users", fiber.Map{
		"username": "newuser",
		"password": "secret",
		"name":     "New User",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	var created map[string]interface{}
	decodeBody(t, resp, &created)
	if created["username"] != "newuser" {
		t.Errorf("Unexpected user: %+v", created)
	}
	if _, leaked := created["password"]; leaked {
		t.Error("Password must not appear in responses")
	}

	// The store is pre-seeded with demouser; reusing the name is rejected.
	req = jsonRequest(t, http.MethodPost, "/api/users", fiber.Map{
		"username": "demouser",
		"password": "secret",
	})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate username, got %d", resp.StatusCode)
	}
	var envelope map[string]interface{}
	decodeBody(t, resp, &envelope)
	if envelope["message"] != "Username already taken" {
		t.Errorf("Unexpected message: %v", envelope["message"])
	}
}

func TestGetUserRoutes(t *testing.T) {
	app, _ := newEntityApp()

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/users/1", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200 for seeded user, got %d", resp.StatusCode)
	}
	var user map[string]interface{}
	decodeBody(t, resp, &user)
	if user["username"] != "demouser" {
		t.Errorf("Unexpected user: %+v", user)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/users/999", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/users/by-username/demouser", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 by username, got %d", resp.StatusCode)
	}
}

func TestPlatformConnectRoute(t *testing.T) {
	app, _ := newEntityApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/platforms", fiber.Map{
		"userId": 1,
		"name":   "Work LinkedIn",
		"type":   "linkedin",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	var platform map[string]interface{}
	decodeBody(t, resp, &platform)
	if platform["connected"] != false {
		t.Errorf("Expected new platform disconnected, got %+v", platform)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/platforms/1/connect", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200 on connect, got %d", resp.StatusCode)
	}
	var connected map[string]interface{}
	decodeBody(t, resp, &connected)
	if connected["connected"] != true {
		t.Errorf("Expected connected platform, got %+v", connected)
	}
	if token, _ := connected["accessToken"].(string); token == "" {
		t.Error("Expected an opaque access token")
	}

	// First connect seeds a mock analytics snapshot for the platform.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/platforms/1/analytics", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected seeded analytics, got %d", resp.StatusCode)
	}
	var snapshot map[string]interface{}
	decodeBody(t, resp, &snapshot)
	if snapshot["followers"] != float64(2840) {
		t.Errorf("Expected linkedin baseline followers, got %v", snapshot["followers"])
	}
}

func TestCreatePlatformRouteValidation(t *testing.T) {
	app, _ := newEntityApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/platforms", fiber.Map{
		"userId": 1,
		"name":   "Legacy",
		"type":   "myspace",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for unknown platform type, got %d", resp.StatusCode)
	}
}

func TestBrandSettingsRoutes(t *testing.T) {
	app, _ := newEntityApp()

	// Create with defaults
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/1/brand-settings", fiber.Map{}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	var settings map[string]interface{}
	decodeBody(t, resp, &settings)
	if settings["formalToCasual"] != float64(50) {
		t.Errorf("Expected default slider 50, got %v", settings["formalToCasual"])
	}

	// Only one settings row per user
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/users/1/brand-settings", fiber.Map{}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for second settings row, got %d", resp.StatusCode)
	}

	// Out of range slider
	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/api/users/1/brand-settings", fiber.Map{
		"formalToCasual": 150,
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range slider, got %d", resp.StatusCode)
	}

	// Partial update
	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/api/users/1/brand-settings", fiber.Map{
		"formalToCasual": 70,
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &settings)
	if settings["formalToCasual"] != float64(70) || settings["technicalToAccessible"] != float64(50) {
		t.Errorf("Unexpected settings after update: %+v", settings)
	}

	// No settings for this user
	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/api/users/42/brand-settings", fiber.Map{
		"formalToCasual": 70,
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404 for unknown user, got %d", resp.StatusCode)
	}
}

func TestContentPostLifecycleRoutes(t *testing.T) {
	app, _ := newEntityApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/content-posts", fiber.Map{
		"userId":     1,
		"platformId": 1,
		"content":    "Draft thoughts on shipping",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	var post map[string]interface{}
	decodeBody(t, resp, &post)
	if post["status"] != models.PostStatusDraft {
		t.Errorf("Expected default draft status, got %v", post["status"])
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/api/content-posts/1", fiber.Map{
		"status": "launching",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for unknown status, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/api/content-posts/1", fiber.Map{
		"status": "scheduled",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &post)
	if post["status"] != models.PostStatusScheduled {
		t.Errorf("Expected scheduled status, got %v", post["status"])
	}

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/content-posts/1", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200 on delete, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/content-posts/1", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestAnalyticsRoutesValidation(t *testing.T) {
	app, _ := newEntityApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/analytics", fiber.Map{
		"userId":     1,
		"platformId": 1,
		"followers":  -5,
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for negative followers, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/analytics", fiber.Map{
		"userId":     1,
		"platformId": 1,
		"followers":  100,
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/users/1/analytics", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var list []map[string]interface{}
	decodeBody(t, resp, &list)
	if len(list) != 1 || list[0]["followers"] != float64(100) {
		t.Errorf("Unexpected analytics list: %+v", list)
	}
}
