package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cuistot-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, time.UTC, filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method string, target string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, into any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(into); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func requireStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, raw)
	}
}

func createRecipeViaAPI(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/recipes", map[string]any{"name": name})
	requireStatus(t, response, http.StatusCreated)

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, response, &created)
	if created.ID == 0 {
		t.Fatalf("expected created recipe id for %q", name)
	}
	return created.ID
}

func createIngredientViaAPI(t *testing.T, app *fiber.App, name string, unit string) uint {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/ingredients", map[string]any{
		"name": name,
		"unit": unit,
	})
	requireStatus(t, response, http.StatusCreated)

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, response, &created)
	return created.ID
}

func setMenuViaAPI(t *testing.T, app *fiber.App, date string, recipeID uint, diners int) {
	t.Helper()

	payload := map[string]any{"date": date, "diners": diners}
	if recipeID != 0 {
		payload["recipe_id"] = recipeID
	}
	response := doJSON(t, app, http.MethodPost, "/api/menus", payload)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()
}

func attachIngredientViaAPI(t *testing.T, app *fiber.App, recipeID uint, ingredientID uint, quantity float64, unit string) {
	t.Helper()

	target := fmt.Sprintf("/api/recipes/%d/ingredients", recipeID)
	response := doJSON(t, app, http.MethodPost, target, map[string]any{
		"ingredient_id": ingredientID,
		"quantity":      quantity,
		"unit":          unit,
	})
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()
}
