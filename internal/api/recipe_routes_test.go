package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestAddRecipePersistsAndRedirects(t *testing.T) {
	app, handler := newTestApp(t)

	form := url.Values{
		"recipe_name":      {"Pierogi"},
		"ingredients":      {"flour, potatoes, cheese"},
		"description":      {"Dumplings"},
		"preparation_time": {"60"},
		"how_to_prepare":   {"Make dough, fill, boil"},
	}
	response := performRequest(t, app, fiber.MethodPost, "/recipe/add", form)
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("POST /recipe/add = %d, want 303", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/recipe/list" {
		t.Fatalf("Location = %q, want %q", location, "/recipe/list")
	}

	count, err := handler.repositories.Recipes.Count()
	if err != nil {
		t.Fatalf("count recipes: %v", err)
	}
	if count != 1 {
		t.Fatalf("recipe count = %d, want 1", count)
	}
}

func TestAddRecipeRejectsIncompleteForm(t *testing.T) {
	app, handler := newTestApp(t)

	form := url.Values{
		"recipe_name":      {"Pierogi"},
		"ingredients":      {""},
		"description":      {"Dumplings"},
		"preparation_time": {"60"},
		"how_to_prepare":   {"Make dough, fill, boil"},
	}
	response := performRequest(t, app, fiber.MethodPost, "/recipe/add", form)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("POST /recipe/add = %d, want 200 with inline error", response.StatusCode)
	}

	body := readBody(t, response)
	if !strings.Contains(body, "Fill in all fields correctly") {
		t.Fatalf("error message missing, body = %q", body)
	}
	// The submitted values stay in the re-rendered form.
	if !strings.Contains(body, "Pierogi") {
		t.Fatal("form values must be retained")
	}

	count, err := handler.repositories.Recipes.Count()
	if err != nil {
		t.Fatalf("count recipes: %v", err)
	}
	if count != 0 {
		t.Fatalf("recipe count = %d, want 0", count)
	}
}

func TestRecipeListPaginatesByScore(t *testing.T) {
	app, handler := newTestApp(t)
	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	seedTestRecipe(t, handler, "Top recipe", 10, base)
	seedTestRecipe(t, handler, "Second recipe", 5, base)
	seedTestRecipe(t, handler, "Third recipe", 1, base)

	response := performRequest(t, app, fiber.MethodGet, "/recipe/list", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET /recipe/list = %d, want 200", response.StatusCode)
	}
	body := readBody(t, response)
	if !strings.Contains(body, "Top recipe") || !strings.Contains(body, "Second recipe") {
		t.Fatalf("first page missing top recipes, body = %q", body)
	}
	if strings.Contains(body, "Third recipe") {
		t.Fatal("third recipe belongs on the second page")
	}

	response = performRequest(t, app, fiber.MethodGet, "/recipe/list?page=2", nil)
	body = readBody(t, response)
	if !strings.Contains(body, "Third recipe") {
		t.Fatalf("second page missing third recipe, body = %q", body)
	}
}

func TestRecipeListTokenFallbacks(t *testing.T) {
	app, handler := newTestApp(t)
	seedTestRecipe(t, handler, "Only recipe", 0, time.Now())

	for _, token := range []string{"abc", "99", "-1"} {
		response := performRequest(t, app, fiber.MethodGet, "/recipe/list?page="+token, nil)
		if response.StatusCode != http.StatusOK {
			t.Fatalf("GET /recipe/list?page=%s = %d, want 200", token, response.StatusCode)
		}
		if body := readBody(t, response); !strings.Contains(body, "Only recipe") {
			t.Fatalf("page token %q: recipe missing", token)
		}
	}
}

func TestRecipeDetailNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/recipe/999", "/recipe/0", "/recipe/abc"} {
		response := performRequest(t, app, fiber.MethodGet, target, nil)
		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s = %d, want 404", target, response.StatusCode)
		}
		if body := readBody(t, response); !strings.Contains(body, "Recipe not found") {
			t.Fatalf("GET %s body = %q", target, body)
		}
	}
}

func TestVoteUpdatesScoreOnDetailPage(t *testing.T) {
	app, handler := newTestApp(t)
	recipe := seedTestRecipe(t, handler, "Pierogi", 0, time.Now())

	response := performRequest(t, app, fiber.MethodPost,
		fmt.Sprintf("/recipe/%d", recipe.ID), url.Values{"vote": {"1"}})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("POST vote = %d, want 200", response.StatusCode)
	}
	if body := readBody(t, response); !strings.Contains(body, "Votes: 1") {
		t.Fatalf("upvoted score missing, body = %q", body)
	}

	response = performRequest(t, app, fiber.MethodPost,
		fmt.Sprintf("/recipe/%d", recipe.ID), url.Values{"vote": {"-1"}})
	if body := readBody(t, response); !strings.Contains(body, "Votes: 0") {
		t.Fatalf("downvoted score missing, body = %q", body)
	}
}

func TestVoteWithMalformedDelta(t *testing.T) {
	app, handler := newTestApp(t)
	recipe := seedTestRecipe(t, handler, "Pierogi", 3, time.Now())

	response := performRequest(t, app, fiber.MethodPost,
		fmt.Sprintf("/recipe/%d", recipe.ID), url.Values{"vote": {"lots"}})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("POST vote = %d, want 200", response.StatusCode)
	}

	body := readBody(t, response)
	if !strings.Contains(body, "Invalid vote") {
		t.Fatalf("error message missing, body = %q", body)
	}
	if !strings.Contains(body, "Votes: 3") {
		t.Fatalf("score must stay unchanged, body = %q", body)
	}
}

func TestVoteOnMissingRecipe(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, fiber.MethodPost, "/recipe/999", url.Values{"vote": {"1"}})
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("POST /recipe/999 = %d, want 404", response.StatusCode)
	}
}

func TestModifyRecipePrefillsForm(t *testing.T) {
	app, handler := newTestApp(t)
	recipe := seedTestRecipe(t, handler, "Old name", 0, time.Now())

	response := performRequest(t, app, fiber.MethodGet,
		fmt.Sprintf("/recipe/modify/%d", recipe.ID), nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET modify = %d, want 200", response.StatusCode)
	}
	if body := readBody(t, response); !strings.Contains(body, "Old name") {
		t.Fatalf("form not prefilled, body = %q", body)
	}
}

func TestModifyRecipeUpdatesInPlace(t *testing.T) {
	app, handler := newTestApp(t)
	recipe := seedTestRecipe(t, handler, "Old name", 7, time.Now())

	form := url.Values{
		"recipe_name":      {"New name"},
		"ingredients":      {"new ingredients"},
		"description":      {"new description"},
		"preparation_time": {"15"},
		"how_to_prepare":   {"new steps"},
	}
	response := performRequest(t, app, fiber.MethodPost,
		fmt.Sprintf("/recipe/modify/%d", recipe.ID), form)
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("POST modify = %d, want 303", response.StatusCode)
	}

	count, err := handler.repositories.Recipes.Count()
	if err != nil {
		t.Fatalf("count recipes: %v", err)
	}
	if count != 1 {
		t.Fatalf("recipe count = %d, want 1 (edits must not create copies)", count)
	}

	updated, found, err := handler.repositories.Recipes.FindByID(recipe.ID)
	if err != nil || !found {
		t.Fatalf("FindByID() = found %v, err %v", found, err)
	}
	if updated.Name != "New name" {
		t.Fatalf("Name = %q, want %q", updated.Name, "New name")
	}
	if updated.Vote != 7 {
		t.Fatalf("Vote = %d, want 7", updated.Vote)
	}
}

func TestModifyMissingRecipe(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{
		"recipe_name":      {"New name"},
		"ingredients":      {"ingredients"},
		"description":      {"description"},
		"preparation_time": {"15"},
		"how_to_prepare":   {"steps"},
	}
	response := performRequest(t, app, fiber.MethodPost, "/recipe/modify/999", form)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("POST modify missing = %d, want 404", response.StatusCode)
	}
}
