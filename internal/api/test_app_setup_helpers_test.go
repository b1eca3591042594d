package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scrumlab/jedzonko/internal/config"
	"github.com/scrumlab/jedzonko/internal/db"
	"github.com/scrumlab/jedzonko/internal/i18n"
	"github.com/scrumlab/jedzonko/internal/models"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "jedzonko-test.db")

	database, err := db.OpenSQLite(databasePath)
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

	i18nManager, err := i18n.NewManager(i18n.LangEN, localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	appConfig := config.AppConfig{
		DefaultLanguage: i18n.LangEN,
		RecipePageSize:  2,
		PlanPageSize:    3,
		CarouselSize:    3,
	}
	handler, err := NewHandler(database, "test-secret-key", templatesDir, i18nManager, appConfig, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	app.Use(handler.UserMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func performRequest(t *testing.T, app *fiber.App, method string, target string, form url.Values) *http.Response {
	t.Helper()

	var request *http.Request
	if form == nil {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return response
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	_ = response.Body.Close()
	return string(content)
}

func seedTestRecipe(t *testing.T, handler *Handler, name string, vote int, created time.Time) models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Name:            name,
		Ingredients:     "pasta, tomatoes",
		Description:     "A classic",
		HowToPrepare:    "Boil and combine",
		PreparationTime: 30,
		Vote:            vote,
		Created:         created,
		Updated:         created,
	}
	if err := handler.repositories.Recipes.Create(&recipe); err != nil {
		t.Fatalf("seed recipe %q: %v", name, err)
	}
	return recipe
}

func seedTestPlan(t *testing.T, handler *Handler, name string, created time.Time) models.Plan {
	t.Helper()

	plan := models.Plan{Name: name, Description: "A plan for the week", Created: created}
	if err := handler.repositories.Plans.Create(&plan); err != nil {
		t.Fatalf("seed plan %q: %v", name, err)
	}
	return plan
}
