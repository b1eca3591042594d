package api

import (
	"errors"
	"html/template"
	"math/rand"
	"time"

	"github.com/scrumlab/jedzonko/internal/config"
	"github.com/scrumlab/jedzonko/internal/db"
	"github.com/scrumlab/jedzonko/internal/i18n"
	"github.com/scrumlab/jedzonko/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	app          config.AppConfig
	i18n         *i18n.Manager
	templates    map[string]*template.Template
	random       *rand.Rand

	repositories  *db.Repositories
	authService   *services.AuthService
	recipeService *services.RecipeService
	planService   *services.PlanService
	voteService   *services.VoteService
	pageService   *services.PageService
}

const authTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, templateDir string, i18nManager *i18n.Manager, appConfig config.AppConfig, cookieSecure bool) (*Handler, error) {
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		app:          appConfig,
		i18n:         i18nManager,
		random:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	handler.withDependencies(database)

	templates, err := parsePageTemplates(templateDir, handler.templateFuncMap(), pageTemplateNames())
	if err != nil {
		return nil, err
	}
	handler.templates = templates

	return handler, nil
}

// SetCarouselRandom replaces the random source used for the home-page
// carousel, so tests can fix the seed.
func (handler *Handler) SetCarouselRandom(random *rand.Rand) {
	if random != nil {
		handler.random = random
	}
}

func pageTemplateNames() []string {
	return []string{
		"index",
		"dashboard",
		"login",
		"register",
		"recipes",
		"recipe_add",
		"recipe_detail",
		"recipe_edit",
		"plans",
		"plan_add",
		"plan_add_recipe",
		"plan_detail",
		"page",
		"not_found",
	}
}
