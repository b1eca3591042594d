package api

import (
	"github.com/scrumlab/jedzonko/internal/db"
	"github.com/scrumlab/jedzonko/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.recipeService = services.NewRecipeService(handler.repositories.Recipes)
	handler.planService = services.NewPlanService(
		handler.repositories.Plans,
		handler.repositories.RecipePlans,
		handler.repositories.Recipes,
	)
	handler.voteService = services.NewVoteService(handler.repositories.Recipes)
	handler.pageService = services.NewPageService(handler.repositories.Pages)
	return handler
}
