package services

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/scrumlab/jedzonko/internal/models"
)

var ErrRecipeFormInvalid = errors.New("recipe form is incomplete")

type RecipeRepository interface {
	FindByID(recipeID uint) (models.Recipe, bool, error)
	Count() (int64, error)
	ListAll() ([]models.Recipe, error)
	ListRanked(limit int, offset int) ([]models.Recipe, error)
	Create(recipe *models.Recipe) error
	UpdateByID(recipeID uint, updates map[string]any) error
}

// RecipeForm carries the raw form fields shared by the add and modify
// workflows. Both run through the same validate-and-build step.
type RecipeForm struct {
	Name            string
	Ingredients     string
	Description     string
	PreparationTime string
	HowToPrepare    string
}

type RecipeService struct {
	recipes RecipeRepository
}

func NewRecipeService(recipes RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// BuildRecipe validates the form and assembles a recipe value. Every field
// is required; the preparation time must parse as an integer.
func BuildRecipe(form RecipeForm, now time.Time) (models.Recipe, error) {
	name := strings.TrimSpace(form.Name)
	ingredients := strings.TrimSpace(form.Ingredients)
	description := strings.TrimSpace(form.Description)
	howToPrepare := strings.TrimSpace(form.HowToPrepare)

	if name == "" || ingredients == "" || description == "" || howToPrepare == "" {
		return models.Recipe{}, ErrRecipeFormInvalid
	}

	preparationTime, err := strconv.Atoi(strings.TrimSpace(form.PreparationTime))
	if err != nil {
		return models.Recipe{}, ErrRecipeFormInvalid
	}

	return models.Recipe{
		Name:            name,
		Ingredients:     ingredients,
		Description:     description,
		HowToPrepare:    howToPrepare,
		PreparationTime: preparationTime,
		Created:         now,
		Updated:         now,
	}, nil
}

func (service *RecipeService) CreateRecipe(form RecipeForm, now time.Time) (models.Recipe, error) {
	recipe, err := BuildRecipe(form, now)
	if err != nil {
		return models.Recipe{}, err
	}
	if err := service.recipes.Create(&recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// UpdateRecipe rewrites the identified recipe in place from the same
// validated form the add workflow uses.
func (service *RecipeService) UpdateRecipe(recipeID uint, form RecipeForm, now time.Time) error {
	if _, found, err := service.recipes.FindByID(recipeID); err != nil {
		return err
	} else if !found {
		return ErrRecipeNotFound
	}

	recipe, err := BuildRecipe(form, now)
	if err != nil {
		return err
	}

	return service.recipes.UpdateByID(recipeID, map[string]any{
		"name":             recipe.Name,
		"ingredients":      recipe.Ingredients,
		"description":      recipe.Description,
		"how_to_prepare":   recipe.HowToPrepare,
		"preparation_time": recipe.PreparationTime,
		"updated":          now,
	})
}

func (service *RecipeService) FetchRecipe(recipeID uint) (models.Recipe, error) {
	recipe, found, err := service.recipes.FindByID(recipeID)
	if err != nil {
		return models.Recipe{}, err
	}
	if !found {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

func (service *RecipeService) CountRecipes() (int64, error) {
	return service.recipes.Count()
}

func (service *RecipeService) ListAllRecipes() ([]models.Recipe, error) {
	return service.recipes.ListAll()
}

// RankedPage returns one page of recipes, best vote score first and most
// recent first among equal scores.
func (service *RecipeService) RankedPage(pageToken string, pageSize int) ([]models.Recipe, Pagination, error) {
	total, err := service.recipes.Count()
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := Paginate(pageToken, pageSize, total)
	recipes, err := service.recipes.ListRanked(pageSize, pagination.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}
	return recipes, pagination, nil
}

// Carousel samples up to count recipes without replacement from the given
// random source. The source is injected so callers can fix the seed.
func (service *RecipeService) Carousel(count int, random *rand.Rand) ([]models.Recipe, error) {
	recipes, err := service.recipes.ListAll()
	if err != nil {
		return nil, err
	}

	random.Shuffle(len(recipes), func(i, j int) {
		recipes[i], recipes[j] = recipes[j], recipes[i]
	})
	if len(recipes) > count {
		recipes = recipes[:count]
	}
	return recipes, nil
}
