package db

import (
	"github.com/scrumlab/jedzonko/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

func (repo *RecipeRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *RecipeRepository) FindByID(recipeID uint) (models.Recipe, bool, error) {
	var recipe models.Recipe
	result := repo.database.Limit(1).Find(&recipe, recipeID)
	if result.Error != nil {
		return models.Recipe{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Recipe{}, false, nil
	}
	return recipe, true, nil
}

func (repo *RecipeRepository) ListAll() ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListRanked returns a page of recipes ordered by vote score descending,
// most recently created first among equal scores.
func (repo *RecipeRepository) ListRanked(limit int, offset int) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.
		Order("vote DESC, created DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}

func (repo *RecipeRepository) UpdateByID(recipeID uint, updates map[string]any) error {
	return repo.database.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(updates).Error
}

// AddVote applies the delta as a single atomic increment at the storage
// layer, so concurrent votes on the same recipe cannot lose updates.
func (repo *RecipeRepository) AddVote(recipeID uint, delta int) (int, bool, error) {
	result := repo.database.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("vote", gorm.Expr("vote + ?", delta))
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}

	var recipe models.Recipe
	if err := repo.database.Select("vote").First(&recipe, recipeID).Error; err != nil {
		return 0, false, err
	}
	return recipe.Vote, true, nil
}
