package db

import (
	"github.com/scrumlab/jedzonko/internal/models"
	"gorm.io/gorm"
)

type RecipePlanRepository struct {
	database *gorm.DB
}

func NewRecipePlanRepository(database *gorm.DB) *RecipePlanRepository {
	return &RecipePlanRepository{database: database}
}

func (repo *RecipePlanRepository) Create(entry *models.RecipePlan) error {
	return repo.database.Create(entry).Error
}

// ListByPlanAndDay returns the plan's entries for one day, meal_order
// ascending with insertion order as the stable tie-break.
func (repo *RecipePlanRepository) ListByPlanAndDay(planID uint, dayKey string) ([]models.RecipePlan, error) {
	entries := make([]models.RecipePlan, 0)
	if err := repo.database.
		Preload("Recipe").
		Where("plan_id = ? AND day_name = ?", planID, dayKey).
		Order("meal_order ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *RecipePlanRepository) ListByPlan(planID uint) ([]models.RecipePlan, error) {
	entries := make([]models.RecipePlan, 0)
	if err := repo.database.
		Preload("Recipe").
		Where("plan_id = ?", planID).
		Order("meal_order ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
