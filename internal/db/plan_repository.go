package db

import (
	"github.com/scrumlab/jedzonko/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PlanRepository) FindByID(planID uint) (models.Plan, bool, error) {
	var plan models.Plan
	result := repo.database.Limit(1).Find(&plan, planID)
	if result.Error != nil {
		return models.Plan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Plan{}, false, nil
	}
	return plan, true, nil
}

// Latest returns the most recently created plan, ties broken by the
// highest identity.
func (repo *PlanRepository) Latest() (models.Plan, bool, error) {
	var plan models.Plan
	result := repo.database.Order("created DESC, id DESC").Limit(1).Find(&plan)
	if result.Error != nil {
		return models.Plan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Plan{}, false, nil
	}
	return plan, true, nil
}

func (repo *PlanRepository) ListAll() ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) ListAlphabetical(limit int, offset int) ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	if err := repo.database.
		Order("name ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) Create(plan *models.Plan) error {
	return repo.database.Create(plan).Error
}
