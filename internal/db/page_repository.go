package db

import (
	"github.com/scrumlab/jedzonko/internal/models"
	"gorm.io/gorm"
)

type PageRepository struct {
	database *gorm.DB
}

func NewPageRepository(database *gorm.DB) *PageRepository {
	return &PageRepository{database: database}
}

// Create relies on the unique slug index; a collision surfaces as the
// driver's constraint error.
func (repo *PageRepository) Create(page *models.Page) error {
	return repo.database.Create(page).Error
}

func (repo *PageRepository) FindBySlug(slug string) (models.Page, bool, error) {
	var page models.Page
	result := repo.database.Where("slug = ?", slug).Limit(1).Find(&page)
	if result.Error != nil {
		return models.Page{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Page{}, false, nil
	}
	return page, true, nil
}
