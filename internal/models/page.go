package models

// Page is a generic static content page addressed by a slug derived from
// its title. Both the title and the slug are unique.
type Page struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
}
