package models

import "time"

const DefaultHowToPrepare = "I don't know how to prepare it"

type Recipe struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Ingredients     string `gorm:"not null"`
	Description     string `gorm:"not null"`
	HowToPrepare    string `gorm:"not null"`
	PreparationTime int    `gorm:"not null"`
	Vote            int    `gorm:"not null;default:0"`
	Created         time.Time
	Updated         time.Time
}
