package models

const (
	DayMonday    = "MON"
	DayTuesday   = "TUE"
	DayWednesday = "WED"
	DayThursday  = "THU"
	DayFriday    = "FRI"
	DaySaturday  = "SAT"
	DaySunday    = "SUN"
)

// RecipePlan assigns one recipe to one meal slot of one plan. MealOrder
// carries no uniqueness constraint; ties are resolved by insertion order.
type RecipePlan struct {
	ID        uint   `gorm:"primaryKey"`
	RecipeID  uint   `gorm:"not null;index"`
	PlanID    uint   `gorm:"not null;index"`
	Recipe    Recipe `gorm:"constraint:OnDelete:CASCADE"`
	Plan      Plan   `gorm:"constraint:OnDelete:CASCADE"`
	MealName  string `gorm:"not null"`
	MealOrder int    `gorm:"not null"`
	DayName   string `gorm:"not null;default:MON"`
}

// DayKeys returns the seven day keys in week order, Monday first.
func DayKeys() []string {
	return []string{
		DayMonday,
		DayTuesday,
		DayWednesday,
		DayThursday,
		DayFriday,
		DaySaturday,
		DaySunday,
	}
}

func ValidDayKey(key string) bool {
	switch key {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday:
		return true
	}
	return false
}

// DayTranslationKey maps a day key to its locale catalog entry.
func DayTranslationKey(key string) string {
	return "day." + key
}
