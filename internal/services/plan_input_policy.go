package services

import "strings"

// Locale catalog keys for the three distinct plan form failures.
const (
	PlanFormErrorBothMissing        = "plan.form.both_missing"
	PlanFormErrorNameMissing        = "plan.form.name_missing"
	PlanFormErrorDescriptionMissing = "plan.form.description_missing"
)

// ValidatePlanForm returns the catalog key of the matching error message, or
// an empty key when both fields are filled in.
func ValidatePlanForm(name string, description string) string {
	nameMissing := strings.TrimSpace(name) == ""
	descriptionMissing := strings.TrimSpace(description) == ""

	switch {
	case nameMissing && descriptionMissing:
		return PlanFormErrorBothMissing
	case nameMissing:
		return PlanFormErrorNameMissing
	case descriptionMissing:
		return PlanFormErrorDescriptionMissing
	}
	return ""
}
