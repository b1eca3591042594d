package services

import (
	"errors"
	"strings"
	"time"

	"github.com/scrumlab/jedzonko/internal/models"
)

var (
	ErrPlanNotFound   = errors.New("plan not found")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidDay     = errors.New("invalid day key")
	ErrEmptyMealName  = errors.New("meal name must not be empty")
)

type PlanRepository interface {
	FindByID(planID uint) (models.Plan, bool, error)
	Latest() (models.Plan, bool, error)
	Count() (int64, error)
	ListAll() ([]models.Plan, error)
	ListAlphabetical(limit int, offset int) ([]models.Plan, error)
	Create(plan *models.Plan) error
}

type ScheduleEntryRepository interface {
	Create(entry *models.RecipePlan) error
	ListByPlanAndDay(planID uint, dayKey string) ([]models.RecipePlan, error)
}

type PlanRecipeFinder interface {
	FindByID(recipeID uint) (models.Recipe, bool, error)
}

// ScheduleDay is one day bucket of a weekly schedule. Entries are ordered
// by meal order, insertion order breaks ties.
type ScheduleDay struct {
	DayKey  string
	Entries []models.RecipePlan
}

type WeeklySchedule struct {
	Plan models.Plan
	Days []ScheduleDay
}

type PlanService struct {
	plans   PlanRepository
	entries ScheduleEntryRepository
	recipes PlanRecipeFinder
}

func NewPlanService(plans PlanRepository, entries ScheduleEntryRepository, recipes PlanRecipeFinder) *PlanService {
	return &PlanService{
		plans:   plans,
		entries: entries,
		recipes: recipes,
	}
}

func (service *PlanService) CreatePlan(name string, description string, now time.Time) (models.Plan, error) {
	plan := models.Plan{
		Name:        name,
		Description: description,
		Created:     now,
	}
	if err := service.plans.Create(&plan); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}

// AddRecipeToPlan records one recipe-to-slot assignment and returns the new
// entry's identity. Duplicate assignments are allowed: calling this twice
// with identical arguments creates two rows.
func (service *PlanService) AddRecipeToPlan(planID uint, recipeID uint, mealName string, mealOrder int, dayKey string) (uint, error) {
	if !models.ValidDayKey(dayKey) {
		return 0, ErrInvalidDay
	}
	if strings.TrimSpace(mealName) == "" {
		return 0, ErrEmptyMealName
	}

	if _, found, err := service.plans.FindByID(planID); err != nil {
		return 0, err
	} else if !found {
		return 0, ErrPlanNotFound
	}
	if _, found, err := service.recipes.FindByID(recipeID); err != nil {
		return 0, err
	} else if !found {
		return 0, ErrRecipeNotFound
	}

	entry := models.RecipePlan{
		RecipeID:  recipeID,
		PlanID:    planID,
		MealName:  mealName,
		MealOrder: mealOrder,
		DayName:   dayKey,
	}
	if err := service.entries.Create(&entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// GetWeeklySchedule regroups the plan's flat assignment rows into the seven
// day buckets, Monday through Sunday. Days without entries are present with
// an empty sequence.
func (service *PlanService) GetWeeklySchedule(planID uint) (WeeklySchedule, error) {
	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return WeeklySchedule{}, err
	}
	if !found {
		return WeeklySchedule{}, ErrPlanNotFound
	}
	return service.scheduleForPlan(plan)
}

// GetLatestPlanSchedule resolves the most recently created plan and returns
// its weekly schedule.
func (service *PlanService) GetLatestPlanSchedule() (WeeklySchedule, error) {
	plan, found, err := service.plans.Latest()
	if err != nil {
		return WeeklySchedule{}, err
	}
	if !found {
		return WeeklySchedule{}, ErrPlanNotFound
	}
	return service.scheduleForPlan(plan)
}

func (service *PlanService) scheduleForPlan(plan models.Plan) (WeeklySchedule, error) {
	dayKeys := models.DayKeys()
	schedule := WeeklySchedule{
		Plan: plan,
		Days: make([]ScheduleDay, 0, len(dayKeys)),
	}
	for _, dayKey := range dayKeys {
		entries, err := service.entries.ListByPlanAndDay(plan.ID, dayKey)
		if err != nil {
			return WeeklySchedule{}, err
		}
		schedule.Days = append(schedule.Days, ScheduleDay{
			DayKey:  dayKey,
			Entries: entries,
		})
	}
	return schedule, nil
}

func (service *PlanService) CountPlans() (int64, error) {
	return service.plans.Count()
}

func (service *PlanService) ListAllPlans() ([]models.Plan, error) {
	return service.plans.ListAll()
}

// AlphabeticalPage returns one page of plans ordered by name.
func (service *PlanService) AlphabeticalPage(pageToken string, pageSize int) ([]models.Plan, Pagination, error) {
	total, err := service.plans.Count()
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := Paginate(pageToken, pageSize, total)
	plans, err := service.plans.ListAlphabetical(pageSize, pagination.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}
	return plans, pagination, nil
}
