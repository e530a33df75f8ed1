package services

import (
	"errors"
	"time"

	"github.com/ggrange/cuistot/internal/models"
)

var (
	ErrMenuNotFound   = errors.New("menu entry not found")
	ErrRecipeNotFound = errors.New("recipe not found")
)

type MenuInput struct {
	RecipeID *uint
	Diners   int
	Notes    string
}

type MenuEntryRepository interface {
	ListByPeriod(start time.Time, end time.Time) ([]models.MenuEntryView, error)
	FindByDate(date time.Time) (models.MenuEntryView, bool, error)
	Upsert(entry *models.MenuEntry) error
	Validate(date time.Time) (int64, error)
	DeleteByDate(date time.Time) error
}

type MenuRecipeChecker interface {
	FindByID(recipeID uint) (models.Recipe, bool, error)
}

type MenuService struct {
	menus    MenuEntryRepository
	recipes  MenuRecipeChecker
	location *time.Location
}

func NewMenuService(menus MenuEntryRepository, recipes MenuRecipeChecker, location *time.Location) *MenuService {
	if location == nil {
		location = time.UTC
	}
	return &MenuService{
		menus:    menus,
		recipes:  recipes,
		location: location,
	}
}

func (service *MenuService) FetchByPeriod(start time.Time, end time.Time) ([]models.MenuEntryView, error) {
	return service.menus.ListByPeriod(
		DateAtLocation(start, service.location),
		DateAtLocation(end, service.location),
	)
}

func (service *MenuService) FetchByDate(date time.Time) (models.MenuEntryView, bool, error) {
	return service.menus.FindByDate(DateAtLocation(date, service.location))
}

func (service *MenuService) FetchCurrentWeek(now time.Time) ([]models.MenuEntryView, error) {
	monday, sunday := ISOWeekRange(now, service.location)
	return service.menus.ListByPeriod(monday, sunday)
}

func (service *MenuService) FetchCurrentMonth(now time.Time) ([]models.MenuEntryView, error) {
	first, last := MonthRange(now, service.location)
	return service.menus.ListByPeriod(first, last)
}

// SetMenu plans (or replans) the date. An existing entry for the date is
// overwritten in place; a second row is never created. The recipe reference is
// checked before writing so a dangling id fails with ErrRecipeNotFound.
func (service *MenuService) SetMenu(date time.Time, input MenuInput) (models.MenuEntryView, error) {
	if input.RecipeID != nil {
		_, found, err := service.recipes.FindByID(*input.RecipeID)
		if err != nil {
			return models.MenuEntryView{}, err
		}
		if !found {
			return models.MenuEntryView{}, ErrRecipeNotFound
		}
	}

	diners := input.Diners
	if diners <= 0 {
		diners = models.DefaultDiners
	}

	entry := models.MenuEntry{
		Date:     DateAtLocation(date, service.location),
		RecipeID: input.RecipeID,
		Diners:   diners,
		Notes:    input.Notes,
	}
	if err := service.menus.Upsert(&entry); err != nil {
		return models.MenuEntryView{}, err
	}

	view, found, err := service.menus.FindByDate(entry.Date)
	if err != nil {
		return models.MenuEntryView{}, err
	}
	if !found {
		return models.MenuEntryView{}, ErrMenuNotFound
	}
	return view, nil
}

// Validate marks the date's entry validated. A missing entry surfaces as
// ErrMenuNotFound instead of silently updating zero rows; the caller decides
// whether that is an error.
func (service *MenuService) Validate(date time.Time) error {
	affected, err := service.menus.Validate(DateAtLocation(date, service.location))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

// Delete removes the date's entry. Deleting a date with no entry is not an
// error.
func (service *MenuService) Delete(date time.Time) error {
	return service.menus.DeleteByDate(DateAtLocation(date, service.location))
}
