package services

import (
	"math/rand"
	"time"

	"github.com/ggrange/cuistot/internal/models"
)

type SuggestMenuRepository interface {
	PlannedRecipeIDs(start time.Time, end time.Time) ([]uint, error)
}

type RecipeLister interface {
	ListAll() ([]models.Recipe, error)
}

// SuggestService proposes a recipe for a date, avoiding everything already
// planned in the same ISO week. The draw is uniform over the remaining
// candidates; the random source is injectable so tests can pin it.
type SuggestService struct {
	menus    SuggestMenuRepository
	recipes  RecipeLister
	location *time.Location
	intn     func(n int) int
}

func NewSuggestService(menus SuggestMenuRepository, recipes RecipeLister, location *time.Location) *SuggestService {
	if location == nil {
		location = time.UTC
	}
	return &SuggestService{
		menus:    menus,
		recipes:  recipes,
		location: location,
		intn:     rand.Intn,
	}
}

// WithRandom replaces the random draw. Intended for tests.
func (service *SuggestService) WithRandom(intn func(n int) int) *SuggestService {
	service.intn = intn
	return service
}

// Suggest picks one recipe not planned in the ISO week containing the date.
// The second return is false when every recipe is already planned that week,
// or the catalog is empty.
func (service *SuggestService) Suggest(date time.Time) (models.Recipe, bool, error) {
	monday, sunday := ISOWeekRange(date, service.location)
	plannedIDs, err := service.menus.PlannedRecipeIDs(monday, sunday)
	if err != nil {
		return models.Recipe{}, false, err
	}

	excluded := make(map[uint]struct{}, len(plannedIDs))
	for _, id := range plannedIDs {
		excluded[id] = struct{}{}
	}

	all, err := service.recipes.ListAll()
	if err != nil {
		return models.Recipe{}, false, err
	}

	candidates := make([]models.Recipe, 0, len(all))
	for _, recipe := range all {
		if _, planned := excluded[recipe.ID]; !planned {
			candidates = append(candidates, recipe)
		}
	}
	if len(candidates) == 0 {
		return models.Recipe{}, false, nil
	}

	return candidates[service.intn(len(candidates))], true, nil
}
