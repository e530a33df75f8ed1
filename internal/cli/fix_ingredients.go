package cli

import (
	"fmt"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/models"
	"github.com/ggrange/cuistot/internal/services"
)

// RunFixIngredientsCommand repairs the ingredient catalog: every name is
// translated to French and folded to its canonical form, and ingredients that
// collapse to the same canonical name are merged (recipe references repointed,
// duplicate row removed). With dryRun set it only prints what it would do.
func RunFixIngredientsCommand(dbPath string, dryRun bool) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repo := db.NewIngredientRepository(database)

	ingredients, err := repo.ListAllOrderedByID()
	if err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}
	fmt.Printf("%d ingredients found\n", len(ingredients))

	plan := planFixes(ingredients)

	for _, rename := range plan.renames {
		fmt.Printf("rename #%d %q -> %q\n", rename.id, rename.from, rename.to)
		if dryRun {
			continue
		}
		if err := repo.Rename(rename.id, rename.to); err != nil {
			return fmt.Errorf("rename ingredient %d: %w", rename.id, err)
		}
	}

	for _, merge := range plan.merges {
		fmt.Printf("merge #%d %q into #%d %q\n", merge.fromID, merge.fromName, merge.toID, merge.toName)
		if dryRun {
			continue
		}
		if err := repo.Merge(merge.fromID, merge.toID); err != nil {
			return fmt.Errorf("merge ingredient %d into %d: %w", merge.fromID, merge.toID, err)
		}
	}

	fmt.Printf("done: %d renamed, %d merged\n", len(plan.renames), len(plan.merges))
	return nil
}

type renameAction struct {
	id   uint
	from string
	to   string
}

type mergeAction struct {
	fromID   uint
	fromName string
	toID     uint
	toName   string
}

type fixPlan struct {
	renames []renameAction
	merges  []mergeAction
}

// planFixes walks the catalog and decides, per ingredient, whether its
// canonical name is free (rename) or already taken (merge into the holder).
// Already-canonical rows are processed first so they win as merge targets;
// ties go to the lowest id.
func planFixes(ingredients []models.Ingredient) fixPlan {
	ordered := make([]models.Ingredient, 0, len(ingredients))
	canonicalFirst := make([]models.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient.Name == services.CanonicalIngredientName(ingredient.Name) {
			canonicalFirst = append(canonicalFirst, ingredient)
		} else {
			ordered = append(ordered, ingredient)
		}
	}
	ordered = append(canonicalFirst, ordered...)

	plan := fixPlan{}
	holders := make(map[string]models.Ingredient, len(ordered))
	for _, ingredient := range ordered {
		canonical := services.CanonicalIngredientName(ingredient.Name)

		holder, taken := holders[canonical]
		if !taken {
			holders[canonical] = ingredient
			if ingredient.Name != canonical {
				plan.renames = append(plan.renames, renameAction{
					id:   ingredient.ID,
					from: ingredient.Name,
					to:   canonical,
				})
			}
			continue
		}

		if holder.ID == ingredient.ID {
			continue
		}
		plan.merges = append(plan.merges, mergeAction{
			fromID:   ingredient.ID,
			fromName: ingredient.Name,
			toID:     holder.ID,
			toName:   holder.Name,
		})
	}
	return plan
}
