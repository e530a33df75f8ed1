package services

import "strings"

// NormalizeIngredientName folds an ingredient name to its canonical form:
// lowercase, œ/æ ligatures expanded, whitespace collapsed, singular.
func NormalizeIngredientName(name string) string {
	folded := strings.ToLower(strings.TrimSpace(name))
	folded = strings.ReplaceAll(folded, "œ", "oe")
	folded = strings.ReplaceAll(folded, "æ", "ae")
	folded = strings.Join(strings.Fields(folded), " ")
	return SingularizeIngredientName(folded)
}

// singularExceptions covers plurals the trailing-s rule gets wrong: compound
// names, -aux plurals and words identical in both numbers.
var singularExceptions = map[string]string{
	"pommes de terre": "pomme de terre",
	"oeufs":           "oeuf",
	"haricots verts":  "haricot vert",
	"petits pois":     "petit pois",
	"olives noires":   "olive noire",
	"poireaux":        "poireau",
	"anchois":         "anchois",
	"champignons":     "champignon",
}

// SingularizeIngredientName applies the catalog's singularization heuristics.
func SingularizeIngredientName(name string) string {
	if singular, ok := singularExceptions[name]; ok {
		return singular
	}
	if strings.HasSuffix(name, "s") && len(name) > 3 {
		return strings.TrimSuffix(name, "s")
	}
	return name
}

// englishToFrench translates ingredient names imported from English recipe
// sites. Keys are canonical (normalized) forms.
var englishToFrench = map[string]string{
	// vegetables
	"tomato":      "tomate",
	"potato":      "pomme de terre",
	"carrot":      "carotte",
	"onion":       "oignon",
	"garlic":      "ail",
	"bell pepper": "poivron",
	"cucumber":    "concombre",
	"lettuce":     "laitue",
	"cabbage":     "chou",
	"mushroom":    "champignon",
	"zucchini":    "courgette",
	"eggplant":    "aubergine",
	"broccoli":    "brocoli",
	"cauliflower": "chou-fleur",
	"spinach":     "épinard",
	"celery":      "céleri",
	"leek":        "poireau",
	"pumpkin":     "citrouille",
	"squash":      "courge",
	"corn":        "maïs",
	"pea":         "petit pois",
	"green bean":  "haricot vert",
	// meat
	"chicken":     "poulet",
	"beef":        "bœuf",
	"pork":        "porc",
	"lamb":        "agneau",
	"turkey":      "dinde",
	"duck":        "canard",
	"ham":         "jambon",
	"sausage":     "saucisse",
	"ground beef": "bœuf haché",
	"minced meat": "viande hachée",
	// fish and seafood
	"fish":    "poisson",
	"salmon":  "saumon",
	"tuna":    "thon",
	"cod":     "cabillaud",
	"shrimp":  "crevette",
	"prawn":   "crevette",
	"lobster": "homard",
	"crab":    "crabe",
	"mussel":  "moule",
	"oyster":  "huître",
	// dairy
	"milk":    "lait",
	"butter":  "beurre",
	"cream":   "crème",
	"cheese":  "fromage",
	"yogurt":  "yaourt",
	"yoghurt": "yaourt",
	"egg":     "oeuf",
	// grains
	"rice":   "riz",
	"pasta":  "pâtes",
	"noodle": "nouilles",
	"bread":  "pain",
	"flour":  "farine",
	"wheat":  "blé",
	"oat":    "avoine",
	// fruit
	"apple":      "pomme",
	"banana":     "banane",
	"orange":     "orange",
	"lemon":      "citron",
	"lime":       "citron vert",
	"strawberry": "fraise",
	"peach":      "pêche",
	"pear":       "poire",
	"grape":      "raisin",
	"watermelon": "pastèque",
	"melon":      "melon",
	"cherry":     "cerise",
	"plum":       "prune",
	"apricot":    "abricot",
	"mango":      "mangue",
	"pineapple":  "ananas",
	"kiwi":       "kiwi",
	// herbs and spices
	"salt":         "sel",
	"black pepper": "poivre noir",
	"pepper":       "poivre",
	"paprika":      "paprika",
	"cumin":        "cumin",
	"coriander":    "coriandre",
	"parsley":      "persil",
	"basil":        "basilic",
	"thyme":        "thym",
	"rosemary":     "romarin",
	"oregano":      "origan",
	"mint":         "menthe",
	"dill":         "aneth",
	"sage":         "sauge",
	"bay leaf":     "feuille de laurier",
	"cinnamon":     "cannelle",
	"nutmeg":       "noix de muscade",
	"ginger":       "gingembre",
	"turmeric":     "curcuma",
	"curry":        "curry",
	"chili":        "piment",
	// pantry
	"oil":          "huile",
	"olive oil":    "huile d'olive",
	"vinegar":      "vinaigre",
	"sugar":        "sucre",
	"honey":        "miel",
	"mustard":      "moutarde",
	"mayonnaise":   "mayonnaise",
	"soy sauce":    "sauce soja",
	"tomato sauce": "sauce tomate",
	"stock":        "bouillon",
	"broth":        "bouillon",
	"water":        "eau",
	"wine":         "vin",
	"red wine":     "vin rouge",
	"white wine":   "vin blanc",
	"beer":         "bière",
}

// TranslateIngredientName maps an English ingredient name to its French
// equivalent, or returns the input unchanged when no translation is known.
func TranslateIngredientName(name string) string {
	normalized := NormalizeIngredientName(name)
	if french, ok := englishToFrench[normalized]; ok {
		return french
	}
	// English -es plurals singularize to a spurious trailing e
	// ("potatoes" -> "potatoe"); retry without it.
	if trimmed, found := strings.CutSuffix(normalized, "e"); found {
		if french, ok := englishToFrench[trimmed]; ok {
			return french
		}
	}
	return name
}

// CanonicalIngredientName is the full pipeline the catalog and the
// fix-ingredients command agree on: translate, then normalize.
func CanonicalIngredientName(name string) string {
	return NormalizeIngredientName(TranslateIngredientName(name))
}
