package services

import (
	"math"
	"strconv"
	"strings"
)

const (
	BucketFreshProduce = "fruits-legumes"
	BucketGrocery      = "autres-produits"
)

// freshProduceNames matches ingredients sold at the greengrocer even when
// their category says otherwise (tubers, alliums, salads).
var freshProduceNames = []string{
	"pomme de terre",
	"carotte",
	"oignon",
	"ail",
	"poireau",
	"salade",
	"tomate",
	"courgette",
	"aubergine",
	"poivron",
	"chou",
	"navet",
	"radis",
	"céleri",
	"épinard",
	"scarolle",
}

// BucketFor classifies a shopping list line as fresh produce or grocery, from
// the ingredient name and category alone. Pure function: display layers can
// apply it anywhere and get the same split.
func BucketFor(name string, category string) string {
	loweredCategory := strings.ToLower(category)
	if strings.Contains(loweredCategory, "fruit") || strings.Contains(loweredCategory, "légume") {
		return BucketFreshProduce
	}
	loweredName := strings.ToLower(name)
	for _, keyword := range freshProduceNames {
		if strings.Contains(loweredName, keyword) {
			return BucketFreshProduce
		}
	}
	return BucketGrocery
}

// FormatQuantity renders a quantity with at most two decimals and no trailing
// zeros: 2.00 -> "2", 2.50 -> "2.5", 0.33 -> "0.33".
func FormatQuantity(quantity float64) string {
	rounded := roundQuantity(quantity)
	if rounded == math.Trunc(rounded) {
		return strconv.FormatInt(int64(rounded), 10)
	}
	formatted := strconv.FormatFloat(rounded, 'f', 2, 64)
	formatted = strings.TrimRight(formatted, "0")
	return strings.TrimRight(formatted, ".")
}

func roundQuantity(quantity float64) float64 {
	return math.Round(quantity*100) / 100
}
