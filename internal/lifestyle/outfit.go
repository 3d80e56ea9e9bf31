package lifestyle

import (
	"math/rand"

	"github.com/weatherly/weatherly-golang/internal/models"
)

// Temperature bucket boundaries in °C.
const (
	coldBelow = 15.0
	warmBelow = 25.0
)

// CategoryForTemperature buckets a temperature into an image category.
// The "rainy" category is never chosen by temperature; it is only reachable
// through explicit curation.
func CategoryForTemperature(temp float64) string {
	if temp < coldBelow {
		return "cold"
	}
	if temp < warmBelow {
		return "warm"
	}
	return "hot"
}

// OutfitItem is one rendered piece of the suggested outfit.
type OutfitItem struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Outfit is a randomly assembled set of clothing plus accessories for the
// current temperature bucket. Selection is intentionally non-deterministic:
// re-requesting yields a different outfit.
type Outfit struct {
	Category    string       `json:"category"`
	Clothes     []OutfitItem `json:"clothes"`
	Accessories []OutfitItem `json:"accessories"`
}

// PickOutfit filters the catalog by temperature bucket and assembles
// 3-5 clothing items and up to 2 accessories via a uniform shuffle.
func PickOutfit(images []models.Image, temp float64) Outfit {
	category := CategoryForTemperature(temp)

	var clothes, accessories []models.Image
	for _, img := range images {
		if img.Category != category {
			continue
		}
		switch img.Type {
		case "clothing":
			clothes = append(clothes, img)
		case "accessory":
			accessories = append(accessories, img)
		}
	}

	clothingCount := 3 + rand.Intn(3)

	return Outfit{
		Category:    category,
		Clothes:     pickRandom(clothes, clothingCount),
		Accessories: pickRandom(accessories, 2),
	}
}

func pickRandom(items []models.Image, count int) []OutfitItem {
	shuffled := make([]models.Image, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}

	picked := make([]OutfitItem, 0, count)
	for _, img := range shuffled[:count] {
		picked = append(picked, OutfitItem{Name: img.ItemName, Image: img.URL})
	}
	return picked
}
