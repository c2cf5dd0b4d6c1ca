// Package catalog holds the static reference tables: pets, accessories, themes,
// default categories and achievement definitions. Tables are immutable; callers
// get copies from the list functions and look single entries up by id.
package catalog

const (
	StarterPetID   = "starter_bear"
	DefaultThemeID = "default"

	// MilestoneCost marks pets that cannot be bought.
	MilestoneCost = 9999
)

// MilestoneThresholds are the cumulative unlocked-achievement counts that grant
// MilestonePets()[i].
var MilestoneThresholds = [...]int{5, 10, 15}

type index[T any] struct {
	items []T
	byID  map[string]int
}

func newIndex[T any](items []T, id func(T) string) index[T] {
	ix := index[T]{items: items, byID: make(map[string]int, len(items))}
	for i, it := range items {
		ix.byID[id(it)] = i
	}
	return ix
}

func (ix index[T]) lookup(id string) (T, bool) {
	i, ok := ix.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return ix.items[i], true
}

func (ix index[T]) list() []T {
	out := make([]T, len(ix.items))
	copy(out, ix.items)
	return out
}

var (
	shopPetIndex     = newIndex(shopPets, func(p Pet) string { return p.ID })
	allPetIndex      = newIndex(append(append([]Pet{starterPet}, shopPets...), milestonePets...), func(p Pet) string { return p.ID })
	accessoryIndex   = newIndex(accessories, func(a Accessory) string { return a.ID })
	themeIndex       = newIndex(themes, func(t Theme) string { return t.ID })
	achievementIndex = newIndex(achievements, func(a AchievementDef) string { return a.ID })
)

// LookupShopPet finds a pet that can be bought with points. Starter and
// milestone pets are not in the shop.
func LookupShopPet(id string) (Pet, bool) { return shopPetIndex.lookup(id) }

// LookupPet finds any known pet, including the starter and milestone pets.
func LookupPet(id string) (Pet, bool) { return allPetIndex.lookup(id) }

func LookupAccessory(id string) (Accessory, bool) { return accessoryIndex.lookup(id) }

func LookupTheme(id string) (Theme, bool) { return themeIndex.lookup(id) }

func LookupAchievement(id string) (AchievementDef, bool) { return achievementIndex.lookup(id) }

func StarterPet() Pet { return starterPet }

func ShopPets() []Pet { return shopPetIndex.list() }

func MilestonePets() []Pet {
	out := make([]Pet, len(milestonePets))
	copy(out, milestonePets)
	return out
}

func Accessories() []Accessory { return accessoryIndex.list() }

func Themes() []Theme { return themeIndex.list() }

// DefaultTheme is the free theme every user owns.
func DefaultTheme() Theme {
	t, _ := themeIndex.lookup(DefaultThemeID)
	return t
}

func Achievements() []AchievementDef { return achievementIndex.list() }

func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}
