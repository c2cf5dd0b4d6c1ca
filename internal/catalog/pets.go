package catalog

type PetType string

const (
	PetBear    PetType = "bear"
	PetCat     PetType = "cat"
	PetBunny   PetType = "bunny"
	PetFox     PetType = "fox"
	PetPanda   PetType = "panda"
	PetAxolotl PetType = "axolotl"
	PetDog     PetType = "dog"
	PetKoala   PetType = "koala"
	PetPig     PetType = "pig"
	PetFrog    PetType = "frog"
	PetPenguin PetType = "penguin"
	PetRaccoon PetType = "raccoon"
	PetTiger   PetType = "tiger"
	PetLion    PetType = "lion"
	PetHamster PetType = "hamster"
	PetOwl     PetType = "owl"
)

type Pet struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Type           PetType `json:"type" yaml:"type"`
	Color          string  `json:"color" yaml:"color"`
	SecondaryColor string  `json:"secondaryColor,omitempty" yaml:"secondary_color,omitempty"`
	Cost           int     `json:"cost" yaml:"cost"`
	IsSpecial      bool    `json:"isSpecial,omitempty" yaml:"is_special,omitempty"`
}

var starterPet = Pet{ID: StarterPetID, Name: "Coco", Type: PetBear, Color: "#a0887e", SecondaryColor: "#5c4d46", Cost: 0}

var milestonePets = []Pet{
	{ID: "reward_gold_bear", Name: "Midas", Type: PetBear, Color: "#fbbf24", SecondaryColor: "#d97706", Cost: MilestoneCost, IsSpecial: true},
	{ID: "reward_diamond_cat", Name: "Sparkle", Type: PetCat, Color: "#e0f2fe", SecondaryColor: "#7dd3fc", Cost: MilestoneCost, IsSpecial: true},
	{ID: "reward_dark_fox", Name: "Shadow", Type: PetFox, Color: "#1f2937", SecondaryColor: "#000000", Cost: MilestoneCost, IsSpecial: true},
}

var shopPets = []Pet{
	// Basic tier
	{ID: "cat_pink", Name: "Mochi", Type: PetCat, Color: "#fca5a5", SecondaryColor: "#fee2e2", Cost: 200},
	{ID: "bear_polar", Name: "Snow", Type: PetBear, Color: "#f3f4f6", SecondaryColor: "#e5e7eb", Cost: 250},
	{ID: "bear_gold", Name: "Honey", Type: PetBear, Color: "#fcd34d", SecondaryColor: "#fef3c7", Cost: 250},
	{ID: "bunny_blue", Name: "Sky", Type: PetBunny, Color: "#93c5fd", SecondaryColor: "#dbeafe", Cost: 300},
	{ID: "bunny_green", Name: "Sprout", Type: PetBunny, Color: "#86efac", SecondaryColor: "#bbf7d0", Cost: 300},
	{ID: "dog_brown", Name: "Barky", Type: PetDog, Color: "#854d0e", SecondaryColor: "#a16207", Cost: 350},
	{ID: "cat_black", Name: "Luna", Type: PetCat, Color: "#374151", SecondaryColor: "#1f2937", Cost: 350},
	{ID: "cat_purple", Name: "Mystic", Type: PetCat, Color: "#d8b4fe", SecondaryColor: "#f3e8ff", Cost: 350},
	{ID: "pig_pink", Name: "Oink", Type: PetPig, Color: "#fda4af", SecondaryColor: "#fecdd3", Cost: 380},
	{ID: "panda_bw", Name: "Bamboo", Type: PetPanda, Color: "#ffffff", SecondaryColor: "#1f2937", Cost: 400},

	// Exotic tier
	{ID: "fox_orange", Name: "Rusty", Type: PetFox, Color: "#fb923c", SecondaryColor: "#fff7ed", Cost: 450},
	{ID: "axolotl_pink", Name: "Bubble", Type: PetAxolotl, Color: "#f9a8d4", SecondaryColor: "#f472b6", Cost: 500},
	{ID: "frog_green", Name: "Hops", Type: PetFrog, Color: "#4ade80", SecondaryColor: "#22c55e", Cost: 550},
	{ID: "penguin_blue", Name: "Pippin", Type: PetPenguin, Color: "#3b82f6", SecondaryColor: "#fff", Cost: 600},
	{ID: "raccoon_grey", Name: "Bandit", Type: PetRaccoon, Color: "#9ca3af", SecondaryColor: "#4b5563", Cost: 650},
	{ID: "hamster_gold", Name: "Nibbles", Type: PetHamster, Color: "#fde047", SecondaryColor: "#fca5a5", Cost: 700},

	// Premium tier
	{ID: "koala_grey", Name: "Eukie", Type: PetKoala, Color: "#94a3b8", SecondaryColor: "#64748b", Cost: 800},
	{ID: "owl_brown", Name: "Wisdom", Type: PetOwl, Color: "#78350f", SecondaryColor: "#92400e", Cost: 850},
	{ID: "tiger_orange", Name: "Stripes", Type: PetTiger, Color: "#f97316", SecondaryColor: "#000", Cost: 950},
	{ID: "lion_gold", Name: "Simba", Type: PetLion, Color: "#eab308", SecondaryColor: "#ca8a04", Cost: 1000},
}
