package catalog

// Slot is where an accessory sits on the pet. Only one accessory is worn at a
// time regardless of slot.
type Slot string

const (
	SlotHat     Slot = "hat"
	SlotGlasses Slot = "glasses"
	SlotNeck    Slot = "neck"
	SlotFace    Slot = "face"
)

type Accessory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slot Slot   `json:"slot" yaml:"slot"`
	Cost int    `json:"cost" yaml:"cost"`
}

// Theme carries the visual tokens a front end applies.
type Theme struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	PrimaryColor    string `json:"primaryColor" yaml:"primary_color"`
	SecondaryColor  string `json:"secondaryColor" yaml:"secondary_color"`
	BackgroundColor string `json:"backgroundColor" yaml:"background_color"`
	Gradient        string `json:"gradient" yaml:"gradient"`
	Cost            int    `json:"cost" yaml:"cost"`
}

type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

var accessories = []Accessory{
	{ID: "acc_flower", Name: "Pretty Flower", Slot: SlotHat, Cost: 50},
	{ID: "acc_glasses_nerd", Name: "Smart Glasses", Slot: SlotGlasses, Cost: 100},
	{ID: "acc_bow_head", Name: "Pink Ribbon", Slot: SlotHat, Cost: 100},
	{ID: "acc_bow_tie", Name: "Red Bowtie", Slot: SlotNeck, Cost: 120},
	{ID: "acc_mustache", Name: "Fancy Stache", Slot: SlotFace, Cost: 120},
	{ID: "acc_glasses_3d", Name: "3D Glasses", Slot: SlotGlasses, Cost: 150},
	{ID: "acc_clown_nose", Name: "Clown Nose", Slot: SlotFace, Cost: 150},
	{ID: "acc_hat_party", Name: "Party Hat", Slot: SlotHat, Cost: 200},
	{ID: "acc_scarf", Name: "Cozy Scarf", Slot: SlotNeck, Cost: 200},
	{ID: "acc_eyepatch", Name: "Eye Patch", Slot: SlotGlasses, Cost: 220},
	{ID: "acc_hat_santa", Name: "Holiday Hat", Slot: SlotHat, Cost: 250},
	{ID: "acc_glasses_sun", Name: "Sunglasses", Slot: SlotGlasses, Cost: 250},
	{ID: "acc_hat_chef", Name: "Chef Hat", Slot: SlotHat, Cost: 280},
	{ID: "acc_hat_cowboy", Name: "Cowboy Hat", Slot: SlotHat, Cost: 300},
	{ID: "acc_ears_bunny", Name: "Bunny Ears", Slot: SlotHat, Cost: 300},
	{ID: "acc_headphones", Name: "Headphones", Slot: SlotHat, Cost: 350},
	{ID: "acc_beard", Name: "Grey Beard", Slot: SlotFace, Cost: 350},
	{ID: "acc_monocle", Name: "The Monocle", Slot: SlotGlasses, Cost: 400},
	{ID: "acc_pacifier", Name: "Baby Pacifier", Slot: SlotFace, Cost: 400},
	{ID: "acc_hat_sombrero", Name: "Sombrero", Slot: SlotHat, Cost: 450},
	{ID: "acc_hat_top", Name: "Gentleman Hat", Slot: SlotHat, Cost: 500},
	{ID: "acc_hat_pirate", Name: "Pirate Hat", Slot: SlotHat, Cost: 500},
	{ID: "acc_mask_medical", Name: "Face Mask", Slot: SlotFace, Cost: 500},
	{ID: "acc_hat_viking", Name: "Viking Helm", Slot: SlotHat, Cost: 550},
	{ID: "acc_pipe", Name: "Sherlock Pipe", Slot: SlotFace, Cost: 600},
	{ID: "acc_hat_wizard", Name: "Wizard Hat", Slot: SlotHat, Cost: 700},
	{ID: "acc_headband_ninja", Name: "Ninja Band", Slot: SlotHat, Cost: 750},
	{ID: "acc_mask_hero", Name: "Hero Mask", Slot: SlotGlasses, Cost: 800},
	{ID: "acc_glasses_vr", Name: "VR Headset", Slot: SlotGlasses, Cost: 850},
	{ID: "acc_halo", Name: "Angel Halo", Slot: SlotHat, Cost: 900},
	{ID: "acc_horns", Name: "Devil Horns", Slot: SlotHat, Cost: 900},
	{ID: "acc_chain_gold", Name: "Gold Chain", Slot: SlotNeck, Cost: 950},
	{ID: "acc_hat_crown", Name: "Royal Crown", Slot: SlotHat, Cost: 1000},
}

var themes = []Theme{
	{ID: DefaultThemeID, Name: "Ocean", PrimaryColor: "bg-indigo-600", SecondaryColor: "bg-indigo-100", BackgroundColor: "bg-gray-50", Gradient: "from-indigo-500 to-purple-600", Cost: 0},
	{ID: "forest", Name: "Forest", PrimaryColor: "bg-emerald-600", SecondaryColor: "bg-emerald-100", BackgroundColor: "bg-green-50", Gradient: "from-emerald-500 to-teal-600", Cost: 200},
	{ID: "candy", Name: "Candy", PrimaryColor: "bg-pink-500", SecondaryColor: "bg-pink-100", BackgroundColor: "bg-pink-50", Gradient: "from-pink-400 to-rose-400", Cost: 200},
	{ID: "sunset", Name: "Sunset", PrimaryColor: "bg-orange-500", SecondaryColor: "bg-orange-100", BackgroundColor: "bg-orange-50", Gradient: "from-orange-400 to-red-500", Cost: 300},
	{ID: "midnight", Name: "Midnight", PrimaryColor: "bg-slate-800", SecondaryColor: "bg-slate-200", BackgroundColor: "bg-slate-50", Gradient: "from-slate-700 to-slate-900", Cost: 500},
}

var defaultCategories = []Category{
	{ID: "work", Name: "Work", Color: "bg-blue-500"},
	{ID: "personal", Name: "Personal", Color: "bg-green-500"},
	{ID: "health", Name: "Health", Color: "bg-red-500"},
	{ID: "learning", Name: "Learning", Color: "bg-yellow-500"},
}
