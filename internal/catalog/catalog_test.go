package catalog

import "testing"

func TestLookupsFindEveryEntry(t *testing.T) {
	for _, p := range ShopPets() {
		if _, ok := LookupShopPet(p.ID); !ok {
			t.Fatalf("LookupShopPet(%q) not found", p.ID)
		}
		if _, ok := LookupPet(p.ID); !ok {
			t.Fatalf("LookupPet(%q) not found", p.ID)
		}
	}
	for _, a := range Accessories() {
		if _, ok := LookupAccessory(a.ID); !ok {
			t.Fatalf("LookupAccessory(%q) not found", a.ID)
		}
	}
	for _, th := range Themes() {
		if _, ok := LookupTheme(th.ID); !ok {
			t.Fatalf("LookupTheme(%q) not found", th.ID)
		}
	}
	for _, a := range Achievements() {
		if _, ok := LookupAchievement(a.ID); !ok {
			t.Fatalf("LookupAchievement(%q) not found", a.ID)
		}
	}
	if _, ok := LookupAccessory("nope"); ok {
		t.Fatalf("unknown accessory reported as found")
	}
}

func TestMilestonePetsAreNotForSale(t *testing.T) {
	for _, p := range MilestonePets() {
		if _, ok := LookupShopPet(p.ID); ok {
			t.Fatalf("milestone pet %q is in the shop", p.ID)
		}
		if _, ok := LookupPet(p.ID); !ok {
			t.Fatalf("milestone pet %q not resolvable", p.ID)
		}
		if p.Cost != MilestoneCost || !p.IsSpecial {
			t.Fatalf("milestone pet %q cost=%d special=%v", p.ID, p.Cost, p.IsSpecial)
		}
	}
	if len(MilestonePets()) != len(MilestoneThresholds) {
		t.Fatalf("milestone pets=%d, thresholds=%d", len(MilestonePets()), len(MilestoneThresholds))
	}
	if _, ok := LookupShopPet(StarterPetID); ok {
		t.Fatalf("starter pet should not be for sale")
	}
}

func TestEnoughAchievementsForEveryMilestone(t *testing.T) {
	last := MilestoneThresholds[len(MilestoneThresholds)-1]
	if got := len(Achievements()); got < last {
		t.Fatalf("achievements=%d, need at least %d", got, last)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Achievements() {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
	seen = map[string]bool{}
	for _, a := range Accessories() {
		if seen[a.ID] {
			t.Fatalf("duplicate accessory id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestListsAreCopies(t *testing.T) {
	pets := ShopPets()
	pets[0].Cost = -1
	if p, _ := LookupShopPet(pets[0].ID); p.Cost == -1 {
		t.Fatalf("mutating ShopPets() leaked into the catalog")
	}
	if DefaultTheme().Cost != 0 {
		t.Fatalf("default theme must be free")
	}
}
