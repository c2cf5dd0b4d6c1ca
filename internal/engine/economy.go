package engine

import (
	"context"
	"strings"

	"petquest/internal/catalog"
)

// purchase is the shared buy path. owned selects the ownership list on a state
// copy; recheck re-runs achievement evaluation after the purchase.
type purchase struct {
	kind    ItemKind
	id      string
	cost    int
	key     string
	owned   func(*State) *[]string
	recheck bool
}

func (e *Engine) buy(ctx context.Context, p purchase) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if contains(*p.owned(e.st), p.id) {
		return nil
	}
	if e.st.Points < p.cost {
		return PurchaseError{Kind: p.kind, ID: p.id, Cost: p.cost, Balance: e.st.Points, Err: ErrInsufficientFunds}
	}

	now := e.clock.Now()
	next := e.st.clone()
	next.Points -= p.cost
	list := p.owned(next)
	*list = append(*list, p.id)

	keys := []string{KeyPoints, p.key}
	var unlocked, pets []string
	if p.recheck {
		unlocked, pets = checkAchievements(next, now)
		keys = append(keys, KeyAchievements)
		if p.key != KeyPets {
			keys = append(keys, KeyPets)
		}
	}
	if err := e.commit(ctx, next, keys...); err != nil {
		return err
	}
	e.log.InfoContext(ctx, "item purchased", "kind", p.kind, "id", p.id, "cost", p.cost, "balance", next.Points)
	e.publishUnlocks(now, unlocked, pets)
	return nil
}

// UnlockPet buys a shop pet. Milestone pets are not sold.
func (e *Engine) UnlockPet(ctx context.Context, id string) error {
	pet, ok := catalog.LookupShopPet(id)
	if !ok {
		return PurchaseError{Kind: ItemPet, ID: id, Err: ErrUnknownItem}
	}
	return e.buy(ctx, purchase{
		kind: ItemPet, id: pet.ID, cost: pet.Cost, key: KeyPets,
		owned:   func(s *State) *[]string { return &s.Pets },
		recheck: true,
	})
}

func (e *Engine) BuyAccessory(ctx context.Context, id string) error {
	acc, ok := catalog.LookupAccessory(id)
	if !ok {
		return PurchaseError{Kind: ItemAccessory, ID: id, Err: ErrUnknownItem}
	}
	return e.buy(ctx, purchase{
		kind: ItemAccessory, id: acc.ID, cost: acc.Cost, key: KeyAccessories,
		owned:   func(s *State) *[]string { return &s.Accessories },
		recheck: true,
	})
}

func (e *Engine) BuyTheme(ctx context.Context, id string) error {
	theme, ok := catalog.LookupTheme(id)
	if !ok {
		return PurchaseError{Kind: ItemTheme, ID: id, Err: ErrUnknownItem}
	}
	return e.buy(ctx, purchase{
		kind: ItemTheme, id: theme.ID, cost: theme.Cost, key: KeyThemes,
		owned: func(s *State) *[]string { return &s.Themes },
	})
}

// The equip setters store the id as given; ownership is the caller's concern
// and readers fall back to defaults for ids that do not resolve.

func (e *Engine) SetActivePet(ctx context.Context, id string) error {
	return e.setField(ctx, KeyActivePet, func(s *State) { s.ActivePetID = strings.TrimSpace(id) })
}

// SetActiveAccessory equips one accessory, replacing any other regardless of
// slot. An empty id takes it off.
func (e *Engine) SetActiveAccessory(ctx context.Context, id string) error {
	return e.setField(ctx, KeyActiveAccessory, func(s *State) { s.ActiveAccessoryID = strings.TrimSpace(id) })
}

func (e *Engine) SetActiveTheme(ctx context.Context, id string) error {
	return e.setField(ctx, KeyActiveTheme, func(s *State) { s.ActiveThemeID = strings.TrimSpace(id) })
}

func (e *Engine) setField(ctx context.Context, key string, apply func(*State)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.st.clone()
	apply(next)
	return e.commit(ctx, next, key)
}
