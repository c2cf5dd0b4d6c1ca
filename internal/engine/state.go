package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"petquest/internal/catalog"
	"petquest/internal/social"
	"petquest/internal/storage"
)

// Storage keys, one per state slice.
const (
	KeyPoints          = "motivi_points"
	KeyTasks           = "motivi_tasks"
	KeyPets            = "motivi_pets"
	KeyActivePet       = "motivi_active_pet"
	KeyAccessories     = "motivi_accessories"
	KeyActiveAccessory = "motivi_active_accessory"
	KeyThemes          = "motivi_themes"
	KeyActiveTheme     = "motivi_active_theme"
	KeyCategories      = "motivi_categories"
	KeyAchievements    = "motivi_achievements"
	KeyStats           = "motivi_stats"
	KeyFriends         = "motivi_friends"
	KeyUserCode        = "motivi_user_code"
)

// AllKeys lists every key the engine owns.
var AllKeys = []string{
	KeyPoints, KeyTasks, KeyPets, KeyActivePet, KeyAccessories, KeyActiveAccessory,
	KeyThemes, KeyActiveTheme, KeyCategories, KeyAchievements, KeyStats, KeyFriends, KeyUserCode,
}

const StartingPoints = 150

func defaultState() *State {
	return &State{
		Points:        StartingPoints,
		Tasks:         []Task{},
		Pets:          []string{catalog.StarterPetID},
		ActivePetID:   catalog.StarterPetID,
		Accessories:   []string{},
		Themes:        []string{catalog.DefaultThemeID},
		ActiveThemeID: catalog.DefaultThemeID,
		Categories:    catalog.DefaultCategories(),
		Achievements:  lockedAchievements(),
		Friends:       []social.Friend{},
	}
}

func lockedAchievements() []Achievement {
	defs := catalog.Achievements()
	out := make([]Achievement, len(defs))
	for i, d := range defs {
		out[i] = Achievement{AchievementDef: d}
	}
	return out
}

// savedAchievement is the persisted unlock state; definitions always come
// from the catalog.
type savedAchievement struct {
	ID         string     `json:"id"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// reconcileAchievements merges saved flags onto the current definitions by id.
// Unknown saved ids are dropped and new definitions start locked.
func reconcileAchievements(saved []savedAchievement) []Achievement {
	byID := make(map[string]savedAchievement, len(saved))
	for _, s := range saved {
		byID[s.ID] = s
	}
	out := lockedAchievements()
	for i := range out {
		if s, ok := byID[out[i].ID]; ok {
			out[i].Unlocked = s.Unlocked
			out[i].UnlockedAt = s.UnlockedAt
		}
	}
	return out
}

// savedPet is the persisted shape of an owned pet. Only the id is read back.
type savedPet struct {
	catalog.Pet
	Unlocked bool `json:"unlocked"`
}

// loadResult reports which keys were absent or unreadable and fell back to defaults.
type loadResult struct {
	state     *State
	defaulted []string
}

func loadState(ctx context.Context, kv storage.KV, log *slog.Logger) (*loadResult, error) {
	st := defaultState()
	res := &loadResult{state: st}

	for _, key := range AllKeys {
		raw, ok, err := kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", key, err)
		}
		if !ok {
			res.defaulted = append(res.defaulted, key)
			continue
		}
		if err := decodeKey(st, key, raw); err != nil {
			log.WarnContext(ctx, "stored value unreadable, using default", "key", key, "error", err)
			res.defaulted = append(res.defaulted, key)
		}
	}

	if st.UserCode == "" {
		res.defaulted = appendMissing(res.defaulted, KeyUserCode)
	}
	return res, nil
}

func appendMissing(keys []string, key string) []string {
	if contains(keys, key) {
		return keys
	}
	return append(keys, key)
}

// decodeKey overwrites the slice for key only when raw decodes cleanly.
func decodeKey(st *State, key string, raw []byte) error {
	switch key {
	case KeyPoints:
		n, err := strconv.Atoi(string(raw))
		if err != nil {
			return err
		}
		st.Points = n
	case KeyTasks:
		var v []Task
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v == nil {
			v = []Task{}
		}
		for i := range v {
			if !v[i].Completed {
				v[i].CompletedAt, v[i].PointsEarned = nil, nil
			}
		}
		st.Tasks = v
	case KeyPets:
		var v []savedPet
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		ids := []string{}
		for _, p := range v {
			if p.ID != "" && !contains(ids, p.ID) {
				ids = append(ids, p.ID)
			}
		}
		if !contains(ids, catalog.StarterPetID) {
			ids = append([]string{catalog.StarterPetID}, ids...)
		}
		st.Pets = ids
	case KeyActivePet:
		if s := string(raw); s != "" {
			st.ActivePetID = s
		}
	case KeyAccessories:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v == nil {
			v = []string{}
		}
		st.Accessories = v
	case KeyActiveAccessory:
		st.ActiveAccessoryID = string(raw)
	case KeyThemes:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if !contains(v, catalog.DefaultThemeID) {
			v = append([]string{catalog.DefaultThemeID}, v...)
		}
		st.Themes = v
	case KeyActiveTheme:
		if s := string(raw); s != "" {
			st.ActiveThemeID = s
		}
	case KeyCategories:
		var v []catalog.Category
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v == nil {
			v = []catalog.Category{}
		}
		st.Categories = v
	case KeyAchievements:
		var v []savedAchievement
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		st.Achievements = reconcileAchievements(v)
	case KeyStats:
		var v UserStats
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		st.Stats = v
	case KeyFriends:
		var v []social.Friend
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v == nil {
			v = []social.Friend{}
		}
		st.Friends = v
	case KeyUserCode:
		st.UserCode = string(raw)
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func encodeKey(st *State, key string) ([]byte, error) {
	switch key {
	case KeyPoints:
		return []byte(strconv.Itoa(st.Points)), nil
	case KeyTasks:
		return json.Marshal(st.Tasks)
	case KeyPets:
		out := make([]savedPet, 0, len(st.Pets))
		for _, id := range st.Pets {
			p, ok := catalog.LookupPet(id)
			if !ok {
				p = catalog.Pet{ID: id}
			}
			out = append(out, savedPet{Pet: p, Unlocked: true})
		}
		return json.Marshal(out)
	case KeyActivePet:
		return []byte(st.ActivePetID), nil
	case KeyAccessories:
		return json.Marshal(st.Accessories)
	case KeyActiveAccessory:
		return []byte(st.ActiveAccessoryID), nil
	case KeyThemes:
		return json.Marshal(st.Themes)
	case KeyActiveTheme:
		return []byte(st.ActiveThemeID), nil
	case KeyCategories:
		return json.Marshal(st.Categories)
	case KeyAchievements:
		out := make([]savedAchievement, len(st.Achievements))
		for i, a := range st.Achievements {
			out[i] = savedAchievement{ID: a.ID, Unlocked: a.Unlocked, UnlockedAt: a.UnlockedAt}
		}
		return json.Marshal(out)
	case KeyStats:
		return json.Marshal(st.Stats)
	case KeyFriends:
		return json.Marshal(st.Friends)
	case KeyUserCode:
		return []byte(st.UserCode), nil
	default:
		return nil, fmt.Errorf("unknown key %q", key)
	}
}

func encodeKeys(st *State, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		b, err := encodeKey(st, k)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		out[k] = b
	}
	return out, nil
}
