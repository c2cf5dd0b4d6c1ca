package engine

import (
	"context"
	"time"

	"petquest/internal/catalog"
)

// metric returns the stat an achievement condition is measured against.
func metric(c catalog.Condition, stats UserStats, ownedAccessories int) int {
	switch c {
	case catalog.ConditionCount:
		return stats.TotalCompleted
	case catalog.ConditionStreak:
		return stats.CurrentStreak
	case catalog.ConditionEarly:
		return stats.EarlyCompletions
	case catalog.ConditionWealth:
		return stats.TotalPointsEarned
	case catalog.ConditionCollection:
		return ownedAccessories
	default:
		return 0
	}
}

// checkAchievements unlocks every locked achievement whose metric has reached
// its threshold, then grants milestone pets for the resulting unlocked count.
// Unlocked achievements are never re-locked. st is modified in place.
func checkAchievements(st *State, now time.Time) (unlocked, pets []string) {
	count := 0
	for i := range st.Achievements {
		a := &st.Achievements[i]
		if a.Unlocked {
			count++
			continue
		}
		if metric(a.Condition, st.Stats, len(st.Accessories)) >= a.Threshold {
			at := now
			a.Unlocked = true
			a.UnlockedAt = &at
			unlocked = append(unlocked, a.ID)
			count++
		}
	}
	return unlocked, grantMilestonePets(st, count)
}

func grantMilestonePets(st *State, unlockedCount int) []string {
	var granted []string
	milestones := catalog.MilestonePets()
	for i, threshold := range catalog.MilestoneThresholds {
		if i >= len(milestones) || unlockedCount < threshold {
			continue
		}
		id := milestones[i].ID
		if contains(st.Pets, id) {
			continue
		}
		st.Pets = append(st.Pets, id)
		granted = append(granted, id)
	}
	return granted
}

// CheckAchievements re-runs achievement evaluation against the current state
// and persists anything it unlocked.
func (e *Engine) CheckAchievements(ctx context.Context) ([]string, []string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	next := e.st.clone()
	unlocked, pets := checkAchievements(next, now)
	if len(unlocked) == 0 && len(pets) == 0 {
		return nil, nil, nil
	}
	if err := e.commit(ctx, next, KeyAchievements, KeyPets); err != nil {
		return nil, nil, err
	}
	e.publishUnlocks(now, unlocked, pets)
	return unlocked, pets, nil
}

func (e *Engine) publishUnlocks(now time.Time, unlocked, pets []string) {
	if len(unlocked) > 0 {
		e.log.Info("achievements unlocked", "ids", unlocked)
		e.events.publish(Event{Kind: EventAchievements, At: now, IDs: unlocked})
	}
	if len(pets) > 0 {
		e.log.Info("milestone pets granted", "ids", pets)
		e.events.publish(Event{Kind: EventPetsGranted, At: now, IDs: pets})
	}
}
