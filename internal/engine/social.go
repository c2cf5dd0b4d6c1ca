package engine

import (
	"context"

	"github.com/google/uuid"

	"petquest/internal/social"
)

// A friend scores on a completion when its roll exceeds this, a 40% chance.
const friendActivityRoll = 0.6

func (e *Engine) simulateFriendActivity(st *State) {
	for i := range st.Friends {
		if e.rnd.Float64() > friendActivityRoll {
			st.Friends[i].WeeklyScore++
			st.Friends[i].MonthlyScore++
		}
	}
}

// AddFriend adds the simulated friend derived from code. No other device is
// contacted; the same code always yields the same friend.
func (e *Engine) AddFriend(ctx context.Context, code string) (social.Friend, error) {
	clean := social.NormalizeCode(code)
	if clean == "" {
		return social.Friend{}, ErrEmptyCode
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if clean == e.st.UserCode {
		return social.Friend{}, ErrSelfCode
	}
	for _, f := range e.st.Friends {
		if f.Code == clean {
			return social.Friend{}, ErrDuplicateFriend
		}
	}

	f := social.Generate(clean)
	f.ID = uuid.NewString()
	next := e.st.clone()
	next.Friends = append(next.Friends, f)
	if err := e.commit(ctx, next, KeyFriends); err != nil {
		return social.Friend{}, err
	}
	e.log.InfoContext(ctx, "friend added", "code", clean, "name", f.Name)
	return f, nil
}

func (e *Engine) Friends() []social.Friend {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]social.Friend(nil), e.st.Friends...)
}

// Leaderboard ranks the user's live counts against friends for window.
func (e *Engine) Leaderboard(w social.Window) []social.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return social.Rank(e.st.Stats.WeeklyCompleted, e.st.Stats.MonthlyCompleted, e.st.Friends, w)
}
