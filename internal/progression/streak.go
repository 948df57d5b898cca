package progression

import "log"

// reconcileStreakLocked applies the load-time streak rules: a one-day
// gap keeps the streak alive, a two-day gap can be bridged by
// consuming a streak freeze, anything longer resets the streak.
// Returns true if the state was changed. Caller must hold the mutex.
func (s *Store) reconcileStreakLocked() bool {
	if s.state.LastPlayedDate == "" {
		return false
	}

	diff, err := daysBetween(s.state.LastPlayedDate, s.clock.Now())
	if err != nil {
		// Unparseable date: treat as a broken streak rather than failing the load
		log.Printf("Invalid lastPlayedDate %q for player %d, resetting streak", s.state.LastPlayedDate, s.playerID)
		s.state.Streak = 0
		s.state.LastPlayedDate = ""
		return true
	}

	if diff <= 1 {
		return false
	}
	if diff == 2 && s.state.Inventory.StreakFreeze > 0 {
		s.state.Inventory.StreakFreeze--
		return true
	}
	if s.state.Streak == 0 {
		return false
	}
	s.state.Streak = 0
	return true
}
