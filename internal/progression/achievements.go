package progression

import (
	"englishquest/internal/models"
)

// achievementRule pairs a catalog id with its unlock condition.
// Conditions read the player state only; achievements tied to
// session-local data (perfect game, speed run) have no rule here and
// are unlocked explicitly by the session that observes the condition.
type achievementRule struct {
	id        string
	satisfied func(*models.PlayerState) bool
}

var achievementRules = []achievementRule{
	{"first_word", func(s *models.PlayerState) bool { return len(s.WordsLearned) >= 1 }},
	{"ten_words", func(s *models.PlayerState) bool { return len(s.WordsLearned) >= 10 }},
	{"fifty_words", func(s *models.PlayerState) bool { return len(s.WordsLearned) >= 50 }},
	{"hundred_words", func(s *models.PlayerState) bool { return len(s.WordsLearned) >= 100 }},
	{"streak_3", func(s *models.PlayerState) bool { return s.Streak >= 3 }},
	{"streak_7", func(s *models.PlayerState) bool { return s.Streak >= 7 }},
	{"streak_30", func(s *models.PlayerState) bool { return s.Streak >= 30 }},
}

// evaluateAchievementsLocked unlocks every rule whose condition is
// newly satisfied, granting the XP reward together with the id so an
// unlock is never half-applied. Re-running with no state change is a
// no-op. Caller must hold the store mutex.
func (s *Store) evaluateAchievementsLocked() []string {
	var unlocked []string
	for _, rule := range achievementRules {
		if s.state.HasAchievement(rule.id) || !rule.satisfied(s.state) {
			continue
		}
		ach, ok := models.AchievementByID(rule.id)
		if !ok {
			continue
		}
		s.state.Achievements = append(s.state.Achievements, rule.id)
		s.state.XP += ach.XPReward
		unlocked = append(unlocked, rule.id)
	}
	if len(unlocked) > 0 {
		s.state.RecalculateLevel()
	}
	return unlocked
}
