package models

// Achievement is a static catalog entry. The catalog is fixed at build
// time; PlayerState.Achievements stores unlocked ids.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xpReward"`
}

// Achievement ids unlocked directly by a minigame rather than by the
// threshold rules.
const (
	AchievementPerfectGame = "perfect_game"
	AchievementSpeedDemon  = "speed_demon"
)

var achievementCatalog = []Achievement{
	{ID: "first_word", Name: "First Steps", Description: "Learn your first word", Icon: "🌱", XPReward: 50},
	{ID: "ten_words", Name: "Word Collector", Description: "Learn 10 words", Icon: "📚", XPReward: 100},
	{ID: "fifty_words", Name: "Vocabulary Builder", Description: "Learn 50 words", Icon: "🏆", XPReward: 250},
	{ID: "hundred_words", Name: "Word Master", Description: "Learn 100 words", Icon: "👑", XPReward: 500},
	{ID: "streak_3", Name: "On Fire", Description: "3 day streak", Icon: "🔥", XPReward: 75},
	{ID: "streak_7", Name: "Week Warrior", Description: "7 day streak", Icon: "⚡", XPReward: 200},
	{ID: "streak_30", Name: "Dedicated Learner", Description: "30 day streak", Icon: "💎", XPReward: 1000},
	{ID: AchievementPerfectGame, Name: "Perfectionist", Description: "Complete a game with no mistakes", Icon: "✨", XPReward: 150},
	{ID: AchievementSpeedDemon, Name: "Speed Demon", Description: "Answer 10 questions in under 30 seconds", Icon: "⚡", XPReward: 100},
}

// AchievementCatalog returns all achievement definitions.
func AchievementCatalog() []Achievement {
	return achievementCatalog
}

// AchievementByID looks up a catalog entry by id.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
