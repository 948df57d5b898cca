package content

import (
	"math/rand"
	"slices"

	"englishquest/internal/models"
)

// AllWords returns every vocabulary word across all topics
func AllWords() []models.VocabWord {
	var all []models.VocabWord
	for _, topic := range Topics() {
		all = append(all, vocabulary[topic]...)
	}
	return all
}

// Topics returns the available vocabulary topics in stable order
func Topics() []string {
	topics := make([]string, 0, len(vocabulary))
	for topic := range vocabulary {
		topics = append(topics, topic)
	}
	slices.Sort(topics)
	return topics
}

// WordsByTopic returns the words for a topic, or nil for an unknown topic
func WordsByTopic(topic string) []models.VocabWord {
	return slices.Clone(vocabulary[topic])
}

// WordsByDifficulty filters the full pool by difficulty level
func WordsByDifficulty(level int) []models.VocabWord {
	var out []models.VocabWord
	for _, w := range AllWords() {
		if w.Difficulty == level {
			out = append(out, w)
		}
	}
	return out
}

// RandomWords picks up to count words, filtered by difficulty when
// level > 0. When no words match the filter the result is simply
// shorter; the pool never backfills across difficulty boundaries.
func RandomWords(count, level int) []models.VocabWord {
	var pool []models.VocabWord
	if level > 0 {
		pool = WordsByDifficulty(level)
	} else {
		pool = AllWords()
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// AllSentences returns every scramble sentence
func AllSentences() []models.Sentence {
	return slices.Clone(sentences)
}

// SentencesByDifficulty filters sentences by difficulty level
func SentencesByDifficulty(level int) []models.Sentence {
	var out []models.Sentence
	for _, s := range sentences {
		if s.Difficulty == level {
			out = append(out, s)
		}
	}
	return out
}

// RandomSentences picks up to count sentences, filtered by difficulty
// when level > 0.
func RandomSentences(count, level int) []models.Sentence {
	var pool []models.Sentence
	if level > 0 {
		pool = SentencesByDifficulty(level)
	} else {
		pool = AllSentences()
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// AllIdioms returns every idiom
func AllIdioms() []models.Idiom {
	return slices.Clone(idioms)
}

// RandomIdioms picks up to count idioms
func RandomIdioms(count int) []models.Idiom {
	pool := AllIdioms()
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// Scenarios returns all dialogue scenarios
func Scenarios() []models.DialogueScenario {
	return slices.Clone(dialogueScenarios)
}

// ScenarioByID looks up a dialogue scenario, returning nil when absent
func ScenarioByID(id string) *models.DialogueScenario {
	for i := range dialogueScenarios {
		if dialogueScenarios[i].ID == id {
			return &dialogueScenarios[i]
		}
	}
	return nil
}

// ScenariosByDifficulty filters dialogue scenarios by difficulty level
func ScenariosByDifficulty(level int) []models.DialogueScenario {
	var out []models.DialogueScenario
	for _, s := range dialogueScenarios {
		if s.Difficulty == level {
			out = append(out, s)
		}
	}
	return out
}
