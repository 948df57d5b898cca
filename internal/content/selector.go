package content

import (
	"math/rand"

	"englishquest/internal/models"
)

// OptionCount is the number of answer options in multiple-choice rounds
const OptionCount = 4

// Options builds a shuffled multiple-choice option set containing the
// correct answer exactly once. Distractors are sampled from the pool,
// deduplicated against each other and the correct answer, and padded
// up to OptionCount when the pool allows.
func Options(correct string, pool []string) []string {
	options := []string{correct}
	seen := map[string]bool{correct: true}

	candidates := make([]string, 0, len(pool))
	for _, p := range pool {
		if !seen[p] {
			seen[p] = true
			candidates = append(candidates, p)
		}
	}
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates {
		if len(options) >= OptionCount {
			break
		}
		options = append(options, c)
	}

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// DefinitionOptions builds options for a "pick the definition" round
// from the given word's definition and distractor definitions drawn
// from other words in the pool.
func DefinitionOptions(target models.VocabWord, pool []models.VocabWord) []string {
	distractors := make([]string, 0, len(pool))
	for _, w := range pool {
		if w.Word != target.Word {
			distractors = append(distractors, w.Definition)
		}
	}
	return Options(target.Definition, distractors)
}

// WordOptions builds options for a "pick the word" round from the
// target word and distractor words drawn from the pool.
func WordOptions(target models.VocabWord, pool []models.VocabWord) []string {
	distractors := make([]string, 0, len(pool))
	for _, w := range pool {
		if w.Word != target.Word {
			distractors = append(distractors, w.Word)
		}
	}
	return Options(target.Word, distractors)
}
