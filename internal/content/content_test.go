package content

import (
	"testing"

	"englishquest/internal/models"
)

func TestTopicsStable(t *testing.T) {
	topics := Topics()
	if len(topics) != 6 {
		t.Fatalf("Topics() returned %d topics, want 6", len(topics))
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] >= topics[i] {
			t.Errorf("topics not sorted: %q before %q", topics[i-1], topics[i])
		}
	}
}

func TestWordsByDifficulty(t *testing.T) {
	for level := 1; level <= 3; level++ {
		words := WordsByDifficulty(level)
		if len(words) == 0 {
			t.Errorf("no words at difficulty %d", level)
		}
		for _, w := range words {
			if w.Difficulty != level {
				t.Errorf("word %q has difficulty %d, want %d", w.Word, w.Difficulty, level)
			}
		}
	}
}

func TestRandomWordsNoRepeats(t *testing.T) {
	words := RandomWords(10, 0)
	if len(words) != 10 {
		t.Fatalf("RandomWords(10, 0) returned %d words", len(words))
	}
	seen := map[string]bool{}
	for _, w := range words {
		if seen[w.Word] {
			t.Errorf("word %q repeated in selection", w.Word)
		}
		seen[w.Word] = true
	}
}

func TestRandomWordsDifficultyNoBackfill(t *testing.T) {
	// Far more words requested than exist at difficulty 3; the result
	// must stay within the filter rather than borrow easier words.
	words := RandomWords(100, 3)
	if len(words) == 0 || len(words) >= len(AllWords()) {
		t.Fatalf("unexpected selection size %d", len(words))
	}
	for _, w := range words {
		if w.Difficulty != 3 {
			t.Errorf("word %q has difficulty %d, want 3 only", w.Word, w.Difficulty)
		}
	}
}

func TestOptionsContainCorrectExactlyOnce(t *testing.T) {
	pool := []string{"alpha", "beta", "gamma", "delta", "correct", "beta"}
	for i := 0; i < 20; i++ {
		options := Options("correct", pool)
		if len(options) != OptionCount {
			t.Fatalf("Options() returned %d options, want %d", len(options), OptionCount)
		}
		count := 0
		seen := map[string]bool{}
		for _, o := range options {
			if o == "correct" {
				count++
			}
			if seen[o] {
				t.Errorf("duplicate option %q", o)
			}
			seen[o] = true
		}
		if count != 1 {
			t.Errorf("correct answer appears %d times, want 1", count)
		}
	}
}

func TestOptionsSmallPool(t *testing.T) {
	options := Options("only", []string{"other"})
	if len(options) != 2 {
		t.Fatalf("Options() with tiny pool returned %d options, want 2", len(options))
	}
}

func TestDefinitionOptions(t *testing.T) {
	pool := AllWords()
	target := pool[0]
	options := DefinitionOptions(target, pool)
	if len(options) != OptionCount {
		t.Fatalf("DefinitionOptions() returned %d options", len(options))
	}
	found := false
	for _, o := range options {
		if o == target.Definition {
			found = true
		}
	}
	if !found {
		t.Error("correct definition missing from options")
	}
}

func TestScenarioLookup(t *testing.T) {
	s := ScenarioByID("restaurant")
	if s == nil {
		t.Fatal("ScenarioByID(restaurant) returned nil")
	}
	if s.Title != "At a Restaurant" {
		t.Errorf("Title = %q", s.Title)
	}
	if ScenarioByID("spaceship") != nil {
		t.Error("unknown scenario should return nil")
	}

	// Every player turn has exactly one set of options with at least
	// one correct choice; NPC turns carry text only.
	for _, sc := range Scenarios() {
		for i, turn := range sc.Dialogue {
			if turn.IsPlayerTurn() {
				if len(turn.Options) == 0 {
					t.Errorf("%s turn %d: player turn with no options", sc.ID, i)
				}
				hasCorrect := false
				for _, o := range turn.Options {
					if o.Correct {
						hasCorrect = true
					}
				}
				if !hasCorrect {
					t.Errorf("%s turn %d: no correct option", sc.ID, i)
				}
			} else if turn.Text == "" {
				t.Errorf("%s turn %d: NPC turn with empty text", sc.ID, i)
			}
		}
	}
}

func TestSentenceWordsMatchSentence(t *testing.T) {
	for _, s := range AllSentences() {
		if len(s.Words) < 2 {
			t.Errorf("sentence %q has %d words", s.Sentence, len(s.Words))
		}
		if s.Difficulty < 1 || s.Difficulty > 3 {
			t.Errorf("sentence %q has difficulty %d", s.Sentence, s.Difficulty)
		}
	}
	if len(SentencesByDifficulty(models.DifficultyMedium.Level())) != 5 {
		t.Errorf("intermediate sentences = %d, want 5", len(SentencesByDifficulty(2)))
	}
}
