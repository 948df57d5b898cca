package models

// VocabWord is one vocabulary entry in the static content tables.
type VocabWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	Difficulty int    `json:"difficulty"`
	Topic      string `json:"topic"`
}

// Sentence is one entry for the sentence reordering game.
type Sentence struct {
	Sentence   string   `json:"sentence"`
	Words      []string `json:"words"`
	Difficulty int      `json:"difficulty"`
	Topic      string   `json:"topic"`
}

// Idiom is one idiom entry for the mixed drill.
type Idiom struct {
	Idiom   string `json:"idiom"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
	Origin  string `json:"origin"`
}

// DialogueOption is one selectable player response in a dialogue turn.
type DialogueOption struct {
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Response string `json:"response"`
}

// DialogueTurn is one step of a dialogue script: either a fixed line
// from a non-player speaker, or a set of player response options.
type DialogueTurn struct {
	Speaker string           `json:"speaker"`
	Text    string           `json:"text,omitempty"`
	Options []DialogueOption `json:"options,omitempty"`
}

// PlayerSpeaker marks a turn where the player chooses a response.
const PlayerSpeaker = "player"

// IsPlayerTurn reports whether the turn expects a player choice.
func (t DialogueTurn) IsPlayerTurn() bool {
	return t.Speaker == PlayerSpeaker
}

// DialogueScenario is a full branching-dialogue script.
type DialogueScenario struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Difficulty  int            `json:"difficulty"`
	Icon        string         `json:"icon"`
	Dialogue    []DialogueTurn `json:"dialogue"`
}
