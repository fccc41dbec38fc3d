package game

import (
	"encoding/json"
	"fmt"
)

// Winner is the generator's terminal marker for a pile.
type Winner byte

const (
	NoWinner    Winner = 'n'
	HumanWinner Winner = 'h'
	BotWinner   Winner = 'b'
)

func (w Winner) String() string {
	return string(w)
}

func (w Winner) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(w))
}

func (w *Winner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) != 1 {
		return fmt.Errorf("unknown winner %q", s)
	}
	switch v := Winner(s[0]); v {
	case NoWinner, HumanWinner, BotWinner:
		*w = v
		return nil
	}
	return fmt.Errorf("unknown winner %q", s)
}

// Outcome marks a graph node as terminal or not.
type Outcome int

const (
	Undetermined Outcome = iota // not terminal, value unknown yet
	HumanWon                    // terminal win
	NoResolution                // dead end: no path to a win
)

func (o Outcome) String() string {
	switch o {
	case Undetermined:
		return "undetermined"
	case HumanWon:
		return "human-won"
	case NoResolution:
		return "no-resolution"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// OutcomeOf maps a generator winner marker to a node outcome. A pile the bot
// has won can never lead to a human win, so it is a dead end.
func OutcomeOf(w Winner) Outcome {
	switch w {
	case HumanWinner:
		return HumanWon
	case BotWinner:
		return NoResolution
	default:
		return Undetermined
	}
}
