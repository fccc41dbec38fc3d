package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"handy/game"
	"handy/meta"
	"os"
	"path/filepath"
)

var ErrInvalidEval = errors.New("invalid evaluation")

// Eval is a labeled evaluation: either a win in Distance moves or a loss.
type Eval struct {
	Win      bool
	Distance int
}

// Score is the training target of an evaluation. Losses score LOSS_SCORE.
func (e Eval) Score() float32 {
	if !e.Win {
		return meta.LOSS_SCORE
	}
	return float32(e.Distance)
}

func (e *Eval) UnmarshalJSON(data []byte) error {
	var loss string
	if err := json.Unmarshal(data, &loss); err == nil {
		if loss != "Loss" {
			return fmt.Errorf("%w: %q", ErrInvalidEval, loss)
		}
		*e = Eval{}
		return nil
	}

	var win struct {
		Win *int `json:"Win"`
	}
	if err := json.Unmarshal(data, &win); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEval, err)
	}
	if win.Win == nil {
		return fmt.Errorf("%w: %s", ErrInvalidEval, data)
	}
	*e = Eval{Win: true, Distance: *win.Win}
	return nil
}

type Record struct {
	Pile game.Pile `json:"pile"`
	Eval Eval      `json:"eval"`
}

// MatchupPath returns the labeled dataset file of a hero against a monster.
func MatchupPath(dir, hero, monster string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s.jsonl", hero, monster))
}

// Load reads every record of a JSONL dataset in file order.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("failed to decode %s line %d: %w", filepath.Base(path), line, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return records, nil
}

// Split returns the first holdout records as the evaluation set and the rest
// as the training set.
func Split(records []Record, holdout int) (eval, train []Record) {
	holdout = min(max(holdout, 0), len(records))
	return records[:holdout], records[holdout:]
}
