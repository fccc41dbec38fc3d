package vectorize

import (
	"errors"
	"fmt"
	"handy/game"
	"slices"
)

var (
	ErrUninitializedIndex = errors.New("card index is not initialized")
	ErrAlreadyInitialized = errors.New("card index is already initialized")
	ErrUnknownCard        = errors.New("card is not in the index")
)

// CardIndex maps the card identities of one matchup to dense ranks. It is
// written once and read for the rest of a run; callers share one instance.
type CardIndex struct {
	ranks map[game.CardID]int
}

func NewCardIndex() *CardIndex {
	return &CardIndex{}
}

// Init ranks the distinct card ids of pile in ascending order.
func (ci *CardIndex) Init(pile game.Pile) error {
	if ci.Initialized() {
		return ErrAlreadyInitialized
	}

	ids := pile.IDs()
	slices.Sort(ids)
	ids = slices.Compact(ids)

	ranks := make(map[game.CardID]int, len(ids))
	for i, id := range ids {
		ranks[id] = i
	}
	ci.ranks = ranks
	return nil
}

func (ci *CardIndex) Initialized() bool {
	return len(ci.ranks) > 0
}

// Rank returns the dense rank of a card id.
func (ci *CardIndex) Rank(id game.CardID) (int, error) {
	if !ci.Initialized() {
		return 0, ErrUninitializedIndex
	}
	rank, ok := ci.ranks[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCard, id)
	}
	return rank, nil
}
