package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const PileSize = 9

var ErrInvalidPile = errors.New("invalid pile")

// Pile is an ordered game state of exactly PileSize cards. It is a value type,
// so copies never alias.
type Pile [PileSize]Card

// Key returns the canonical string of a pile: each card's id and face
// concatenated in order. Two piles are the same state iff their keys match.
func (p Pile) Key() string {
	var b strings.Builder
	b.Grow(PileSize * 3)
	for _, c := range p {
		b.WriteString(strconv.Itoa(int(c.ID)))
		b.WriteString(c.Face.String())
	}
	return b.String()
}

func (p Pile) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// IDs returns the card identities in pile order.
func (p Pile) IDs() []CardID {
	ids := make([]CardID, len(p))
	for i, c := range p {
		ids[i] = c.ID
	}
	return ids
}

func (p *Pile) UnmarshalJSON(data []byte) error {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPile, err)
	}
	if len(cards) != PileSize {
		return fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidPile, PileSize, len(cards))
	}
	copy(p[:], cards)
	return nil
}

var cardPattern = regexp.MustCompile(`(\d+)([a-dA-D]?)`)

// ParsePile reads the text form of a pile, e.g. "1A 2b 3 4D ...". A missing
// face defaults to A.
func ParsePile(s string) (Pile, error) {
	var pile Pile
	matches := cardPattern.FindAllStringSubmatch(s, -1)
	if len(matches) != PileSize {
		return pile, fmt.Errorf("%w: expected %d cards in %q, found %d", ErrInvalidPile, PileSize, s, len(matches))
	}

	for i, m := range matches {
		id, err := strconv.ParseUint(m[1], 10, 8)
		if err != nil {
			return pile, fmt.Errorf("%w: card %q: %v", ErrInvalidPile, m[0], err)
		}
		face := FaceA
		if m[2] != "" {
			if face, err = ParseFaceKey(m[2]); err != nil {
				return pile, fmt.Errorf("%w: card %q: %w", ErrInvalidPile, m[0], err)
			}
		}
		pile[i] = Card{ID: CardID(id), Face: face}
	}
	return pile, nil
}
