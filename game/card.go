package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidCard = errors.New("invalid card")

// CardID identifies a card definition. It is opaque to the trainer apart from
// its ordering, which the card index relies on.
type CardID uint8

// FaceKey is the side of a card currently facing up.
type FaceKey int

const (
	FaceA FaceKey = iota // 0
	FaceB                // 1
	FaceC                // 2
	FaceD                // 3
)

const NumFaces = 4

func (f FaceKey) String() string {
	switch f {
	case FaceA:
		return "A"
	case FaceB:
		return "B"
	case FaceC:
		return "C"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// ParseFaceKey accepts a single face letter, case insensitive.
func ParseFaceKey(s string) (FaceKey, error) {
	switch strings.ToUpper(s) {
	case "A":
		return FaceA, nil
	case "B":
		return FaceB, nil
	case "C":
		return FaceC, nil
	case "D":
		return FaceD, nil
	}
	return 0, fmt.Errorf("%w: unknown face %q", ErrInvalidCard, s)
}

// Card is a card definition with its active face.
type Card struct {
	ID   CardID
	Face FaceKey
}

func (c Card) String() string {
	return strconv.Itoa(int(c.ID)) + c.Face.String()
}

// MarshalJSON encodes a card as the generator's [id, "face"] tuple.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{uint8(c.ID), c.Face.String()})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("%w: expected [id, face], got %d elements", ErrInvalidCard, len(tuple))
	}

	var id uint8
	if err := json.Unmarshal(tuple[0], &id); err != nil {
		return fmt.Errorf("%w: bad id: %v", ErrInvalidCard, err)
	}
	var face string
	if err := json.Unmarshal(tuple[1], &face); err != nil {
		return fmt.Errorf("%w: bad face: %v", ErrInvalidCard, err)
	}
	key, err := ParseFaceKey(face)
	if err != nil {
		return err
	}

	c.ID = CardID(id)
	c.Face = key
	return nil
}
