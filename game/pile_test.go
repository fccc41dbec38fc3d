package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPileKey(t *testing.T) {
	t.Run("concatenating card ids and faces", func(t *testing.T) {
		pile, err := ParsePile("1A 2B 3C 4D 5A 6B 7C 8D 10A")
		require.NoError(t, err)

		require.Equal(t, "1A2B3C4D5A6B7C8D10A", pile.Key(), "Key should concatenate id and face per card")
	})

	t.Run("distinguishing faces of the same cards", func(t *testing.T) {
		a, err := ParsePile("1A 2A 3A 4A 5A 6A 7A 8A 9A")
		require.NoError(t, err)
		b := a
		b[0].Face = FaceB

		require.NotEqual(t, a.Key(), b.Key(), "Piles differing by one face should be different states")
		require.Equal(t, FaceA, a[0].Face, "Copies should not alias")
	})
}

func TestParsePile(t *testing.T) {
	t.Run("defaulting missing faces to A and ignoring case", func(t *testing.T) {
		pile, err := ParsePile("1 2b 3C 4 5 6 7d 8 9")
		require.NoError(t, err)

		require.Equal(t, Card{ID: 1, Face: FaceA}, pile[0])
		require.Equal(t, Card{ID: 2, Face: FaceB}, pile[1])
		require.Equal(t, Card{ID: 7, Face: FaceD}, pile[6])
	})

	t.Run("rejecting piles of the wrong size", func(t *testing.T) {
		_, err := ParsePile("1A 2A 3A")
		require.ErrorIs(t, err, ErrInvalidPile)
	})

	t.Run("rejecting ids out of range", func(t *testing.T) {
		_, err := ParsePile("1A 2A 3A 4A 5A 6A 7A 8A 300A")
		require.ErrorIs(t, err, ErrInvalidPile)
	})
}

func TestPileJSON(t *testing.T) {
	t.Run("decoding the generator tuple form", func(t *testing.T) {
		data := `[[1,"A"],[2,"B"],[3,"C"],[4,"D"],[5,"A"],[6,"B"],[7,"C"],[8,"D"],[9,"A"]]`
		var pile Pile
		require.NoError(t, json.Unmarshal([]byte(data), &pile))

		require.Equal(t, "1A2B3C4D5A6B7C8D9A", pile.Key())

		encoded, err := json.Marshal(pile)
		require.NoError(t, err)
		require.JSONEq(t, data, string(encoded), "Encoding should produce the same tuple form")
	})

	t.Run("rejecting short piles", func(t *testing.T) {
		var pile Pile
		err := json.Unmarshal([]byte(`[[1,"A"],[2,"B"]]`), &pile)
		require.ErrorIs(t, err, ErrInvalidPile)
	})

	t.Run("rejecting unknown faces", func(t *testing.T) {
		var card Card
		err := json.Unmarshal([]byte(`[1,"E"]`), &card)
		require.ErrorIs(t, err, ErrInvalidCard)
	})
}

func TestOutcomeOf(t *testing.T) {
	require.Equal(t, HumanWon, OutcomeOf(HumanWinner))
	require.Equal(t, NoResolution, OutcomeOf(BotWinner), "A bot win is a dead end")
	require.Equal(t, Undetermined, OutcomeOf(NoWinner))

	var w Winner
	require.NoError(t, json.Unmarshal([]byte(`"h"`), &w))
	require.Equal(t, HumanWinner, w)
	require.Error(t, json.Unmarshal([]byte(`"x"`), &w))
}
