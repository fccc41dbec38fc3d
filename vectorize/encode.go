package vectorize

import "handy/game"

const (
	PileSize  = game.PileSize
	CardSize  = PileSize + game.NumFaces // card identity one-hot, then face one-hot
	InputSize = CardSize * PileSize
)

// Encoding is the fixed-size feature vector of a pile.
type Encoding []float32

// Encode sets, for every pile position i, the identity slot CardSize*i+rank
// and the face slot CardSize*i+PileSize+face.
func (ci *CardIndex) Encode(pile game.Pile) (Encoding, error) {
	enc := make(Encoding, InputSize)
	for i, card := range pile {
		rank, err := ci.Rank(card.ID)
		if err != nil {
			return nil, err
		}
		enc[CardSize*i+rank] = 1.0
		enc[CardSize*i+PileSize+int(card.Face)] = 1.0
	}
	return enc, nil
}
