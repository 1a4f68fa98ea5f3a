// Package yaku provides combination detection over hanafuda card sets.
// The engine only depends on the Detector interface; the standard detectors
// here can be swapped out for house-rule variants.
package yaku

import (
	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
)

// Combination is a named, scored card combination
type Combination struct {
	Name  string       `json:"name"`
	Value int          `json:"value"`
	Cards []*deck.Card `json:"cards"`
}

// Detector returns the combinations present in a set of cards.
// Implementations must be pure functions of their input.
type Detector interface {
	Detect(cards []*deck.Card) []Combination
}

// Value returns the total point value of the combinations
func Value(combinations []Combination) int {
	total := 0
	for _, c := range combinations {
		total += c.Value
	}

	return total
}

// DetectorFunc adapts a function to the Detector interface
type DetectorFunc func(cards []*deck.Card) []Combination

// Detect calls the function
func (f DetectorFunc) Detect(cards []*deck.Card) []Combination {
	return f(cards)
}

func cardsByID(cards []*deck.Card, ids ...int) ([]*deck.Card, bool) {
	found := make([]*deck.Card, 0, len(ids))
	for _, id := range ids {
		var match *deck.Card
		for _, c := range cards {
			if c.ID == id {
				match = c
				break
			}
		}

		if match == nil {
			return nil, false
		}

		found = append(found, match)
	}

	return found, true
}
