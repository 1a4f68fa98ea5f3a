package hachihachi

import (
	"testing"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// nullDetector finds no combinations
var nullDetector = yaku.DetectorFunc(func([]*deck.Card) []yaku.Combination {
	return nil
})

// valueWhenHolding returns a detector that reports a single combination of
// the given value while the pile holds the identified card
func valueWhenHolding(cardID, value int) yaku.Detector {
	return yaku.DetectorFunc(func(cards []*deck.Card) []yaku.Combination {
		for _, c := range cards {
			if c.ID == cardID {
				return []yaku.Combination{{Name: "test", Value: value, Cards: []*deck.Card{c}}}
			}
		}

		return nil
	})
}

// craftGame builds a mid-round game with the given hands, field and deck.
// All remaining cards are parked in capture piles so conservation holds.
func craftGame(t *testing.T, opts Options, hands [3]string, field, deckCards string) *Game {
	t.Helper()

	if opts.CaptureDetector == nil {
		opts.CaptureDetector = nullDetector
	}
	if opts.HandDetector == nil {
		opts.HandDetector = nullDetector
	}

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)

	used := make(map[int]bool)
	claim := func(cards []*deck.Card) deck.Hand {
		for _, c := range cards {
			require.False(t, used[c.ID], "card %s used twice", c)
			used[c.ID] = true
		}

		return cards
	}

	d := deck.New()
	d.Cards = claim(deck.CardsFromString(deckCards))
	g.deck = d
	g.field = claim(deck.CardsFromString(field))
	for i := range g.players {
		g.players[i].hand = claim(deck.CardsFromString(hands[i]))
	}

	for id := 0; id < deck.Size; id++ {
		if !used[id] {
			g.players[id%3].capturePile.AddCard(deck.CardFromID(id))
		}
	}

	g.multiplier = 1
	g.currentPlayer = 0
	g.phase = PhaseSelectHand
	return g
}

// endedGame builds a terminated game shell for settlement tests. Capture
// piles partition the full deck by month: months 1–4 to seat 0, 5–8 to
// seat 1, 9–12 to seat 2.
func endedGame(t *testing.T) *Game {
	t.Helper()

	opts := DefaultOptions()
	opts.CaptureDetector = nullDetector
	opts.HandDetector = nullDetector

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)

	g.deck = deck.New()
	g.deck.Cards = nil
	g.multiplier = 1

	for id := 0; id < deck.Size; id++ {
		g.players[(id/4)/4].capturePile.AddCard(deck.CardFromID(id))
	}

	return g
}

func combos(value int) []yaku.Combination {
	return []yaku.Combination{{Name: "test", Value: value}}
}
