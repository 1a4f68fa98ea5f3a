package hachihachi

import (
	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"
	"github.com/sirupsen/logrus"
)

// multiplier trigger cards. Only these exact brights matter, not the
// bright category as a whole.
var grandBrights = []int{deck.IDRainMan, deck.IDPhoenix}
var largeBrights = []int{deck.IDCrane, deck.IDCurtain, deck.IDMoon}

// Deal deals eight cards to each player and eight to the field, redealing
// while the field holds all four cards of a month. Once a deal is accepted
// the multiplier is derived, teyaku are settled, and play begins.
func (g *Game) Deal() error {
	if g.phase != PhaseDealing {
		return ErrAlreadyDealt
	}

	for attempt := 0; attempt < g.options.MaxRedeals; attempt++ {
		d := deck.New()

		seed := g.options.Seed
		if seed != 0 {
			seed += int64(attempt)
		}
		d.Shuffle(seed)

		var hands [3]deck.Hand
		field := make(deck.Hand, 0, 8)

		// two passes of four to each player, then four to the field
		for pass := 0; pass < 2; pass++ {
			for i := range hands {
				hands[i] = append(hands[i], d.DrawMultiple(4)...)
			}

			field = append(field, d.DrawMultiple(4)...)
		}

		if month, invalid := fieldFourOfAMonth(field); invalid {
			g.logger.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"month":   month,
			}).Debug("field holds all four cards of a month, redealing")
			continue
		}

		g.deck = d
		g.field = field
		for i, p := range g.players {
			p.hand = hands[i]
		}

		g.multiplier = fieldMultiplier(field)
		g.sendLogMessages(
			newLogMessage(-1, nil, "New round of hachi-hachi dealt (multiplier %d×)", g.multiplier),
		)

		g.settleTeyaku()

		g.currentPlayer = 0
		g.startTurn()
		g.run()
		return nil
	}

	return InvalidDealError{Attempts: g.options.MaxRedeals}
}

// fieldFourOfAMonth reports whether the field holds all four cards of any month
func fieldFourOfAMonth(field deck.Hand) (int, bool) {
	for month := 1; month <= 12; month++ {
		if len(field.CardsOfMonth(month)) == 4 {
			return month, true
		}
	}

	return 0, false
}

// fieldMultiplier derives the round multiplier from the exact cards on the
// field: a grand bright yields 4×, a large bright 2×, otherwise 1×
func fieldMultiplier(field deck.Hand) int {
	for _, id := range grandBrights {
		if field.FindByID(id) != nil {
			return 4
		}
	}

	for _, id := range largeBrights {
		if field.FindByID(id) != nil {
			return 2
		}
	}

	return 1
}

// settleTeyaku computes the hand-combination settlement from the original
// hands. A player with teyaku collects its value × multiplier from each
// other player; the resulting vector always sums to zero.
func (g *Game) settleTeyaku() {
	var values [3]int
	total := 0
	for i, p := range g.players {
		p.teyaku = g.options.HandDetector.Detect(p.hand)
		values[i] = yaku.Value(p.teyaku)
		total += values[i]

		if values[i] > 0 {
			g.sendLogMessages(newLogMessage(i, nil, "{} holds teyaku worth %d", values[i]))
		}
	}

	sum := 0
	for i := range g.players {
		g.teyakuPayments[i] = g.multiplier * (3*values[i] - total)
		sum += g.teyakuPayments[i]
	}

	if sum != 0 {
		panic("teyaku settlement does not sum to zero")
	}
}
