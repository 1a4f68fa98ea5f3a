package hachihachi

import (
	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"
)

// Player is a seat in the round
type Player struct {
	Index int

	hand        deck.Hand
	capturePile deck.Hand

	activeCombinations []yaku.Combination
	// lockedCombinations is set only by a lock event (a lock-in by any player,
	// or this player's retreat) and is never mutated afterwards
	lockedCombinations []yaku.Combination
	teyaku             []yaku.Combination

	hasDeclaredRisk   bool
	riskBaselineValue int

	cumulativeScore int
}

// NewPlayer returns a new player for the given seat
func NewPlayer(index int) *Player {
	return &Player{
		Index:       index,
		hand:        make(deck.Hand, 0, 8),
		capturePile: make(deck.Hand, 0, 16),
	}
}

// Hand returns a shallow copy of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// CapturePile returns a shallow copy of the player's capture pile
func (p *Player) CapturePile() deck.Hand {
	return p.capturePile.Clone()
}

// ActiveCombinations returns the player's current combinations
func (p *Player) ActiveCombinations() []yaku.Combination {
	return append([]yaku.Combination{}, p.activeCombinations...)
}

// ActiveValue returns the total value of the player's current combinations
func (p *Player) ActiveValue() int {
	return yaku.Value(p.activeCombinations)
}

// LockedValue returns the total value of the player's locked combinations
func (p *Player) LockedValue() int {
	return yaku.Value(p.lockedCombinations)
}

// HasDeclaredRisk returns true if the player has declared continue-at-risk
// and has not since retreated
func (p *Player) HasDeclaredRisk() bool {
	return p.hasDeclaredRisk
}

// CumulativeScore returns the player's score across rounds
func (p *Player) CumulativeScore() int {
	return p.cumulativeScore
}
