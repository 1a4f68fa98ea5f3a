package hachihachi

import (
	"github.com/ceruleanoak/hanafuda-sub000/internal/rng"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"
)

// RiskAction is a decision at a risk-decision point
type RiskAction int

// risk actions
const (
	RiskContinue RiskAction = iota
	RiskLockIn
	RiskRetreat
)

func (a RiskAction) String() string {
	switch a {
	case RiskContinue:
		return "continue"
	case RiskLockIn:
		return "lockIn"
	case RiskRetreat:
		return "retreat"
	default:
		return "unknown"
	}
}

// PolicyView is the observable state a policy decides on. It never exposes
// hidden information such as other players' hands or the deck order.
type PolicyView struct {
	PlayerIndex        int
	Hand               deck.Hand
	Field              deck.Hand
	DeckRemaining      int
	Multiplier         int
	ActiveCombinations []yaku.Combination
	HasDeclaredRisk    bool
	RiskBaselineValue  int
}

// Policy makes decisions for an automated seat. Implementations only see the
// view and must never depend on hidden information; randomized policies
// should draw from a seeded generator so runs stay reproducible.
type Policy interface {
	// ChooseHandCard picks the hand card to play. The hand is never empty.
	ChooseHandCard(view PolicyView) *deck.Card

	// ChooseFieldMatch picks one of the two offered field matches
	ChooseFieldMatch(view PolicyView, played *deck.Card, matches []*deck.Card) *deck.Card

	// ChoosePostCaptureRisk decides after a capture produced a new combination
	ChoosePostCaptureRisk(view PolicyView) RiskAction

	// ChoosePreTurnRisk decides at the top of a turn while holding declared risk.
	// Only RiskContinue and RiskRetreat are meaningful here.
	ChoosePreTurnRisk(view PolicyView) RiskAction
}

// ThresholdPolicy is the default opponent policy: capture when possible, and
// keep risking until the deck runs low.
type ThresholdPolicy struct {
	// DeckThreshold is the remaining-deck size at or below which the policy
	// stops risking
	DeckThreshold int
}

// NewThresholdPolicy returns a ThresholdPolicy with the given deck threshold
func NewThresholdPolicy(deckThreshold int) *ThresholdPolicy {
	return &ThresholdPolicy{DeckThreshold: deckThreshold}
}

// ChooseHandCard picks the first hand card with a field match, else the first card
func (t *ThresholdPolicy) ChooseHandCard(view PolicyView) *deck.Card {
	for _, c := range view.Hand {
		if len(view.Field.CardsOfMonth(c.Month)) > 0 {
			return c
		}
	}

	return view.Hand[0]
}

// ChooseFieldMatch picks the first offered match
func (t *ThresholdPolicy) ChooseFieldMatch(_ PolicyView, _ *deck.Card, matches []*deck.Card) *deck.Card {
	return matches[0]
}

// ChoosePostCaptureRisk locks in when the hand is empty or the deck is low,
// otherwise continues at risk
func (t *ThresholdPolicy) ChoosePostCaptureRisk(view PolicyView) RiskAction {
	if len(view.Hand) == 0 {
		return RiskLockIn
	}

	if view.DeckRemaining <= t.DeckThreshold {
		return RiskLockIn
	}

	return RiskContinue
}

// ChoosePreTurnRisk retreats once the deck is low, otherwise keeps risking
func (t *ThresholdPolicy) ChoosePreTurnRisk(view PolicyView) RiskAction {
	if view.DeckRemaining <= t.DeckThreshold {
		return RiskRetreat
	}

	return RiskContinue
}

var _ Policy = (*ThresholdPolicy)(nil)

// RandomPolicy plays uniformly at random among the legal options. Useful for
// exploring the state space in simulations.
type RandomPolicy struct {
	rng rng.Generator
}

// NewRandomPolicy returns a RandomPolicy drawing from the given generator
func NewRandomPolicy(generator rng.Generator) *RandomPolicy {
	return &RandomPolicy{rng: generator}
}

// ChooseHandCard picks a random hand card
func (r *RandomPolicy) ChooseHandCard(view PolicyView) *deck.Card {
	return view.Hand[r.rng.Intn(len(view.Hand))]
}

// ChooseFieldMatch picks a random offered match
func (r *RandomPolicy) ChooseFieldMatch(_ PolicyView, _ *deck.Card, matches []*deck.Card) *deck.Card {
	return matches[r.rng.Intn(len(matches))]
}

// ChoosePostCaptureRisk flips between locking in and continuing
func (r *RandomPolicy) ChoosePostCaptureRisk(_ PolicyView) RiskAction {
	if r.rng.Intn(2) == 0 {
		return RiskLockIn
	}

	return RiskContinue
}

// ChoosePreTurnRisk flips between continuing and retreating
func (r *RandomPolicy) ChoosePreTurnRisk(_ PolicyView) RiskAction {
	if r.rng.Intn(2) == 0 {
		return RiskRetreat
	}

	return RiskContinue
}

var _ Policy = (*RandomPolicy)(nil)
