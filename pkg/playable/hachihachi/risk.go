package hachihachi

import (
	"github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"
)

func (g *Game) declareLockIn(playerIndex int) error {
	if g.phase != PhaseRiskDecision {
		return ErrWrongPhase
	}

	if playerIndex != g.currentPlayer {
		return ErrNotPlayersTurn
	}

	g.sendLogMessages(newLogMessage(playerIndex, nil, "{} locks in at %d", g.players[playerIndex].ActiveValue()))
	g.lockIn(playerIndex)
	return nil
}

// lockIn freezes every player's combinations at this exact instant and
// terminates the round
func (g *Game) lockIn(playerIndex int) {
	for _, p := range g.players {
		p.lockedCombinations = append([]yaku.Combination{}, p.activeCombinations...)
	}

	g.endRound(ReasonLockedIn, playerIndex)
}

func (g *Game) declareContinue(playerIndex int) error {
	if playerIndex != g.currentPlayer {
		return ErrNotPlayersTurn
	}

	p := g.players[playerIndex]

	switch g.phase {
	case PhaseRiskDecision:
		p.hasDeclaredRisk = true
		p.riskBaselineValue = p.ActiveValue()
		// a fresh risk declaration clears any previous lock
		p.lockedCombinations = nil

		g.sendLogMessages(newLogMessage(playerIndex, nil, "{} continues at risk (baseline %d)", p.riskBaselineValue))

		resume := g.resume
		g.resume = resumeNone
		g.continueFrom(resume)
		return nil
	case PhasePreTurnRisk:
		g.phase = PhaseSelectHand
		return nil
	default:
		return ErrWrongPhase
	}
}

func (g *Game) declareRetreat(playerIndex int) error {
	if g.phase != PhaseRiskDecision && g.phase != PhasePreTurnRisk {
		return ErrWrongPhase
	}

	if playerIndex != g.currentPlayer {
		return ErrNotPlayersTurn
	}

	p := g.players[playerIndex]
	if !p.hasDeclaredRisk {
		return ErrCannotRetreat
	}

	p.lockedCombinations = append([]yaku.Combination{}, p.activeCombinations...)

	g.sendLogMessages(newLogMessage(playerIndex, nil, "{} retreats at %d", p.ActiveValue()))
	g.endRound(ReasonRetreated, playerIndex)
	return nil
}
