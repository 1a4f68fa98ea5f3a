package hachihachi

import (
	"fmt"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/sirupsen/logrus"
)

// startTurn sets the phase for the next player's turn. A player holding
// declared risk faces the continue/retreat sub-decision before acting.
func (g *Game) startTurn() {
	p := g.players[g.currentPlayer]

	if len(p.hand) == 0 {
		// nothing left to play; the round drains by exhaustion
		g.endRound(ReasonExhausted, -1)
		return
	}

	if p.hasDeclaredRisk {
		g.phase = PhasePreTurnRisk
		return
	}

	g.phase = PhaseSelectHand
}

func (g *Game) selectHandCard(playerIndex, cardID int) error {
	if g.phase != PhaseSelectHand {
		return ErrWrongPhase
	}

	if playerIndex != g.currentPlayer {
		return ErrNotPlayersTurn
	}

	p := g.players[playerIndex]
	card := p.hand.FindByID(cardID)
	if card == nil {
		return ErrCardNotInHand
	}

	p.hand.Discard(card)
	g.resolvePlay(card, resumeDraw)
	return nil
}

func (g *Game) selectFieldCard(playerIndex, cardID int) error {
	if g.phase != PhaseSelectField && g.phase != PhaseSelectDrawnMatch {
		return ErrWrongPhase
	}

	if playerIndex != g.currentPlayer {
		return ErrNotPlayersTurn
	}

	var chosen *deck.Card
	for _, c := range g.pendingMatches {
		if c.ID == cardID {
			chosen = c
			break
		}
	}

	if chosen == nil {
		return ErrCardNotAMatch
	}

	card, resume := g.pendingCard, g.resume
	g.pendingCard = nil
	g.pendingMatches = nil

	g.capture(card, []*deck.Card{chosen})
	g.afterCapture(resume)
	return nil
}

// resolvePlay matches a played or drawn card against the field:
// zero matches places it, one or three capture immediately, two require a
// choice. Play continues at the resume point unless a decision interrupts.
func (g *Game) resolvePlay(card *deck.Card, resume resumePoint) {
	matches := g.field.CardsOfMonth(card.Month)

	switch len(matches) {
	case 0:
		g.field.AddCard(card)
		g.sendLogMessages(newLogMessage(g.currentPlayer, card, "{} placed %s on the field", card.Name))
		g.continueFrom(resume)
	case 1:
		g.capture(card, matches)
		g.afterCapture(resume)
	case 2:
		g.pendingCard = card
		g.pendingMatches = matches
		g.resume = resume
		if resume == resumeDraw {
			g.phase = PhaseSelectField
		} else {
			g.phase = PhaseSelectDrawnMatch
		}
	case 3:
		// sweep: all four cards of the month are captured, no choice offered
		g.sendLogMessages(newLogMessage(g.currentPlayer, card, "{} swept month %d", card.Month))
		g.capture(card, matches)
		g.afterCapture(resume)
	default:
		panic(fmt.Sprintf("impossible match count: %d", len(matches)))
	}
}

// capture moves the matched field cards and the played card into the
// current player's capture pile
func (g *Game) capture(card *deck.Card, matches []*deck.Card) {
	p := g.players[g.currentPlayer]

	for _, m := range matches {
		if !g.field.Discard(m) {
			panic(fmt.Sprintf("captured card %s is not on the field", m))
		}

		p.capturePile.AddCard(m)
	}

	p.capturePile.AddCard(card)
	g.sendLogMessages(newLogMessage(g.currentPlayer, card, "{} captured with %s", card.Name))
}

// afterCapture recomputes the player's combinations. If the combination
// count increased, the risk decision must resolve before the turn advances.
func (g *Game) afterCapture(resume resumePoint) {
	p := g.players[g.currentPlayer]

	combinations := g.options.CaptureDetector.Detect(p.capturePile)
	increased := len(combinations) > len(p.activeCombinations)
	p.activeCombinations = combinations

	if !increased {
		g.continueFrom(resume)
		return
	}

	g.sendLogMessages(newLogMessage(p.Index, nil, "{} formed a combination worth %d", p.ActiveValue()))

	if len(p.hand) == 0 {
		// an empty hand cannot gain another combination; lock-in is forced
		g.logger.WithField("playerIndex", p.Index).Debug("empty hand, forcing lock-in")
		g.sendLogMessages(newLogMessage(p.Index, nil, "{} locks in (hand is empty)"))
		g.lockIn(p.Index)
		return
	}

	g.phase = PhaseRiskDecision
	g.resume = resume
}

// continueFrom resumes play after a decision point
func (g *Game) continueFrom(resume resumePoint) {
	switch resume {
	case resumeDraw:
		g.drawStep()
	case resumeEndTurn:
		g.endTurn()
	default:
		panic(fmt.Sprintf("unknown resume point: %d", resume))
	}
}

// drawStep draws one card and resolves it against the field. An empty deck
// skips the draw.
func (g *Game) drawStep() {
	card, err := g.deck.Draw()
	if err != nil {
		g.endTurn()
		return
	}

	g.sendLogMessages(newLogMessage(g.currentPlayer, card, "{} drew %s", card.Name))
	g.resolvePlay(card, resumeEndTurn)
}

// endTurn checks for exhaustion and passes play to the next player
func (g *Game) endTurn() {
	g.assertConservation()

	allEmpty := true
	for _, p := range g.players {
		if len(p.hand) > 0 {
			allEmpty = false
			break
		}
	}

	if allEmpty {
		g.endRound(ReasonExhausted, -1)
		return
	}

	g.currentPlayer = (g.currentPlayer + 1) % len(g.players)
	g.startTurn()
}

// endRound terminates the round and computes the settlement
func (g *Game) endRound(reason TerminationReason, terminatingPlayer int) {
	g.terminationReason = reason
	g.terminatingPlayer = terminatingPlayer
	g.phase = PhaseRoundEnd

	g.buildResult()

	g.logger.WithFields(logrus.Fields{
		"reason":            string(reason),
		"terminatingPlayer": terminatingPlayer,
	}).Debug("round ended")

	g.sendLogMessages(newLogMessage(terminatingPlayer, nil, "The round ends (%s)", reason))
}
