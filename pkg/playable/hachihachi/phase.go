package hachihachi

// Phase represents the current phase of the round
type Phase int

const (
	// PhaseDealing is before the deal has been accepted
	PhaseDealing Phase = iota
	// PhasePreTurnRisk is when a player who previously declared risk must
	// decide between continuing and retreating before acting
	PhasePreTurnRisk
	// PhaseSelectHand is when the current player must select a hand card
	PhaseSelectHand
	// PhaseSelectField is when a played hand card matched two field cards and
	// the player must choose one
	PhaseSelectField
	// PhaseSelectDrawnMatch is the same choice for a drawn card
	PhaseSelectDrawnMatch
	// PhaseRiskDecision is when a capture produced a new combination and the
	// player must lock in, continue at risk, or retreat
	PhaseRiskDecision
	// PhaseRoundEnd is when the round has terminated
	PhaseRoundEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePreTurnRisk:
		return "preTurnRisk"
	case PhaseSelectHand:
		return "selectHand"
	case PhaseSelectField:
		return "selectField"
	case PhaseSelectDrawnMatch:
		return "selectDrawnMatch"
	case PhaseRiskDecision:
		return "riskDecision"
	case PhaseRoundEnd:
		return "roundEnd"
	default:
		return "unknown"
	}
}

// TerminationReason describes how the round ended
type TerminationReason string

// termination reasons
const (
	ReasonLockedIn  TerminationReason = "locked-in"
	ReasonRetreated TerminationReason = "retreated"
	ReasonExhausted TerminationReason = "exhausted"
)

// resumePoint is where play continues after a pending decision resolves
type resumePoint int

const (
	resumeNone resumePoint = iota
	// resumeDraw continues with the draw step (the hand card just resolved)
	resumeDraw
	// resumeEndTurn ends the turn (the drawn card just resolved)
	resumeEndTurn
)
