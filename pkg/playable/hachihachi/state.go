package hachihachi

import (
	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/playable"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"
)

// GameState is a snapshot of the round, retrievable at any time
type GameState struct {
	Phase             string            `json:"phase"`
	Field             []*deck.Card      `json:"field"`
	Players           [3]*PlayerState   `json:"players"`
	DeckRemaining     int               `json:"deckRemaining"`
	Multiplier        int               `json:"multiplier"`
	CurrentPlayer     int               `json:"currentPlayer"`
	PendingCard       *deck.Card        `json:"pendingCard,omitempty"`
	PendingMatches    []*deck.Card      `json:"pendingMatches,omitempty"`
	TerminationReason TerminationReason `json:"terminationReason,omitempty"`
	TerminatingPlayer int               `json:"terminatingPlayer"`
	Result            *Result           `json:"result,omitempty"`
}

// PlayerState is the state of an individual player
type PlayerState struct {
	// Hand is only populated for the requesting player in GetPlayerState
	Hand               []*deck.Card       `json:"hand,omitempty"`
	HandSize           int                `json:"handSize"`
	CapturePile        []*deck.Card       `json:"capturePile"`
	ActiveCombinations []yaku.Combination `json:"activeCombinations"`
	LockedCombinations []yaku.Combination `json:"lockedCombinations,omitempty"`
	Teyaku             []yaku.Combination `json:"teyaku,omitempty"`
	HasDeclaredRisk    bool               `json:"hasDeclaredRisk"`
	RiskBaselineValue  int                `json:"riskBaselineValue"`
	CumulativeScore    int                `json:"cumulativeScore"`
}

// Snapshot returns the full observer-side snapshot, including all hands
func (g *Game) Snapshot() *GameState {
	state := g.snapshot()
	for i, p := range g.players {
		state.Players[i].Hand = p.Hand()
	}

	return state
}

func (g *Game) snapshot() *GameState {
	state := &GameState{
		Phase:             g.phase.String(),
		Field:             g.field.Clone(),
		DeckRemaining:     g.deckRemaining(),
		Multiplier:        g.multiplier,
		CurrentPlayer:     g.currentPlayer,
		PendingCard:       g.pendingCard,
		TerminationReason: g.terminationReason,
		TerminatingPlayer: g.terminatingPlayer,
		Result:            g.result,
	}

	if len(g.pendingMatches) > 0 {
		state.PendingMatches = append([]*deck.Card{}, g.pendingMatches...)
	}

	for i, p := range g.players {
		state.Players[i] = &PlayerState{
			HandSize:           len(p.hand),
			CapturePile:        p.CapturePile(),
			ActiveCombinations: p.ActiveCombinations(),
			HasDeclaredRisk:    p.hasDeclaredRisk,
			RiskBaselineValue:  p.riskBaselineValue,
			CumulativeScore:    p.cumulativeScore,
		}

		if p.lockedCombinations != nil {
			state.Players[i].LockedCombinations = append([]yaku.Combination{}, p.lockedCombinations...)
		}
	}

	return state
}

func (g *Game) deckRemaining() int {
	if g.deck == nil {
		return deck.Size
	}

	return g.deck.CardsLeft()
}

// playerResponse is the state of the game from one seat's perspective
type playerResponse struct {
	GameState *GameState   `json:"gameState"`
	Hand      []*deck.Card `json:"hand"`
	// AvailableActions lists the actions the player may currently take
	AvailableActions []string `json:"availableActions"`
}

// GetPlayerState returns the state for the given seat, with the other
// players' hands hidden
func (g *Game) GetPlayerState(playerIndex int) (*playable.Response, error) {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return nil, ErrPlayerNotFound
	}

	p := g.players[playerIndex]
	state := g.snapshot()
	state.Players[playerIndex].Hand = p.Hand()
	state.Players[playerIndex].Teyaku = append([]yaku.Combination{}, p.teyaku...)

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data: &playerResponse{
			GameState:        state,
			Hand:             p.Hand(),
			AvailableActions: g.availableActions(playerIndex),
		},
	}, nil
}

func (g *Game) availableActions(playerIndex int) []string {
	if playerIndex != g.currentPlayer {
		return nil
	}

	switch g.phase {
	case PhaseSelectHand:
		return []string{"selectHandCard"}
	case PhaseSelectField, PhaseSelectDrawnMatch:
		return []string{"selectFieldCard"}
	case PhaseRiskDecision:
		actions := []string{"lockIn", "continue"}
		if g.players[playerIndex].hasDeclaredRisk {
			actions = append(actions, "retreat")
		}
		return actions
	case PhasePreTurnRisk:
		return []string{"continue", "retreat"}
	default:
		return nil
	}
}
