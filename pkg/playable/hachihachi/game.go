package hachihachi

import (
	"fmt"
	"time"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/playable"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is a single round of hachi-hachi. The round state is exclusively
// owned by the game instance; all transitions are synchronous.
type Game struct {
	options Options

	deck    *deck.Deck
	players [3]*Player
	field   deck.Hand

	multiplier    int
	phase         Phase
	currentPlayer int

	// pendingCard is a played or drawn card awaiting a field-match choice
	pendingCard    *deck.Card
	pendingMatches []*deck.Card
	// resume is where play picks up after the current decision resolves
	resume resumePoint

	terminationReason TerminationReason
	terminatingPlayer int

	teyakuPayments [3]int

	result *Result // only populated once the round terminates

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage
}

var _ playable.Playable = (*Game)(nil)

// NewGame returns a new hachi-hachi round. Call Deal() to start play.
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	return newGame(logger, opts, [3]int{})
}

func newGame(logger logrus.FieldLogger, opts Options, carriedScores [3]int) (*Game, error) {
	if opts.MaxRedeals <= 0 {
		opts.MaxRedeals = DefaultOptions().MaxRedeals
	}

	if opts.DeckThreshold <= 0 {
		opts.DeckThreshold = DefaultOptions().DeckThreshold
	}

	if opts.CaptureDetector == nil {
		opts.CaptureDetector = DefaultOptions().CaptureDetector
	}

	if opts.HandDetector == nil {
		opts.HandDetector = DefaultOptions().HandDetector
	}

	g := &Game{
		options:           opts,
		phase:             PhaseDealing,
		terminatingPlayer: -1,
		logger:            logger,
		logChan:           make(chan []*playable.LogMessage, 256),
	}

	for i := range g.players {
		g.players[i] = NewPlayer(i)
		g.players[i].cumulativeScore = carriedScores[i]
	}

	return g, nil
}

// Name returns "hachi-hachi"
func (g *Game) Name() string {
	return "hachi-hachi"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action
func (g *Game) Action(playerIndex int, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return nil, false, ErrPlayerNotFound
	}

	log := g.logger.WithField("playerIndex", playerIndex)

	switch message.Action {
	case "selectHandCard":
		log.WithField("cardId", message.CardID).Debug("select hand card")
		err = g.SelectHandCard(playerIndex, message.CardID)
	case "selectFieldCard":
		log.WithField("cardId", message.CardID).Debug("select field card")
		err = g.SelectFieldCard(playerIndex, message.CardID)
	case "lockIn":
		log.Debug("lock in")
		err = g.DeclareLockIn(playerIndex)
	case "continue":
		log.Debug("continue at risk")
		err = g.DeclareContinue(playerIndex)
	case "retreat":
		log.Debug("retreat")
		err = g.DeclareRetreat(playerIndex)
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetEndOfGameDetails returns details once the round has terminated
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if g.result == nil {
		return nil, false
	}

	adjustments := make(map[int]int)
	for i, pr := range g.result.PerPlayer {
		adjustments[i] = pr.RoundTotal
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.result,
	}, true
}

// Result returns the settlement result, or nil if the round is still in progress
func (g *Game) Result() *Result {
	return g.result
}

// Multiplier returns the round's scoring multiplier
func (g *Game) Multiplier() int {
	return g.multiplier
}

// CurrentPlayer returns the seat index whose decision the round is waiting on
func (g *Game) CurrentPlayer() int {
	return g.currentPlayer
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// TeyakuPayments returns the hand-combination payment vector settled at round start
func (g *Game) TeyakuPayments() [3]int {
	return g.teyakuPayments
}

// Player returns the player in the given seat
func (g *Game) Player(index int) *Player {
	return g.players[index]
}

// SelectHandCard plays the identified card from the player's hand
func (g *Game) SelectHandCard(playerIndex, cardID int) error {
	if err := g.selectHandCard(playerIndex, cardID); err != nil {
		return err
	}

	g.run()
	return nil
}

// SelectFieldCard resolves a two-match choice with the identified field card
func (g *Game) SelectFieldCard(playerIndex, cardID int) error {
	if err := g.selectFieldCard(playerIndex, cardID); err != nil {
		return err
	}

	g.run()
	return nil
}

// DeclareLockIn ends the round immediately, banking the player's combinations
func (g *Game) DeclareLockIn(playerIndex int) error {
	if err := g.declareLockIn(playerIndex); err != nil {
		return err
	}

	g.run()
	return nil
}

// DeclareContinue declines to end the round, gambling for more value
func (g *Game) DeclareContinue(playerIndex int) error {
	if err := g.declareContinue(playerIndex); err != nil {
		return err
	}

	g.run()
	return nil
}

// DeclareRetreat converts a declared risk into a guaranteed half-value payout
func (g *Game) DeclareRetreat(playerIndex int) error {
	if err := g.declareRetreat(playerIndex); err != nil {
		return err
	}

	g.run()
	return nil
}

// run resolves automated decisions until the round is waiting on a human
// seat or has terminated
func (g *Game) run() {
	for g.phase != PhaseRoundEnd && g.phase != PhaseDealing {
		policy := g.options.Policies[g.currentPlayer]
		if policy == nil {
			return
		}

		view := g.viewFor(g.currentPlayer)

		var err error
		switch g.phase {
		case PhaseSelectHand:
			card := policy.ChooseHandCard(view)
			err = g.selectHandCard(g.currentPlayer, card.ID)
		case PhaseSelectField, PhaseSelectDrawnMatch:
			choice := policy.ChooseFieldMatch(view, g.pendingCard, append([]*deck.Card{}, g.pendingMatches...))
			err = g.selectFieldCard(g.currentPlayer, choice.ID)
		case PhaseRiskDecision:
			switch policy.ChoosePostCaptureRisk(view) {
			case RiskLockIn:
				err = g.declareLockIn(g.currentPlayer)
			case RiskRetreat:
				err = g.declareRetreat(g.currentPlayer)
			default:
				err = g.declareContinue(g.currentPlayer)
			}
		case PhasePreTurnRisk:
			if policy.ChoosePreTurnRisk(view) == RiskRetreat {
				err = g.declareRetreat(g.currentPlayer)
			} else {
				err = g.declareContinue(g.currentPlayer)
			}
		default:
			panic(fmt.Sprintf("unexpected phase: %s", g.phase))
		}

		if err != nil {
			panic(fmt.Sprintf("policy produced an illegal action in phase %s: %v", g.phase, err))
		}
	}
}

// viewFor builds the observable state for a policy decision
func (g *Game) viewFor(playerIndex int) PolicyView {
	p := g.players[playerIndex]

	return PolicyView{
		PlayerIndex:        playerIndex,
		Hand:               p.Hand(),
		Field:              g.field.Clone(),
		DeckRemaining:      g.deck.CardsLeft(),
		Multiplier:         g.multiplier,
		ActiveCombinations: p.ActiveCombinations(),
		HasDeclaredRisk:    p.hasDeclaredRisk,
		RiskBaselineValue:  p.riskBaselineValue,
	}
}

// assertConservation panics unless every card is accounted for
func (g *Game) assertConservation() {
	total := g.deck.CardsLeft() + len(g.field)
	if g.pendingCard != nil {
		total++
	}

	for _, p := range g.players {
		total += len(p.hand) + len(p.capturePile)
	}

	if total != deck.Size {
		panic(fmt.Sprintf("card conservation violated: have %d cards, want %d", total, deck.Size))
	}
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan != nil {
		select {
		case g.logChan <- msg:
		default:
			// nobody is draining the channel; drop rather than block
		}
	}
}

func newLogMessage(playerIndex int, card *deck.Card, format string, a ...interface{}) *playable.LogMessage {
	var cards []*deck.Card
	if card != nil {
		cards = append(cards, card)
	}

	var indexes []int
	if playerIndex >= 0 {
		indexes = []int{playerIndex}
	}

	return &playable.LogMessage{
		UUID:          uuid.New().String(),
		PlayerIndexes: indexes,
		Cards:         cards,
		Message:       fmt.Sprintf(format, a...),
		Time:          time.Now(),
	}
}
