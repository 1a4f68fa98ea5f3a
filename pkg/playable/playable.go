package playable

import (
	"fmt"
	"time"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/google/uuid"
)

// Playable is a game that can be played
type Playable interface {
	// Action performs an action for the player in the given seat
	// If playerResponse is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all observers
	Action(playerIndex int, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game for the player
	GetPlayerState(playerIndex int) (*Response, error)

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If PlayerIndexes is empty, assume it's a general statement
type LogMessage struct {
	UUID          string       `json:"uuid"`
	PlayerIndexes []int        `json:"playerIndexes"`
	Cards         []*deck.Card `json:"cards"`
	Message       string       `json:"message"`
	Time          time.Time    `json:"time"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	Action string `json:"action"`
	// CardID identifies a hand or field card for selection actions
	CardID int `json:"cardId"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GameOverDetails provides details on how the game ended
// BalanceAdjustments is keyed by seat index and must sum to zero.
type GameOverDetails struct {
	BalanceAdjustments map[int]int
	Log                interface{}
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerIndex int, format string, a ...interface{}) *LogMessage {
	var indexes []int
	if playerIndex >= 0 {
		indexes = []int{playerIndex}
	}

	return &LogMessage{
		UUID:          uuid.New().String(),
		PlayerIndexes: indexes,
		Message:       fmt.Sprintf(format, a...),
		Time:          time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message in a slice
func SimpleLogMessageSlice(playerIndex int, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerIndex, format, a...)}
}
