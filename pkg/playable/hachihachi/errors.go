package hachihachi

import (
	"errors"
	"fmt"
)

// ErrWrongPhase is returned when an action is attempted in the wrong phase
var ErrWrongPhase = errors.New("action not allowed in the current phase")

// ErrNotPlayersTurn is returned when a player acts out of turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrCardNotInHand is returned when the selected card is not in the player's hand
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrCardNotAMatch is returned when the selected field card is not an offered match
var ErrCardNotAMatch = errors.New("card is not one of the offered matches")

// ErrCannotRetreat is returned when a player retreats without having declared risk
var ErrCannotRetreat = errors.New("player has not declared risk")

// ErrPlayerNotFound is returned for an out-of-range seat index
var ErrPlayerNotFound = errors.New("player not found")

// ErrAlreadyDealt is returned when Deal() is called twice
var ErrAlreadyDealt = errors.New("cards have already been dealt")

// InvalidDealError is a fatal error: the field held all four cards of a month
// on every permitted deal attempt
type InvalidDealError struct {
	Attempts int
}

func (e InvalidDealError) Error() string {
	return fmt.Sprintf("field held four of a month after %d deal attempts", e.Attempts)
}
