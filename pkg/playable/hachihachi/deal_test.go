package hachihachi

import (
	"testing"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_Deal(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	for i, p := range g.players {
		assert.Equal(t, 8, len(p.hand), "player %d", i)
	}
	assert.Equal(t, 8, len(g.field))
	assert.Equal(t, 16, g.deck.CardsLeft())
	assert.Contains(t, []int{1, 2, 4}, g.Multiplier())
	assert.Equal(t, 0, g.CurrentPlayer())
	assert.Equal(t, PhaseSelectHand, g.Phase())

	g.assertConservation()

	sum := 0
	for _, v := range g.TeyakuPayments() {
		sum += v
	}
	assert.Equal(t, 0, sum)

	// a second deal is rejected
	assert.Equal(t, ErrAlreadyDealt, g.Deal())
}

func TestGame_dealIsDeterministic(t *testing.T) {
	deal := func() string {
		opts := DefaultOptions()
		opts.Seed = 7

		g, err := NewGame(logrus.StandardLogger(), opts)
		require.NoError(t, err)
		require.NoError(t, g.Deal())
		return g.field.String()
	}

	assert.Equal(t, deal(), deal())
}

func TestFieldFourOfAMonth(t *testing.T) {
	month, invalid := fieldFourOfAMonth(deck.CardsFromString("1-0,1-1,1-2,1-3,2-0"))
	assert.True(t, invalid)
	assert.Equal(t, 1, month)

	_, invalid = fieldFourOfAMonth(deck.CardsFromString("1-0,1-1,1-2,2-0"))
	assert.False(t, invalid)

	_, invalid = fieldFourOfAMonth(deck.CardsFromString(""))
	assert.False(t, invalid)
}

func TestFieldMultiplier(t *testing.T) {
	testCases := []struct {
		field    string
		expected int
	}{
		{"11-0,2-1,4-2", 4},
		{"12-0,2-1,4-2", 4},
		{"11-0,1-0,2-1", 4}, // grand outranks large
		{"1-0,2-1,4-2", 2},
		{"3-0,2-1,4-2", 2},
		{"8-0,2-1,4-2", 2},
		{"2-0,6-0,7-0", 1}, // animals and ribbons are not triggers
		{"", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			assert.Equal(t, tc.expected, fieldMultiplier(deck.CardsFromString(tc.field)))
		})
	}
}

func TestInvalidDealError(t *testing.T) {
	err := InvalidDealError{Attempts: 10}
	assert.Equal(t, "field held four of a month after 10 deal attempts", err.Error())
}
