package hachihachi

import (
	"fmt"
	"testing"

	"github.com/ceruleanoak/hanafuda-sub000/internal/rng"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/playable"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame_defaults(t *testing.T) {
	g, err := NewGame(logrus.StandardLogger(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 10, g.options.MaxRedeals)
	assert.Equal(t, 4, g.options.DeckThreshold)
	assert.NotNil(t, g.options.CaptureDetector)
	assert.NotNil(t, g.options.HandDetector)
	assert.Equal(t, "hachi-hachi", g.Name())
	assert.Equal(t, PhaseDealing, g.Phase())
}

func TestGame_fullRoundWithPolicies(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = seed
			for i := range opts.Policies {
				opts.Policies[i] = NewThresholdPolicy(opts.DeckThreshold)
			}

			g, err := NewGame(logrus.StandardLogger(), opts)
			require.NoError(t, err)
			require.NoError(t, g.Deal())

			// every seat is automated, so the round runs to completion
			require.NotNil(t, g.result)
			assert.Equal(t, PhaseRoundEnd, g.phase)
			assert.Contains(t,
				[]TerminationReason{ReasonLockedIn, ReasonRetreated, ReasonExhausted},
				g.result.TerminationReason)

			g.assertConservation()

			sum := 0
			for _, pr := range g.result.PerPlayer {
				sum += pr.RoundTotal
			}
			assert.Equal(t, 0, sum, "settlement must sum to zero")

			details, over := g.GetEndOfGameDetails()
			require.True(t, over)

			adjustments := 0
			for _, v := range details.BalanceAdjustments {
				adjustments += v
			}
			assert.Equal(t, 0, adjustments)
		})
	}
}

func TestGame_fullRoundWithRandomPolicies(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = seed
			for i := range opts.Policies {
				opts.Policies[i] = NewRandomPolicy(rng.Seeded(seed + int64(i)))
			}

			g, err := NewGame(logrus.StandardLogger(), opts)
			require.NoError(t, err)
			require.NoError(t, g.Deal())

			require.NotNil(t, g.result)
			g.assertConservation()

			sum := 0
			for _, pr := range g.result.PerPlayer {
				sum += pr.RoundTotal
			}
			assert.Equal(t, 0, sum, "settlement must sum to zero")
		})
	}
}

func TestGame_multipleRoundsZeroSum(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 3
	for i := range opts.Policies {
		opts.Policies[i] = NewThresholdPolicy(opts.DeckThreshold)
	}

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)

	for round := 0; round < 5; round++ {
		require.NoError(t, g.Deal())
		require.NotNil(t, g.result)

		sum := 0
		for _, pr := range g.result.PerPlayer {
			sum += pr.CumulativeScore
		}
		assert.Equal(t, 0, sum, "cumulative scores must stay zero-sum")

		g, err = g.NextRound(logrus.StandardLogger())
		require.NoError(t, err)
	}
}

func TestGame_Action(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	_, _, err = g.Action(3, &playable.PayloadIn{Action: "selectHandCard"})
	assert.Equal(t, ErrPlayerNotFound, err)

	_, _, err = g.Action(0, &playable.PayloadIn{Action: "shuffle"})
	assert.EqualError(t, err, "unknown action: shuffle")

	card := g.players[0].hand[0]
	resp, updateState, err := g.Action(0, &playable.PayloadIn{Action: "selectHandCard", CardID: card.ID})
	require.NoError(t, err)
	assert.True(t, updateState)
	assert.Equal(t, "OK", resp.Value)
	assert.False(t, g.players[0].hand.HasCard(card))
}

func TestGame_GetPlayerState(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	_, err = g.GetPlayerState(5)
	assert.Equal(t, ErrPlayerNotFound, err)

	resp, err := g.GetPlayerState(0)
	require.NoError(t, err)

	data, ok := resp.Data.(*playerResponse)
	require.True(t, ok)

	assert.Equal(t, 8, len(data.Hand))
	assert.Equal(t, []string{"selectHandCard"}, data.AvailableActions)

	// only the requesting seat's hand is visible
	assert.Equal(t, 8, len(data.GameState.Players[0].Hand))
	assert.Nil(t, data.GameState.Players[1].Hand)
	assert.Equal(t, 8, data.GameState.Players[1].HandSize)
}

func TestGame_logChan(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	select {
	case msgs := <-g.LogChan():
		require.NotEmpty(t, msgs)
		assert.NotEmpty(t, msgs[0].UUID)
		assert.NotEmpty(t, msgs[0].Message)
	default:
		t.Fatal("expected a log message after the deal")
	}
}

func TestGame_snapshotExposesAllHands(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	g, err := NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	state := g.Snapshot()
	for i := range state.Players {
		assert.Equal(t, 8, len(state.Players[i].Hand), "player %d", i)
	}
	assert.Equal(t, 16, state.DeckRemaining)
	assert.Equal(t, 8, len(state.Field))
}
