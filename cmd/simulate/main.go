package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/ceruleanoak/hanafuda-sub000/internal/config"
	"github.com/ceruleanoak/hanafuda-sub000/internal/rng"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/playable"
	"github.com/ceruleanoak/hanafuda-sub000/pkg/playable/hachihachi"
	"github.com/sirupsen/logrus"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	rounds = flag.Int("rounds", 0, "number of rounds to play (0 uses the configured value)")
	seed   = flag.Int64("seed", 0, "shuffle seed (0 uses the configured value, or a random seed)")
	policy = flag.String("policy", "threshold", "opponent policy: threshold or random")
	delay  = flag.Duration("delay", 0, "pause before each round")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	nRounds := *rounds
	if nRounds <= 0 {
		nRounds = cfg.Simulation.Rounds
	}

	shuffleSeed := *seed
	if shuffleSeed == 0 {
		shuffleSeed = cfg.Simulation.Seed
	}
	if shuffleSeed == 0 {
		shuffleSeed = rng.Seed()
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"rounds":  nRounds,
		"seed":    shuffleSeed,
		"policy":  *policy,
	}).Info("starting simulation")

	opts := hachihachi.DefaultOptions()
	opts.Seed = shuffleSeed
	if cfg.Simulation.DeckThreshold > 0 {
		opts.DeckThreshold = cfg.Simulation.DeckThreshold
	}
	if cfg.Simulation.MaxRedeals > 0 {
		opts.MaxRedeals = cfg.Simulation.MaxRedeals
	}

	for i := range opts.Policies {
		opts.Policies[i] = newPolicy(*policy, opts.DeckThreshold, shuffleSeed+int64(i))
	}

	game, err := hachihachi.NewGame(logrus.StandardLogger(), opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	var sched playable.Scheduler = playable.Immediate{}
	if *delay > 0 {
		sched = playable.Delayed{}
	}

	for round := 1; round <= nRounds; round++ {
		g, r := game, round
		sched.Schedule(*delay, func() {
			playRound(r, g)
		})

		if round < nRounds {
			game, err = game.NextRound(logrus.StandardLogger())
			if err != nil {
				logrus.WithError(err).Fatal("could not advance to the next round")
			}
		}
	}
}

func playRound(round int, game *hachihachi.Game) {
	if err := game.Deal(); err != nil {
		var invalid hachihachi.InvalidDealError
		if errors.As(err, &invalid) {
			logrus.WithError(err).WithField("attempts", invalid.Attempts).Fatal("deal could not be validated")
		}

		logrus.WithError(err).Fatal("deal failed")
	}

	drainLog(game)

	result := game.Result()
	for i, pr := range result.PerPlayer {
		logrus.WithFields(logrus.Fields{
			"round":       round,
			"playerIndex": i,
			"cardPoints":  pr.CardPoints,
			"teyaku":      pr.TeyakuShare,
			"roundTotal":  pr.RoundTotal,
			"cumulative":  pr.CumulativeScore,
		}).Info("player settled")
	}

	logrus.WithFields(logrus.Fields{
		"round":      round,
		"reason":     string(result.TerminationReason),
		"winner":     result.WinnerIndex,
		"multiplier": result.Multiplier,
	}).Info("round complete")
}

func drainLog(game *hachihachi.Game) {
	for {
		select {
		case msgs := <-game.LogChan():
			for _, m := range msgs {
				logrus.WithField("players", m.PlayerIndexes).Debug(m.Message)
			}
		default:
			return
		}
	}
}

func newPolicy(name string, deckThreshold int, policySeed int64) hachihachi.Policy {
	switch strings.ToLower(name) {
	case "threshold":
		return hachihachi.NewThresholdPolicy(deckThreshold)
	case "random":
		return hachihachi.NewRandomPolicy(rng.Seeded(policySeed))
	default:
		logrus.WithField("policy", name).Fatal("unknown policy")
		return nil
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	format := config.Instance().Log.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
