package hachihachi

import (
	"fmt"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
	"github.com/sirupsen/logrus"
)

// PlayerResult is one player's share of the round settlement
type PlayerResult struct {
	// BasePoints is the card-point score component (exhaustion fallback only)
	BasePoints int `json:"basePoints"`
	// CardPoints is the raw capture-pile point total, for display
	CardPoints       int `json:"cardPoints"`
	TeyakuShare      int `json:"teyakuShare"`
	CombinationShare int `json:"combinationShare"`
	RoundTotal       int `json:"roundTotal"`
	CumulativeScore  int `json:"cumulativeScore"`
}

// Result is the round settlement
type Result struct {
	PerPlayer         [3]PlayerResult   `json:"perPlayer"`
	TerminationReason TerminationReason `json:"terminationReason"`
	TerminatingPlayer int               `json:"terminatingPlayer"`
	WinnerIndex       int               `json:"winnerIndex"`
	Multiplier        int               `json:"multiplier"`
	// Penalized lists players who declared risk and failed to improve
	Penalized []int `json:"penalized,omitempty"`
}

// buildResult computes the zero-sum settlement from how the round terminated
func (g *Game) buildResult() {
	if g.result != nil {
		panic("buildResult() already called")
	}

	res := &Result{
		TerminationReason: g.terminationReason,
		TerminatingPlayer: g.terminatingPlayer,
		Multiplier:        g.multiplier,
	}

	// Risk without improvement forfeits everything. The terminating player is
	// exempt: locking in or retreating is itself the conversion of the risk.
	var penalized [3]bool
	for i, p := range g.players {
		if !p.hasDeclaredRisk || i == g.terminatingPlayer {
			continue
		}

		if p.ActiveValue() <= p.riskBaselineValue {
			penalized[i] = true
			p.activeCombinations = nil
			p.lockedCombinations = nil
			res.Penalized = append(res.Penalized, i)
		}
	}

	var base, combination [3]int

	switch g.terminationReason {
	case ReasonLockedIn:
		// only the terminating player's locked value scores; unconverted
		// risk held by another player pays double
		t := g.terminatingPlayer
		value := g.players[t].LockedValue()
		for j := range g.players {
			if j == t {
				continue
			}

			amount := value * g.multiplier
			if g.players[j].hasDeclaredRisk {
				amount *= 2
			}

			combination[j] -= amount
			combination[t] += amount
		}
	case ReasonRetreated:
		// the retreating player's locked value scores at half
		t := g.terminatingPlayer
		amount := g.players[t].LockedValue() * g.multiplier / 2
		for j := range g.players {
			if j == t {
				continue
			}

			combination[j] -= amount
			combination[t] += amount
		}
	case ReasonExhausted:
		anyRisk := false
		for _, p := range g.players {
			if p.hasDeclaredRisk {
				anyRisk = true
				break
			}
		}

		if !anyRisk {
			// card-point fallback: every card was captured, so the totals
			// sum to 264 and the vector sums to zero around par
			for i, p := range g.players {
				base[i] = (p.capturePile.Points() - deck.ParPoints) * g.multiplier
			}
		} else {
			// each surviving risk-holder collects half their value from
			// each other player
			for i, p := range g.players {
				if !p.hasDeclaredRisk || penalized[i] {
					continue
				}

				amount := p.ActiveValue() * g.multiplier / 2
				for j := range g.players {
					if j == i {
						continue
					}

					combination[j] -= amount
					combination[i] += amount
				}
			}
		}
	default:
		panic(fmt.Sprintf("unknown termination reason: %s", g.terminationReason))
	}

	sum := 0
	for i, p := range g.players {
		pr := &res.PerPlayer[i]
		pr.BasePoints = base[i]
		pr.CardPoints = p.capturePile.Points()
		pr.TeyakuShare = g.teyakuPayments[i]
		pr.CombinationShare = combination[i]
		pr.RoundTotal = base[i] + g.teyakuPayments[i] + combination[i]

		p.cumulativeScore += pr.RoundTotal
		pr.CumulativeScore = p.cumulativeScore

		sum += base[i] + combination[i]
	}

	if sum != 0 {
		panic(fmt.Sprintf("settlement does not sum to zero: %d", sum))
	}

	winner := 0
	for i := 1; i < len(res.PerPlayer); i++ {
		if res.PerPlayer[i].RoundTotal > res.PerPlayer[winner].RoundTotal {
			winner = i
		}
	}

	// the terminating player wins ties
	if t := g.terminatingPlayer; t >= 0 && res.PerPlayer[t].RoundTotal == res.PerPlayer[winner].RoundTotal {
		winner = t
	}
	res.WinnerIndex = winner

	g.logger.WithFields(logrus.Fields{
		"reason":     string(g.terminationReason),
		"winner":     winner,
		"multiplier": g.multiplier,
	}).Debug("settlement built")

	g.result = res
}

// NextRound returns a fresh round carrying only the cumulative scores forward
func (g *Game) NextRound(logger logrus.FieldLogger) (*Game, error) {
	if g.result == nil {
		return nil, ErrWrongPhase
	}

	opts := g.options
	if opts.Seed != 0 {
		// stay deterministic without repeating the same deal
		opts.Seed += int64(opts.MaxRedeals)
	}

	var carried [3]int
	for i, p := range g.players {
		carried[i] = p.cumulativeScore
	}

	return newGame(logger, opts, carried)
}
