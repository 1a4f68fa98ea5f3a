package yaku

import (
	"fmt"

	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
)

// teyaku values in kan
const (
	FourOfAMonthValue  = 6
	ThreeOfAMonthValue = 2
	FourPairsValue     = 4
)

type teyakuDetector struct{}

// Teyaku returns the standard dealt-hand combination detector
func Teyaku() Detector {
	return teyakuDetector{}
}

// Detect returns the hand combinations of an original 8-card deal, ordered by month
func (teyakuDetector) Detect(cards []*deck.Card) []Combination {
	byMonth := make(map[int][]*deck.Card)
	for _, c := range cards {
		byMonth[c.Month] = append(byMonth[c.Month], c)
	}

	combinations := make([]Combination, 0, 2)
	pairCount := 0
	for month := 1; month <= 12; month++ {
		group := byMonth[month]
		switch len(group) {
		case 4:
			combinations = append(combinations, Combination{
				Name:  fmt.Sprintf("Four of a Month (%d)", month),
				Value: FourOfAMonthValue,
				Cards: group,
			})
		case 3:
			combinations = append(combinations, Combination{
				Name:  fmt.Sprintf("Three of a Month (%d)", month),
				Value: ThreeOfAMonthValue,
				Cards: group,
			})
		case 2:
			pairCount++
		}
	}

	if pairCount == 4 {
		combinations = append(combinations, Combination{
			Name:  "Four Pairs",
			Value: FourPairsValue,
			Cards: append([]*deck.Card{}, cards...),
		})
	}

	return combinations
}
