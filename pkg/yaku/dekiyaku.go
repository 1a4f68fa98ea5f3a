package yaku

import (
	"github.com/ceruleanoak/hanafuda-sub000/pkg/deck"
)

// dekiyaku values in kan
const (
	FiveBrightsValue       = 12
	FourBrightsValue       = 10
	RainyFourBrightsValue  = 8
	ThreeBrightsValue      = 6
	PoetryRibbonsValue     = 7
	BlueRibbonsValue       = 7
	BoarDeerButterflyValue = 7
	MoonViewingValue       = 5
	FlowerViewingValue     = 5
)

type dekiyakuDetector struct{}

// Dekiyaku returns the standard capture-pile combination detector
func Dekiyaku() Detector {
	return dekiyakuDetector{}
}

// Detect returns the combinations present in a capture pile, in a fixed order
func (dekiyakuDetector) Detect(cards []*deck.Card) []Combination {
	combinations := make([]Combination, 0, 2)

	if c := detectBrights(cards); c != nil {
		combinations = append(combinations, *c)
	}

	if found, ok := cardsByID(cards, deck.IDPoetryRibbon1, deck.IDPoetryRibbon2, deck.IDPoetryRibbon3); ok {
		combinations = append(combinations, Combination{Name: "Poetry Ribbons", Value: PoetryRibbonsValue, Cards: found})
	}

	if found, ok := cardsByID(cards, deck.IDBlueRibbon6, deck.IDBlueRibbon9, deck.IDBlueRibbon10); ok {
		combinations = append(combinations, Combination{Name: "Blue Ribbons", Value: BlueRibbonsValue, Cards: found})
	}

	if found, ok := cardsByID(cards, deck.IDBoar, deck.IDDeer, deck.IDButterflies); ok {
		combinations = append(combinations, Combination{Name: "Boar, Deer, Butterfly", Value: BoarDeerButterflyValue, Cards: found})
	}

	if found, ok := cardsByID(cards, deck.IDMoon, deck.IDSakeCup); ok {
		combinations = append(combinations, Combination{Name: "Moon Viewing", Value: MoonViewingValue, Cards: found})
	}

	if found, ok := cardsByID(cards, deck.IDCurtain, deck.IDSakeCup); ok {
		combinations = append(combinations, Combination{Name: "Flower Viewing", Value: FlowerViewingValue, Cards: found})
	}

	return combinations
}

// detectBrights returns the best bright combination, or nil.
// A pile only ever yields one bright combination; more brights upgrade it in place.
func detectBrights(cards []*deck.Card) *Combination {
	brights := make([]*deck.Card, 0, 5)
	hasRainMan := false
	for _, c := range cards {
		if c.Category == deck.Bright {
			brights = append(brights, c)
			if c.ID == deck.IDRainMan {
				hasRainMan = true
			}
		}
	}

	switch len(brights) {
	case 5:
		return &Combination{Name: "Five Brights", Value: FiveBrightsValue, Cards: brights}
	case 4:
		if hasRainMan {
			return &Combination{Name: "Rainy Four Brights", Value: RainyFourBrightsValue, Cards: brights}
		}
		return &Combination{Name: "Four Brights", Value: FourBrightsValue, Cards: brights}
	case 3:
		if hasRainMan {
			return nil
		}
		return &Combination{Name: "Three Brights", Value: ThreeBrightsValue, Cards: brights}
	}

	return nil
}
