package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Category is the scoring category of a hanafuda card
type Category string

// category constants
const (
	Bright Category = "bright"
	Animal Category = "animal"
	Ribbon Category = "ribbon"
	Chaff  Category = "chaff"
)

// point values by category
const (
	BrightPoints = 20
	AnimalPoints = 10
	RibbonPoints = 5
	ChaffPoints  = 1
)

// TotalPoints is the point total of the full 48-card deck
const TotalPoints = 264

// ParPoints is the break-even capture-point total per player (264 / 3)
const ParPoints = 88

// Card is an individual hanafuda card. Cards are immutable; identity is ID.
type Card struct {
	ID       int      `json:"id"`
	Month    int      `json:"month"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
}

// IDs of the cards that matter individually (multiplier triggers and
// combination members). ID = (month-1)*4 + ordinal within the month.
const (
	IDCrane         = 0  // January bright
	IDPoetryRibbon1 = 1  // January poetry ribbon
	IDWarbler       = 4  // February animal
	IDPoetryRibbon2 = 5  // February poetry ribbon
	IDCurtain       = 8  // March bright
	IDPoetryRibbon3 = 9  // March poetry ribbon
	IDButterflies   = 20 // June animal
	IDBlueRibbon6   = 21 // June blue ribbon
	IDBoar          = 24 // July animal
	IDMoon          = 28 // August bright
	IDGeese         = 29 // August animal
	IDSakeCup       = 32 // September animal
	IDBlueRibbon9   = 33 // September blue ribbon
	IDDeer          = 36 // October animal
	IDBlueRibbon10  = 37 // October blue ribbon
	IDRainMan       = 40 // November bright
	IDSwallow       = 41 // November animal
	IDPhoenix       = 44 // December bright
)

type cardSpec struct {
	category Category
	name     string
}

// monthLayouts describes the four cards of each month, most valuable first.
var monthLayouts = [12][4]cardSpec{
	{{Bright, "Crane"}, {Ribbon, "Pine Poetry Ribbon"}, {Chaff, "Pine Chaff"}, {Chaff, "Pine Chaff"}},
	{{Animal, "Bush Warbler"}, {Ribbon, "Plum Poetry Ribbon"}, {Chaff, "Plum Chaff"}, {Chaff, "Plum Chaff"}},
	{{Bright, "Curtain"}, {Ribbon, "Cherry Poetry Ribbon"}, {Chaff, "Cherry Chaff"}, {Chaff, "Cherry Chaff"}},
	{{Animal, "Cuckoo"}, {Ribbon, "Wisteria Ribbon"}, {Chaff, "Wisteria Chaff"}, {Chaff, "Wisteria Chaff"}},
	{{Animal, "Eight-Plank Bridge"}, {Ribbon, "Iris Ribbon"}, {Chaff, "Iris Chaff"}, {Chaff, "Iris Chaff"}},
	{{Animal, "Butterflies"}, {Ribbon, "Peony Blue Ribbon"}, {Chaff, "Peony Chaff"}, {Chaff, "Peony Chaff"}},
	{{Animal, "Boar"}, {Ribbon, "Bush Clover Ribbon"}, {Chaff, "Bush Clover Chaff"}, {Chaff, "Bush Clover Chaff"}},
	{{Bright, "Moon"}, {Animal, "Geese"}, {Chaff, "Pampas Chaff"}, {Chaff, "Pampas Chaff"}},
	{{Animal, "Sake Cup"}, {Ribbon, "Chrysanthemum Blue Ribbon"}, {Chaff, "Chrysanthemum Chaff"}, {Chaff, "Chrysanthemum Chaff"}},
	{{Animal, "Deer"}, {Ribbon, "Maple Blue Ribbon"}, {Chaff, "Maple Chaff"}, {Chaff, "Maple Chaff"}},
	{{Bright, "Rain Man"}, {Animal, "Swallow"}, {Ribbon, "Willow Ribbon"}, {Chaff, "Lightning"}},
	{{Bright, "Phoenix"}, {Chaff, "Paulownia Chaff"}, {Chaff, "Paulownia Chaff"}, {Chaff, "Paulownia Chaff"}},
}

// CardFromID returns the card with the given ID (0–47)
func CardFromID(id int) *Card {
	if id < 0 || id >= 48 {
		panic(fmt.Sprintf("card ID out of range: %d", id))
	}

	spec := monthLayouts[id/4][id%4]

	return &Card{
		ID:       id,
		Month:    id/4 + 1,
		Category: spec.category,
		Name:     spec.name,
	}
}

// Points returns the card-point value of the card
func (c *Card) Points() int {
	switch c.Category {
	case Bright:
		return BrightPoints
	case Animal:
		return AnimalPoints
	case Ribbon:
		return RibbonPoints
	case Chaff:
		return ChaffPoints
	default:
		panic(fmt.Sprintf("unknown category: %s", c.Category))
	}
}

// Equal returns true if the cards have the same identity
func (c *Card) Equal(card *Card) bool {
	return c.ID == card.ID
}

func (c *Card) String() string {
	return fmt.Sprintf("%d-%d", c.Month, c.ID%4)
}

var cardRx = regexp.MustCompile(`^([1-9]|1[0-2])-([0-3])\z`)

// CardFromString returns a Card from a string in the format <month>-<ordinal>,
// e.g. "8-0" is the Moon. Intended for tests and fixtures; panics on bad input.
func CardFromString(s string) *Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	month, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	ordinal, err := strconv.Atoi(match[2])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return CardFromID((month-1)*4 + ordinal)
}

// CardsFromString returns a slice of cards from a comma-separated string
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString converts a slice of cards to a string in the format of 1-0,8-2,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
