package deck

// Hand represents an ordered collection of face-up cards: a player's hand,
// a capture pile, or the shared field.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FindByID returns the card with the given ID, or nil
func (h Hand) FindByID(id int) *Card {
	for _, c := range h {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// Discard removes the specified card from the hand.
// Returns true if the card was present.
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// CardsOfMonth returns the cards matching the given month
func (h Hand) CardsOfMonth(month int) []*Card {
	matches := make([]*Card, 0, 3)
	for _, c := range h {
		if c.Month == month {
			matches = append(matches, c)
		}
	}

	return matches
}

// Points returns the total card-point value of the hand
func (h Hand) Points() int {
	points := 0
	for _, c := range h {
		points += c.Points()
	}

	return points
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a shallow clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
