package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, Size, d.CardsLeft())
	assert.Equal(t, IDCrane, d.Cards[0].ID)
	assert.Equal(t, IDPhoenix+3, d.Cards[47].ID)
}

func TestDeck_Shuffle(t *testing.T) {
	a := New()
	a.Shuffle(42)

	b := New()
	b.Shuffle(42)

	assert.Equal(t, int64(42), a.GetSeed())
	assert.Equal(t, CardsToString(a.Cards), CardsToString(b.Cards))

	c := New()
	c.Shuffle(43)
	assert.NotEqual(t, CardsToString(a.Cards), CardsToString(c.Cards))

	// shuffle with seed 0 picks a time-based seed
	d := New()
	d.Shuffle(0)
	assert.NotEqual(t, int64(0), d.GetSeed())
	assert.Equal(t, Size, d.CardsLeft())

	assert.Panics(t, func() { New().Shuffle(-1) })
}

func TestDeck_Draw(t *testing.T) {
	d := New()
	d.Shuffle(1)

	seen := make(map[int]bool)
	for i := 0; i < Size; i++ {
		assert.True(t, d.CanDraw(1))
		card, err := d.Draw()
		assert.NoError(t, err)
		assert.False(t, seen[card.ID])
		seen[card.ID] = true
	}

	assert.Equal(t, 0, d.CardsLeft())
	card, err := d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_DrawMultiple(t *testing.T) {
	d := New()
	d.Shuffle(1)

	cards := d.DrawMultiple(4)
	assert.Len(t, cards, 4)
	assert.Equal(t, 44, d.CardsLeft())

	d.DrawMultiple(40)
	assert.Equal(t, 4, d.CardsLeft())

	// asking for more than remain returns what's left
	cards = d.DrawMultiple(10)
	assert.Len(t, cards, 4)
	assert.Equal(t, 0, d.CardsLeft())
	assert.False(t, d.CanDraw(1))
}
