package card

import (
	"fmt"

	"github.com/feel-easy/uno-duel/uno/card/action"
	"github.com/feel-easy/uno-duel/uno/card/color"
)

// ColoredCard wraps a wild card with the color its player declared. It only
// ever lives on the discard pile, never in a hand.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Kind() Kind {
	return c.card.Kind()
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

// Wrapped returns the underlying wild card.
func (c ColoredCard) Wrapped() Card {
	return c.card
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Label() string {
	return fmt.Sprintf("%s (%s)", c.card.Label(), c.color.Name())
}

func (c ColoredCard) String() string {
	return c.color.Paintf("%s", c.card.String())
}
