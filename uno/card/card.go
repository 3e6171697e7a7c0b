package card

import (
	"github.com/feel-easy/uno-duel/uno/card/action"
	"github.com/feel-easy/uno-duel/uno/card/color"
)

// Kind groups cards into the three rule-relevant families.
type Kind int

const (
	KindNumber Kind = iota
	KindAction
	KindWild
)

type Card interface {
	Kind() Kind
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	// Label is the plain-text rendering sent to clients; String may paint
	// terminal colors.
	Label() string
	String() string
}
