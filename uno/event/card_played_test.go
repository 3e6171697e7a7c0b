package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/event"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewWildCard(),
			HandSize:   4,
		},
		{
			PlayerName: "Somebody",
			Card:       card.NewDrawTwoCard(color.Green),
			HandSize:   1,
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestBusesAreIndependent(t *testing.T) {
	busOne := event.NewBus()
	busTwo := event.NewBus()
	listener := event.NewDummyListener()
	busOne.AddListener(listener)

	busTwo.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: "Someone"})
	require.Empty(t, listener.ReceivedPayloads())

	busOne.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: "Someone"})
	require.Len(t, listener.ReceivedPayloads(), 1)
}
