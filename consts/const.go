package consts

import "time"

const (
	StartingHandSize = 7
	HistoryLimit     = 50

	// BotMoveDelay is the pause before a scheduled bot move fires, so the
	// browser has time to render the human's action first.
	BotMoveDelay = 800 * time.Millisecond
)

// Default table seats. The engine itself accepts any number of players.
const (
	HumanSeat = 0
	BotSeat   = 1
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsInvalidMove      = NewErr(100, "Invalid move. ")
	ErrorsNoCardsAvailable = NewErr(101, "No cards available. ")
	ErrorsInvalidUnoCall   = NewErr(102, "You can only call UNO with exactly one card left. ")
	ErrorsGameFinished     = NewErr(103, "Game is already finished. ")
	ErrorsPersistence      = NewErr(104, "Persistence unavailable. ")
	ErrorsUnknownAction    = NewErr(105, "Unknown action. ")
	ErrorsColorInvalid     = NewErr(106, "Invalid color. ")
	ErrorsNotYourTurn      = NewErr(107, "It's not your turn. ")
)
