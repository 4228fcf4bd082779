package hex

import (
	"errors"
	"fmt"
)

// ErrBoardFull means that a random placement was requested with no open cell left
var ErrBoardFull error = errors.New("board full")

// ErrShortHistory means that an undo asked for more moves than were played
var ErrShortHistory error = errors.New("not enough move history")

// ErrOutsideBoard means that the position exceeds the size of the board
var ErrOutsideBoard error = errors.New("outside board")

// ErrCellNotEmpty means that there is already a stone at the position
var ErrCellNotEmpty error = errors.New("cell not empty")

// GameError wraps an error with the logical position involved (-1 when none)
type GameError struct {
	err error
	pos int
}

func (e GameError) Error() string {
	if e.pos < 0 {
		return e.err.Error()
	}
	return fmt.Sprintf("position %d invalid: %s", e.pos, e.err)
}

func (e GameError) Unwrap() error {
	return e.err
}
