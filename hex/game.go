/*
Package hex simulates games of Hex on an n-by-n board.

The package is built for generating random playouts in bulk: placement is
uniformly random over the open cells, win detection is incremental so a
move costs time proportional to the chain it extends rather than the whole
board, and a Game instance is reused across many playouts via Reset.

PlayerX connects the top edge to the bottom edge and moves first; PlayerO
connects the left edge to the right edge.
*/
package hex

import "math/rand"

// Game stores Hex game state and its methods allow for game control
type Game struct {
	board board

	// open playable cells as padded indices; the live prefix has length numOpen
	// and its order changes on every removal
	open    []int
	numOpen int

	// logical indices in play order
	moves []int
}

// NewGame creates a game with the given board dimension.
// The instance should be reused across playouts with Reset.
func NewGame(dim int) *Game {
	if dim < 1 {
		panic("tried to set non-positive game size")
	}
	g := &Game{board: newBoard(dim)}
	g.open = make([]int, dim*dim)
	g.moves = make([]int, 0, dim*dim)
	g.Reset()
	return g
}

// Reset returns the game to an empty board, ready for a new playout
func (g *Game) Reset() {
	g.board.clear()
	for pos := range g.open {
		g.open[pos] = g.board.padded(pos)
	}
	g.numOpen = len(g.open)
	g.moves = g.moves[:0]
}

// Dim returns the board dimension
func (g *Game) Dim() int {
	return g.board.dim
}

// Full reports whether no open cell remains
func (g *Game) Full() bool {
	return g.numOpen == 0
}

// MoveCount returns the number of moves played since the last Reset
func (g *Game) MoveCount() int {
	return len(g.moves)
}

// Moves returns a copy of the logical indices played so far, in order
func (g *Game) Moves() []int {
	m := make([]int, len(g.moves))
	copy(m, g.moves)
	return m
}

// PlaceRandom places a stone for p on a uniformly random open cell and
// returns its logical index. The caller supplies the random source so that
// concurrent workers each own an independent generator. Returns
// ErrBoardFull if no open cell remains; check Full first.
func (g *Game) PlaceRandom(p Player, rng *rand.Rand) (int, error) {
	if g.numOpen == 0 {
		return 0, GameError{ErrBoardFull, -1}
	}
	slot := rng.Intn(g.numOpen)
	pd := g.open[slot]
	g.open[slot] = g.open[g.numOpen-1]
	g.numOpen--
	g.board.place(pd, p)
	pos := g.board.logical(pd)
	g.moves = append(g.moves, pos)
	return pos, nil
}

// Place puts a stone for p at a specific logical position. It exists for
// replaying scripted move sequences; random playouts use PlaceRandom.
func (g *Game) Place(p Player, pos int) error {
	if pos < 0 || pos >= len(g.open) {
		return GameError{ErrOutsideBoard, pos}
	}
	pd := g.board.padded(pos)
	if g.board.occupied(pd, PlayerX) || g.board.occupied(pd, PlayerO) {
		return GameError{ErrCellNotEmpty, pos}
	}
	for slot := 0; slot < g.numOpen; slot++ {
		if g.open[slot] == pd {
			g.open[slot] = g.open[g.numOpen-1]
			g.numOpen--
			break
		}
	}
	g.board.place(pd, p)
	g.moves = append(g.moves, pos)
	return nil
}

// CheckWin reports whether the stone just placed at pos completes a path
// between p's two edges. If no neighbor is already proven connected to p's
// start edge the new stone cannot extend a connected chain yet and the
// check returns immediately; the stone is picked up later once a fill
// reaches it. Otherwise the connectivity marks are extended from pos and
// the result is whether the fill touches p's goal edge.
func (g *Game) CheckWin(p Player, pos int) bool {
	pd := g.board.padded(pos)
	for _, d := range g.board.neighbors {
		if g.board.marked(pd+d, p) {
			return g.board.connect(pd, p)
		}
	}
	return false
}

// UndoLastN removes the n most recent moves and returns their logical
// positions, oldest removed move first. Occupancy is cleared but the open
// set and connectivity marks are deliberately left stale: undo exists only
// to rewind an already-finished playout before serialization, and resuming
// play afterwards is not supported short of a full Reset.
func (g *Game) UndoLastN(n int) ([]int, error) {
	if n < 0 || n > len(g.moves) {
		return nil, GameError{ErrShortHistory, -1}
	}
	removed := make([]int, n)
	copy(removed, g.moves[len(g.moves)-n:])
	for _, pos := range removed {
		g.board.clearCell(g.board.padded(pos))
	}
	g.moves = g.moves[:len(g.moves)-n]
	return removed, nil
}
