package hex

import (
	"errors"
	"math/rand"
	"testing"
)

// oracleWin recomputes connectivity for p from scratch over the projected
// cell vector, independent of the engine's incremental marks
func oracleWin(g *Game, p Player) bool {
	v := g.CellVector()
	dim := g.Dim()
	want := p.CellValue()
	adjacent := [6][2]int{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}

	visited := make([]bool, len(v))
	var stack []int
	for i := 0; i < dim; i++ {
		start := i // top row
		if p == PlayerO {
			start = i * dim // left column
		}
		if v[start] == want {
			visited[start] = true
			stack = append(stack, start)
		}
	}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		row, col := pos/dim, pos%dim
		if (p == PlayerX && row == dim-1) || (p == PlayerO && col == dim-1) {
			return true
		}
		for _, d := range adjacent {
			nrow, ncol := row+d[0], col+d[1]
			if (nrow < 0) || (nrow >= dim) || (ncol < 0) || (ncol >= dim) {
				continue
			}
			n := nrow*dim + ncol
			if v[n] == want && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

func TestFillBoard(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 5, 8} {
		g := NewGame(dim)
		rng := rand.New(rand.NewSource(int64(dim)))
		player := PlayerX
		for i := 0; i < dim*dim; i++ {
			if g.Full() {
				t.Fatalf("dim %d: board full after only %d moves", dim, i)
			}
			if _, err := g.PlaceRandom(player, rng); err != nil {
				t.Fatalf("dim %d: unexpected placement error: %v", dim, err)
			}
			player = player.Opponent()
		}
		if !g.Full() {
			t.Fatalf("dim %d: board not full after %d moves", dim, dim*dim)
		}
		if g.MoveCount() != dim*dim {
			t.Fatalf("dim %d: move count %d after filling", dim, g.MoveCount())
		}
		if _, err := g.PlaceRandom(player, rng); !errors.Is(err, ErrBoardFull) {
			t.Fatalf("dim %d: placement on full board returned %v", dim, err)
		}
	}
}

func TestScriptedColumnWin(t *testing.T) {
	// X builds the full left column of a 3x3 board, touching the top
	// border seed and the bottom goal edge directly
	script := []struct {
		p   Player
		pos int
		win bool
	}{
		{PlayerX, 0, false}, // (0,0)
		{PlayerO, 4, false}, // (1,1)
		{PlayerX, 3, false}, // (1,0)
		{PlayerO, 1, false}, // (0,1)
		{PlayerX, 6, true},  // (2,0) completes top-to-bottom
	}
	g := NewGame(3)
	for i, s := range script {
		if err := g.Place(s.p, s.pos); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if got := g.CheckWin(s.p, s.pos); got != s.win {
			t.Fatalf("move %d: CheckWin(%v, %d) = %v, want %v", i, s.p, s.pos, got, s.win)
		}
	}
}

func TestIncrementalAgreesWithOracle(t *testing.T) {
	for dim := 1; dim <= 6; dim++ {
		for seed := int64(0); seed < 20; seed++ {
			g := NewGame(dim)
			rng := rand.New(rand.NewSource(seed))
			player := PlayerX
			for !g.Full() {
				pos, err := g.PlaceRandom(player, rng)
				if err != nil {
					t.Fatalf("dim %d seed %d: %v", dim, seed, err)
				}
				won := g.CheckWin(player, pos)
				if won != oracleWin(g, player) {
					t.Fatalf("dim %d seed %d: incremental win %v disagrees with full recomputation after move %d",
						dim, seed, won, g.MoveCount())
				}
				if won {
					if oracleWin(g, player.Opponent()) {
						t.Fatalf("dim %d seed %d: both players connected", dim, seed)
					}
					break
				}
				player = player.Opponent()
			}
			if g.Full() && !oracleWin(g, PlayerX) && !oracleWin(g, PlayerO) {
				// a drawn full board is geometrically impossible in Hex
				t.Fatalf("dim %d seed %d: full board with no connection", dim, seed)
			}
		}
	}
}

func TestCellVectorCounts(t *testing.T) {
	g := NewGame(6)
	rng := rand.New(rand.NewSource(42))
	player := PlayerX
	for i := 0; i < 20; i++ {
		if _, err := g.PlaceRandom(player, rng); err != nil {
			t.Fatal(err)
		}
		player = player.Opponent()

		stones := 0
		for _, v := range g.CellVector() {
			switch v {
			case -1, 1:
				stones++
			case 0:
			default:
				t.Fatalf("cell vector contained %d", v)
			}
		}
		if stones != g.MoveCount() {
			t.Fatalf("%d stones in vector after %d moves", stones, g.MoveCount())
		}
	}
}

func TestReplayDeterminism(t *testing.T) {
	moves := []int{7, 0, 12, 24, 3, 18, 9, 14}
	replay := func() []int8 {
		g := NewGame(5)
		for i, pos := range moves {
			p := PlayerX
			if i%2 == 1 {
				p = PlayerO
			}
			if err := g.Place(p, pos); err != nil {
				t.Fatal(err)
			}
		}
		return g.CellVector()
	}
	first := replay()
	second := replay()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("replayed vectors differ at cell %d", i)
		}
	}
}

func TestUndoMatchesShorterReplay(t *testing.T) {
	const dim = 7
	const undo = 4

	// Play a random game to completion
	g := NewGame(dim)
	rng := rand.New(rand.NewSource(99))
	player := PlayerX
	for !g.Full() {
		pos, err := g.PlaceRandom(player, rng)
		if err != nil {
			t.Fatal(err)
		}
		if g.CheckWin(player, pos) {
			break
		}
		player = player.Opponent()
	}
	moves := g.Moves()
	if len(moves) < undo {
		t.Fatalf("game too short to undo %d moves", undo)
	}

	removed, err := g.UndoLastN(undo)
	if err != nil {
		t.Fatal(err)
	}
	for i := range removed {
		if removed[i] != moves[len(moves)-undo+i] {
			t.Fatalf("removed moves %v not oldest-first tail of %v", removed, moves)
		}
	}
	if g.MoveCount() != len(moves)-undo {
		t.Fatalf("move count %d after undo, want %d", g.MoveCount(), len(moves)-undo)
	}

	// An independent replay of the surviving prefix must give the same occupancy
	g2 := NewGame(dim)
	for i, pos := range moves[:len(moves)-undo] {
		p := PlayerX
		if i%2 == 1 {
			p = PlayerO
		}
		if err := g2.Place(p, pos); err != nil {
			t.Fatal(err)
		}
	}
	v1, v2 := g.CellVector(), g2.CellVector()
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("post-undo board differs from replayed prefix at cell %d", i)
		}
	}
}

func TestUndoExactHistory(t *testing.T) {
	g := NewGame(5)
	rng := rand.New(rand.NewSource(7))
	g.PlaceRandom(PlayerX, rng)
	g.PlaceRandom(PlayerO, rng)
	g.PlaceRandom(PlayerX, rng)

	removed, err := g.UndoLastN(3)
	if err != nil {
		t.Fatalf("undo of exact history length failed: %v", err)
	}
	if len(removed) != 3 {
		t.Fatalf("undo removed %d moves, want 3", len(removed))
	}
	if g.MoveCount() != 0 {
		t.Fatalf("move count %d after full undo", g.MoveCount())
	}
	for i, v := range g.CellVector() {
		if v != 0 {
			t.Fatalf("cell %d still occupied after full undo", i)
		}
	}
	if _, err := g.UndoLastN(1); !errors.Is(err, ErrShortHistory) {
		t.Fatalf("undo past history returned %v", err)
	}
}

func TestPlaceErrors(t *testing.T) {
	g := NewGame(3)
	if err := g.Place(PlayerX, 9); !errors.Is(err, ErrOutsideBoard) {
		t.Fatalf("placement outside board returned %v", err)
	}
	if err := g.Place(PlayerX, -1); !errors.Is(err, ErrOutsideBoard) {
		t.Fatalf("placement at negative position returned %v", err)
	}
	if err := g.Place(PlayerX, 4); err != nil {
		t.Fatal(err)
	}
	if err := g.Place(PlayerO, 4); !errors.Is(err, ErrCellNotEmpty) {
		t.Fatalf("placement on occupied cell returned %v", err)
	}
}

func TestReset(t *testing.T) {
	g := NewGame(4)
	rng := rand.New(rand.NewSource(3))
	player := PlayerX
	for !g.Full() {
		pos, _ := g.PlaceRandom(player, rng)
		if g.CheckWin(player, pos) {
			break
		}
		player = player.Opponent()
	}

	g.Reset()
	if g.Full() || g.MoveCount() != 0 {
		t.Fatal("reset game retained previous information")
	}
	for i, v := range g.CellVector() {
		if v != 0 {
			t.Fatalf("reset game still occupied at cell %d", i)
		}
	}

	// Connectivity seeds must be restored: a left-column chain still wins
	for row := 0; row < 4; row++ {
		pos := row * 4
		if err := g.Place(PlayerX, pos); err != nil {
			t.Fatal(err)
		}
		won := g.CheckWin(PlayerX, pos)
		if won != (row == 3) {
			t.Fatalf("win %v after row %d on reset board", won, row)
		}
	}
}

func TestProjections(t *testing.T) {
	g := NewGame(2)
	g.Place(PlayerX, 0)
	g.Place(PlayerO, 3)
	if s := g.FlatString(); s != "X  O" {
		t.Fatalf("flat string %q", s)
	}
	if s := g.String(); s != " X .\n  . O\n" {
		t.Fatalf("display string %q", s)
	}
}

func BenchmarkRandomPlayout(b *testing.B) {
	g := NewGame(11)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < b.N; i++ {
		g.Reset()
		player := PlayerX
		for !g.Full() {
			pos, err := g.PlaceRandom(player, rng)
			if err != nil {
				b.Fatal(err)
			}
			if g.CheckWin(player, pos) {
				break
			}
			player = player.Opponent()
		}
	}
}
