package hex

// board holds the padded Hex grid. Playable cells occupy rows and columns
// 1..dim of a (dim+2)x(dim+2) grid; the one-cell border exists only to seed
// edge connectivity. Occupancy and connectivity each carry two independent
// flags per padded cell, interleaved at index*2+player.
type board struct {
	dim   int
	width int // dim + 2

	stones    []bool // occupancy
	marks     []bool // proven connected to the player's start edge
	neighbors [6]int

	// eliminates new allocations on each flood fill
	stack []int
}

func newBoard(dim int) board {
	w := dim + 2
	b := board{dim: dim, width: w}
	b.stones = make([]bool, w*w*2)
	b.marks = make([]bool, w*w*2)
	b.neighbors = [6]int{-w + 1, -w, -1, 1, w, w - 1}
	b.clear()
	return b
}

// clear empties the grid and reseeds the start-edge marks:
// border row 0 for PlayerX, border column 0 for PlayerO.
func (b *board) clear() {
	for i := range b.stones {
		b.stones[i] = false
		b.marks[i] = false
	}
	for i := 0; i < b.width; i++ {
		b.marks[i*2+int(PlayerX)] = true
		b.marks[i*b.width*2+int(PlayerO)] = true
	}
}

// padded converts a logical row-major index to its padded grid index
func (b *board) padded(pos int) int {
	return (pos/b.dim+1)*b.width + pos%b.dim + 1
}

// logical converts a padded grid index back to its logical row-major index
func (b *board) logical(pd int) int {
	return (pd/b.width-1)*b.dim + pd%b.width - 1
}

func (b *board) occupied(pd int, p Player) bool {
	return b.stones[pd*2+int(p)]
}

func (b *board) place(pd int, p Player) {
	b.stones[pd*2+int(p)] = true
}

// clearCell removes both players' stones at a padded index
func (b *board) clearCell(pd int) {
	b.stones[pd*2] = false
	b.stones[pd*2+1] = false
}

func (b *board) marked(pd int, p Player) bool {
	return b.marks[pd*2+int(p)]
}

// onGoalEdge reports whether the padded index lies on the player's goal
// edge: the bottom playable row for PlayerX, the rightmost playable column
// for PlayerO.
func (b *board) onGoalEdge(pd int, p Player) bool {
	if p == PlayerX {
		return pd/b.width == b.dim
	}
	return pd%b.width == b.dim
}

// connect flood-fills outward from start, marking every reachable occupied
// same-player cell as connected to the start edge, and reports whether the
// fill touches the goal edge. Marks only ever flip false to true, so across
// a whole game each cell enters the worklist at most once.
func (b *board) connect(start int, p Player) bool {
	b.stack = b.stack[:0]
	b.marks[start*2+int(p)] = true
	b.stack = append(b.stack, start)
	for len(b.stack) > 0 {
		pd := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		if b.onGoalEdge(pd, p) {
			return true
		}
		for _, d := range b.neighbors {
			n := pd + d
			if b.stones[n*2+int(p)] && !b.marks[n*2+int(p)] {
				b.marks[n*2+int(p)] = true
				b.stack = append(b.stack, n)
			}
		}
	}
	return false
}
