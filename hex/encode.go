package hex

import "strings"

// CellVector projects the playable area to row-major dataset values:
// +1 for an X stone, -1 for an O stone, 0 for an empty cell.
func (g *Game) CellVector() []int8 {
	v := make([]int8, g.board.dim*g.board.dim)
	for pos := range v {
		pd := g.board.padded(pos)
		switch {
		case g.board.occupied(pd, PlayerX):
			v[pos] = 1
		case g.board.occupied(pd, PlayerO):
			v[pos] = -1
		}
	}
	return v
}

// FlatString renders the playable area as a flat row-major string of
// 'X', 'O', and ' ' runes, dim*dim long
func (g *Game) FlatString() string {
	var sb strings.Builder
	for pos := 0; pos < g.board.dim*g.board.dim; pos++ {
		pd := g.board.padded(pos)
		switch {
		case g.board.occupied(pd, PlayerX):
			sb.WriteByte('X')
		case g.board.occupied(pd, PlayerO):
			sb.WriteByte('O')
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// String renders the board with hexagonal skew for diagnostics
func (g Game) String() string {
	var sb strings.Builder
	for i := 0; i < g.board.dim; i++ {
		for k := 0; k < i; k++ {
			sb.WriteByte(' ')
		}
		for j := 0; j < g.board.dim; j++ {
			pd := (i+1)*g.board.width + j + 1
			switch {
			case g.board.occupied(pd, PlayerX):
				sb.WriteString(" X")
			case g.board.occupied(pd, PlayerO):
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
